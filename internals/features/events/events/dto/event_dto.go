package dto

import (
	"time"

	"github.com/google/uuid"

	"wasitku_backend/internals/features/events/events/model"
)

/* =========================================================
   REQUEST DTOs (JSON tags = nama kolom DB, snake_case)
========================================================= */

type CreateEventRequest struct {
	EventName            string    `json:"event_name" validate:"required,max=200"`
	EventDate            time.Time `json:"event_date" validate:"required"`
	EventLocation        string    `json:"event_location" validate:"required,max=200"`
	EventCategory        string    `json:"event_category" validate:"required,max=100"`
	EventDescription     *string   `json:"event_description,omitempty"`
	EventKabupatenKotaID uuid.UUID `json:"event_kabupaten_kota_id" validate:"required"`
}

func (r *CreateEventRequest) ToModel(creator uuid.UUID) *model.Event {
	return &model.Event{
		EventName:            r.EventName,
		EventDate:            r.EventDate,
		EventLocation:        r.EventLocation,
		EventCategory:        r.EventCategory,
		EventDescription:     r.EventDescription,
		EventCreatedBy:       creator,
		EventKabupatenKotaID: r.EventKabupatenKotaID,
	}
}

// TransitionRequest dipakai approve/complete (notes opsional)
type TransitionRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// RejectRequest: alasan penolakan wajib
type RejectRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type AssignWasitRequest struct {
	AssignmentWasitID uuid.UUID `json:"assignment_wasit_id" validate:"required"`
	AssignmentPosisi  string    `json:"assignment_posisi" validate:"omitempty,max=50"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type EventResponse struct {
	EventID              uuid.UUID `json:"event_id"`
	EventName            string    `json:"event_name"`
	EventDate            time.Time `json:"event_date"`
	EventLocation        string    `json:"event_location"`
	EventCategory        string    `json:"event_category"`
	EventDescription     *string   `json:"event_description,omitempty"`
	EventStatus          string    `json:"event_status"`
	EventCreatedBy       uuid.UUID `json:"event_created_by"`
	EventKabupatenKotaID uuid.UUID `json:"event_kabupaten_kota_id"`
	EventCreatedAt       time.Time `json:"event_created_at"`
	EventUpdatedAt       time.Time `json:"event_updated_at"`
}

func FromModel(m *model.Event) *EventResponse {
	return &EventResponse{
		EventID:              m.EventID,
		EventName:            m.EventName,
		EventDate:            m.EventDate,
		EventLocation:        m.EventLocation,
		EventCategory:        m.EventCategory,
		EventDescription:     m.EventDescription,
		EventStatus:          m.EventStatus,
		EventCreatedBy:       m.EventCreatedBy,
		EventKabupatenKotaID: m.EventKabupatenKotaID,
		EventCreatedAt:       m.CreatedAt,
		EventUpdatedAt:       m.UpdatedAt,
	}
}

func FromModels(ms []model.Event) []EventResponse {
	out := make([]EventResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
