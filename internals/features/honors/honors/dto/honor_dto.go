package dto

import (
	"time"

	"github.com/google/uuid"

	"wasitku_backend/internals/features/honors/honors/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateHonorRequest struct {
	HonorEventID   *uuid.UUID `json:"honor_event_id,omitempty"`
	HonorAmountIDR int64      `json:"honor_amount_idr" validate:"required,gt=0"`
	HonorNotes     *string    `json:"honor_notes,omitempty"`
}

type UpdateHonorRequest struct {
	HonorAmountIDR *int64  `json:"honor_amount_idr,omitempty" validate:"omitempty,gt=0"`
	HonorNotes     *string `json:"honor_notes,omitempty"`
}

type VerifyHonorRequest struct {
	Outcome string  `json:"outcome" validate:"required,oneof=verified rejected"`
	Notes   *string `json:"notes,omitempty"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type HonorResponse struct {
	HonorID                uuid.UUID  `json:"honor_id"`
	HonorWasitID           uuid.UUID  `json:"honor_wasit_id"`
	HonorEventID           *uuid.UUID `json:"honor_event_id,omitempty"`
	HonorAmountIDR         int64      `json:"honor_amount_idr"`
	HonorNotes             *string    `json:"honor_notes,omitempty"`
	HonorStatus            string     `json:"honor_status"`
	HonorSubmittedAt       *time.Time `json:"honor_submitted_at,omitempty"`
	HonorVerifiedAt        *time.Time `json:"honor_verified_at,omitempty"`
	HonorVerifiedBy        *uuid.UUID `json:"honor_verified_by,omitempty"`
	HonorVerificationNotes *string    `json:"honor_verification_notes,omitempty"`
	HonorPayoutReference   *string    `json:"honor_payout_reference,omitempty"`
	HonorCreatedAt         time.Time  `json:"honor_created_at"`
}

func FromModel(m *model.Honor) *HonorResponse {
	return &HonorResponse{
		HonorID:                m.HonorID,
		HonorWasitID:           m.HonorWasitID,
		HonorEventID:           m.HonorEventID,
		HonorAmountIDR:         m.HonorAmountIDR,
		HonorNotes:             m.HonorNotes,
		HonorStatus:            m.HonorStatus,
		HonorSubmittedAt:       m.HonorSubmittedAt,
		HonorVerifiedAt:        m.HonorVerifiedAt,
		HonorVerifiedBy:        m.HonorVerifiedBy,
		HonorVerificationNotes: m.HonorVerificationNotes,
		HonorPayoutReference:   m.HonorPayoutReference,
		HonorCreatedAt:         m.CreatedAt,
	}
}

func FromModels(ms []model.Honor) []HonorResponse {
	out := make([]HonorResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
