package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM event_status di PostgreSQL */

const (
	EventStatusDiajukan  = "DIAJUKAN"
	EventStatusDisetujui = "DISETUJUI"
	EventStatusDitolak   = "DITOLAK"
	EventStatusSelesai   = "SELESAI"
)

/* ===================== Model ===================== */

type Event struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`

	EventName        string    `gorm:"column:event_name;type:varchar(200);not null" json:"event_name"`
	EventDate        time.Time `gorm:"column:event_date;not null" json:"event_date"`
	EventLocation    string    `gorm:"column:event_location;type:varchar(200);not null" json:"event_location"`
	EventCategory    string    `gorm:"column:event_category;type:varchar(100);not null" json:"event_category"`
	EventDescription *string   `gorm:"column:event_description" json:"event_description,omitempty"`

	EventStatus string `gorm:"column:event_status;type:event_status;not null;default:'DIAJUKAN'" json:"event_status"`

	EventCreatedBy       uuid.UUID `gorm:"column:event_created_by;type:uuid;not null" json:"event_created_by"`
	EventKabupatenKotaID uuid.UUID `gorm:"column:event_kabupaten_kota_id;type:uuid;not null" json:"event_kabupaten_kota_id"`

	CreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	UpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (Event) TableName() string { return "events" }

/* ===================== Helpers ===================== */

func (e *Event) IsOpen() bool {
	return e.EventStatus == EventStatusDiajukan
}

func (e *Event) IsApproved() bool {
	return e.EventStatus == EventStatusDisetujui
}

func (e *Event) IsFinal() bool {
	return e.EventStatus == EventStatusDitolak || e.EventStatus == EventStatusSelesai
}
