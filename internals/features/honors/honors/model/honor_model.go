package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM honor_status di PostgreSQL */

const (
	HonorStatusDraft     = "draft"
	HonorStatusSubmitted = "submitted"
	HonorStatusVerified  = "verified"
	HonorStatusRejected  = "rejected"
)

/* ===================== Model ===================== */

type Honor struct {
	HonorID uuid.UUID `gorm:"column:honor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"honor_id"`

	HonorWasitID uuid.UUID  `gorm:"column:honor_wasit_id;type:uuid;not null;index" json:"honor_wasit_id"`
	HonorEventID *uuid.UUID `gorm:"column:honor_event_id;type:uuid;index" json:"honor_event_id,omitempty"`

	HonorAmountIDR int64   `gorm:"column:honor_amount_idr;not null;check:honor_amount_idr >= 0" json:"honor_amount_idr"`
	HonorNotes     *string `gorm:"column:honor_notes" json:"honor_notes,omitempty"`

	HonorStatus string `gorm:"column:honor_status;type:honor_status;not null;default:'draft'" json:"honor_status"`

	HonorSubmittedAt       *time.Time `gorm:"column:honor_submitted_at" json:"honor_submitted_at,omitempty"`
	HonorVerifiedAt        *time.Time `gorm:"column:honor_verified_at" json:"honor_verified_at,omitempty"`
	HonorVerifiedBy        *uuid.UUID `gorm:"column:honor_verified_by;type:uuid" json:"honor_verified_by,omitempty"`
	HonorVerificationNotes *string    `gorm:"column:honor_verification_notes" json:"honor_verification_notes,omitempty"`
	HonorPayoutReference   *string    `gorm:"column:honor_payout_reference" json:"honor_payout_reference,omitempty"`

	CreatedAt time.Time      `gorm:"column:honor_created_at;autoCreateTime" json:"honor_created_at"`
	UpdatedAt time.Time      `gorm:"column:honor_updated_at;autoUpdateTime" json:"honor_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:honor_deleted_at;index" json:"honor_deleted_at,omitempty"`
}

func (Honor) TableName() string { return "honors" }

/* ===================== Helpers ===================== */

func (h *Honor) IsDraft() bool {
	return h.HonorStatus == HonorStatusDraft
}

func (h *Honor) IsSubmitted() bool {
	return h.HonorStatus == HonorStatusSubmitted
}

func (h *Honor) IsFinal() bool {
	return h.HonorStatus == HonorStatusVerified || h.HonorStatus == HonorStatusRejected
}
