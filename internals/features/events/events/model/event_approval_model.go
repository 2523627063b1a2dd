package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Enums (string) ===================== */

const (
	ApprovalActionSubmit   = "SUBMIT"
	ApprovalActionApprove  = "APPROVE"
	ApprovalActionReject   = "REJECT"
	ApprovalActionComplete = "COMPLETE"
)

// EventApproval adalah jejak audit per transisi status event.
// Append-only: tidak pernah di-update atau di-delete.
type EventApproval struct {
	ApprovalID uuid.UUID `gorm:"column:approval_id;type:uuid;default:gen_random_uuid();primaryKey" json:"approval_id"`

	ApprovalEventID    uuid.UUID `gorm:"column:approval_event_id;type:uuid;not null;index" json:"approval_event_id"`
	ApprovalAction     string    `gorm:"column:approval_action;type:varchar(20);not null" json:"approval_action"`
	ApprovalFromStatus *string   `gorm:"column:approval_from_status;type:varchar(20)" json:"approval_from_status,omitempty"`
	ApprovalToStatus   string    `gorm:"column:approval_to_status;type:varchar(20);not null" json:"approval_to_status"`
	ApprovalActorID    uuid.UUID `gorm:"column:approval_actor_id;type:uuid;not null" json:"approval_actor_id"`
	ApprovalNotes      *string   `gorm:"column:approval_notes" json:"approval_notes,omitempty"`

	CreatedAt time.Time `gorm:"column:approval_created_at;autoCreateTime" json:"approval_created_at"`
}

func (EventApproval) TableName() string { return "event_approvals" }
