package model

import (
	"time"

	"github.com/google/uuid"
)

// EventAssignment menghubungkan wasit dengan event yang dia tugaskan.
// Unik per (event, wasit); dipakai honor untuk validasi klaim.
type EventAssignment struct {
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`

	AssignmentEventID uuid.UUID `gorm:"column:assignment_event_id;type:uuid;not null;uniqueIndex:uq_assignment_event_wasit" json:"assignment_event_id"`
	AssignmentWasitID uuid.UUID `gorm:"column:assignment_wasit_id;type:uuid;not null;uniqueIndex:uq_assignment_event_wasit" json:"assignment_wasit_id"`
	AssignmentPosisi  string    `gorm:"column:assignment_posisi;type:varchar(50);not null;default:'wasit'" json:"assignment_posisi"`

	CreatedAt time.Time `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
}

func (EventAssignment) TableName() string { return "event_assignments" }
