package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EvaluationStatusDraft     = "draft"
	EvaluationStatusSubmitted = "submitted"
	EvaluationStatusReviewed  = "reviewed"
)

// Evaluation adalah penilaian kinerja satu wasit pada satu event.
// Total skor dihitung dari EvaluationScore saat submit, bukan diinput manual.
type Evaluation struct {
	EvaluationID          uuid.UUID  `gorm:"column:evaluation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"evaluation_id"`
	EvaluationEventID     uuid.UUID  `gorm:"column:evaluation_event_id;type:uuid;not null;index" json:"evaluation_event_id"`
	EvaluationWasitID     uuid.UUID  `gorm:"column:evaluation_wasit_id;type:uuid;not null;index" json:"evaluation_wasit_id"`
	EvaluationEvaluatorID uuid.UUID  `gorm:"column:evaluation_evaluator_id;type:uuid;not null" json:"evaluation_evaluator_id"`
	EvaluationStatus      string     `gorm:"column:evaluation_status;type:varchar(20);not null;default:'draft'" json:"evaluation_status"`
	EvaluationTotalScore  *float64   `gorm:"column:evaluation_total_score;type:numeric(6,2)" json:"evaluation_total_score,omitempty"`
	EvaluationNotes       *string    `gorm:"column:evaluation_notes" json:"evaluation_notes,omitempty"`
	EvaluationSubmittedAt *time.Time `gorm:"column:evaluation_submitted_at" json:"evaluation_submitted_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:evaluation_created_at;autoCreateTime" json:"evaluation_created_at"`
	UpdatedAt time.Time      `gorm:"column:evaluation_updated_at;autoUpdateTime" json:"evaluation_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:evaluation_deleted_at;index" json:"-"`
}

func (Evaluation) TableName() string { return "evaluations" }

func (e *Evaluation) IsDraft() bool     { return e.EvaluationStatus == EvaluationStatusDraft }
func (e *Evaluation) IsSubmitted() bool { return e.EvaluationStatus == EvaluationStatusSubmitted }
