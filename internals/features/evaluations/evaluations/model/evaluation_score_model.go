package model

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationScore satu nilai per kriteria per evaluasi.
// Unik (evaluation, criteria) → input ulang meng-update nilai lama.
type EvaluationScore struct {
	ScoreID           uuid.UUID `gorm:"column:score_id;type:uuid;default:gen_random_uuid();primaryKey" json:"score_id"`
	ScoreEvaluationID uuid.UUID `gorm:"column:score_evaluation_id;type:uuid;not null;uniqueIndex:uq_score_evaluation_criteria" json:"score_evaluation_id"`
	ScoreCriteriaID   uuid.UUID `gorm:"column:score_criteria_id;type:uuid;not null;uniqueIndex:uq_score_evaluation_criteria" json:"score_criteria_id"`
	ScoreValue        float64   `gorm:"column:score_value;type:numeric(5,2);not null" json:"score_value"`

	CreatedAt time.Time `gorm:"column:score_created_at;autoCreateTime" json:"score_created_at"`
	UpdatedAt time.Time `gorm:"column:score_updated_at;autoUpdateTime" json:"score_updated_at"`
}

func (EvaluationScore) TableName() string { return "evaluation_scores" }
