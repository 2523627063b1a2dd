package model

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationCriteria master kriteria penilaian (bobot dipakai saat
// menghitung total skor).
type EvaluationCriteria struct {
	CriteriaID       uuid.UUID `gorm:"column:criteria_id;type:uuid;default:gen_random_uuid();primaryKey" json:"criteria_id"`
	CriteriaName     string    `gorm:"column:criteria_name;type:varchar(100);not null" json:"criteria_name"`
	CriteriaWeight   float64   `gorm:"column:criteria_weight;type:numeric(5,2);not null;default:1" json:"criteria_weight"`
	CriteriaIsActive bool      `gorm:"column:criteria_is_active;not null;default:true" json:"criteria_is_active"`

	CreatedAt time.Time `gorm:"column:criteria_created_at;autoCreateTime" json:"criteria_created_at"`
	UpdatedAt time.Time `gorm:"column:criteria_updated_at;autoUpdateTime" json:"criteria_updated_at"`
}

func (EvaluationCriteria) TableName() string { return "evaluation_criteria" }
