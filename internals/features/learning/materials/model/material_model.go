package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// LearningMaterial materi pembelajaran wasit (peraturan, mekanik, kebugaran).
type LearningMaterial struct {
	MaterialID          uuid.UUID      `gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey" json:"material_id"`
	MaterialTitle       string         `gorm:"column:material_title;type:varchar(200);not null" json:"material_title"`
	MaterialSlug        string         `gorm:"column:material_slug;type:varchar(220);not null;uniqueIndex" json:"material_slug"`
	MaterialCategory    string         `gorm:"column:material_category;type:varchar(50);not null;default:'umum';index" json:"material_category"`
	MaterialContent     string         `gorm:"column:material_content;type:text;not null" json:"material_content"`
	MaterialFileURL     *string        `gorm:"column:material_file_url" json:"material_file_url,omitempty"`
	MaterialTags        pq.StringArray `gorm:"column:material_tags;type:text[]" json:"material_tags,omitempty"`
	MaterialIsPublished bool           `gorm:"column:material_is_published;not null;default:false" json:"material_is_published"`
	MaterialCreatedBy   uuid.UUID      `gorm:"column:material_created_by;type:uuid;not null" json:"material_created_by"`

	CreatedAt time.Time      `gorm:"column:material_created_at;autoCreateTime" json:"material_created_at"`
	UpdatedAt time.Time      `gorm:"column:material_updated_at;autoUpdateTime" json:"material_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;index" json:"-"`
}

func (LearningMaterial) TableName() string { return "learning_materials" }
