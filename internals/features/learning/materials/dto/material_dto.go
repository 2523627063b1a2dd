package dto

import (
	"time"

	"github.com/google/uuid"

	"wasitku_backend/internals/features/learning/materials/model"
)

type CreateMaterialRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Category    string   `json:"category" validate:"required,oneof=peraturan mekanik kebugaran umum"`
	Content     string   `json:"content" validate:"required"`
	FileURL     *string  `json:"file_url,omitempty" validate:"omitempty,url"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=50"`
	IsPublished bool     `json:"is_published"`
}

type UpdateMaterialRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,oneof=peraturan mekanik kebugaran umum"`
	Content     *string   `json:"content,omitempty"`
	FileURL     *string   `json:"file_url,omitempty" validate:"omitempty,url"`
	Tags        *[]string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=50"`
	IsPublished *bool     `json:"is_published,omitempty"`
}

type MaterialResponse struct {
	MaterialID  uuid.UUID `json:"material_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	FileURL     *string   `json:"file_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromModel(m *model.LearningMaterial) MaterialResponse {
	return MaterialResponse{
		MaterialID:  m.MaterialID,
		Title:       m.MaterialTitle,
		Slug:        m.MaterialSlug,
		Category:    m.MaterialCategory,
		Content:     m.MaterialContent,
		FileURL:     m.MaterialFileURL,
		Tags:        m.MaterialTags,
		IsPublished: m.MaterialIsPublished,
		CreatedBy:   m.MaterialCreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func FromModels(items []model.LearningMaterial) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
