package dto

import (
	"time"

	"github.com/google/uuid"

	"wasitku_backend/internals/features/evaluations/evaluations/model"
)

type CreateEvaluationRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
	WasitID uuid.UUID `json:"wasit_id" validate:"required"`
}

type ScoreItem struct {
	CriteriaID uuid.UUID `json:"criteria_id" validate:"required"`
	Value      float64   `json:"value" validate:"min=0,max=10"`
}

type UpsertScoresRequest struct {
	Scores []ScoreItem `json:"scores" validate:"required,min=1,dive"`
}

type SubmitEvaluationRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type EvaluationResponse struct {
	EvaluationID uuid.UUID  `json:"evaluation_id"`
	EventID      uuid.UUID  `json:"event_id"`
	WasitID      uuid.UUID  `json:"wasit_id"`
	EvaluatorID  uuid.UUID  `json:"evaluator_id"`
	Status       string     `json:"status"`
	TotalScore   *float64   `json:"total_score,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromModel(e *model.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		EvaluationID: e.EvaluationID,
		EventID:      e.EvaluationEventID,
		WasitID:      e.EvaluationWasitID,
		EvaluatorID:  e.EvaluationEvaluatorID,
		Status:       e.EvaluationStatus,
		TotalScore:   e.EvaluationTotalScore,
		Notes:        e.EvaluationNotes,
		SubmittedAt:  e.EvaluationSubmittedAt,
		CreatedAt:    e.CreatedAt,
	}
}

func FromModels(items []model.Evaluation) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
