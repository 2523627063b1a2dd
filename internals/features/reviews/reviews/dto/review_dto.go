package dto

import (
	"time"

	"github.com/google/uuid"

	"wasitku_backend/internals/features/reviews/reviews/model"
)

type CreateReviewRequest struct {
	WasitID    uuid.UUID  `json:"wasit_id" validate:"required"`
	EventID    *uuid.UUID `json:"event_id,omitempty"`
	Rating     int        `json:"rating" validate:"required,min=1,max=5"`
	Comment    string     `json:"comment" validate:"required,min=5,max=2000"`
	AuthorName string     `json:"author_name" validate:"required,min=2,max=100"`
}

type ReviewResponse struct {
	ReviewID   uuid.UUID  `json:"review_id"`
	WasitID    uuid.UUID  `json:"wasit_id"`
	EventID    *uuid.UUID `json:"event_id,omitempty"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	AuthorName string     `json:"author_name"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromModel(r *model.RefereeReview) ReviewResponse {
	return ReviewResponse{
		ReviewID:   r.ReviewID,
		WasitID:    r.ReviewWasitID,
		EventID:    r.ReviewEventID,
		Rating:     r.ReviewRating,
		Comment:    r.ReviewComment,
		AuthorName: r.ReviewAuthorName,
		CreatedAt:  r.CreatedAt,
	}
}

func FromModels(items []model.RefereeReview) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
