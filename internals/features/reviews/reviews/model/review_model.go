package model

import (
	"time"

	"github.com/google/uuid"
)

// RefereeReview ulasan publik terhadap seorang wasit. Dibuat tanpa login,
// jadi identitas penulis hanya berupa nama bebas.
type RefereeReview struct {
	ReviewID         uuid.UUID  `gorm:"column:review_id;type:uuid;default:gen_random_uuid();primaryKey" json:"review_id"`
	ReviewWasitID    uuid.UUID  `gorm:"column:review_wasit_id;type:uuid;not null;index" json:"review_wasit_id"`
	ReviewEventID    *uuid.UUID `gorm:"column:review_event_id;type:uuid" json:"review_event_id,omitempty"`
	ReviewRating     int        `gorm:"column:review_rating;not null" json:"review_rating"`
	ReviewComment    string     `gorm:"column:review_comment;type:text;not null" json:"review_comment"`
	ReviewAuthorName string     `gorm:"column:review_author_name;type:varchar(100);not null" json:"review_author_name"`

	CreatedAt time.Time `gorm:"column:review_created_at;autoCreateTime" json:"review_created_at"`
}

func (RefereeReview) TableName() string { return "referee_reviews" }
