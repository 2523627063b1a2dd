package dto

import (
	"time"

	"github.com/google/uuid"

	"wasitku_backend/internals/features/forums/forums/model"
)

type CreateThreadRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Category string `json:"category,omitempty" validate:"omitempty,oneof=peraturan mekanik karir umum"`
}

type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

type ThreadResponse struct {
	ThreadID  uuid.UUID `json:"thread_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  string    `json:"category"`
	CreatedBy uuid.UUID `json:"created_by"`
	IsPinned  bool      `json:"is_pinned"`
	IsLocked  bool      `json:"is_locked"`
	CreatedAt time.Time `json:"created_at"`
}

type PostResponse struct {
	PostID    uuid.UUID `json:"post_id"`
	ThreadID  uuid.UUID `json:"thread_id"`
	Content   string    `json:"content"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func ThreadFromModel(t *model.ForumThread) ThreadResponse {
	return ThreadResponse{
		ThreadID:  t.ThreadID,
		Title:     t.ThreadTitle,
		Slug:      t.ThreadSlug,
		Category:  t.ThreadCategory,
		CreatedBy: t.ThreadCreatedBy,
		IsPinned:  t.ThreadIsPinned,
		IsLocked:  t.ThreadIsLocked,
		CreatedAt: t.CreatedAt,
	}
}

func ThreadsFromModels(items []model.ForumThread) []ThreadResponse {
	out := make([]ThreadResponse, 0, len(items))
	for i := range items {
		out = append(out, ThreadFromModel(&items[i]))
	}
	return out
}

func PostFromModel(p *model.ForumPost) PostResponse {
	return PostResponse{
		PostID:    p.PostID,
		ThreadID:  p.PostThreadID,
		Content:   p.PostContent,
		CreatedBy: p.PostCreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

func PostsFromModels(items []model.ForumPost) []PostResponse {
	out := make([]PostResponse, 0, len(items))
	for i := range items {
		out = append(out, PostFromModel(&items[i]))
	}
	return out
}
