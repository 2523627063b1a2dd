package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForumThread topik diskusi antar wasit.
type ForumThread struct {
	ThreadID        uuid.UUID `gorm:"column:thread_id;type:uuid;default:gen_random_uuid();primaryKey" json:"thread_id"`
	ThreadTitle     string    `gorm:"column:thread_title;type:varchar(200);not null" json:"thread_title"`
	ThreadSlug      string    `gorm:"column:thread_slug;type:varchar(220);not null;uniqueIndex" json:"thread_slug"`
	ThreadCategory  string    `gorm:"column:thread_category;type:varchar(50);not null;default:'umum';index" json:"thread_category"`
	ThreadCreatedBy uuid.UUID `gorm:"column:thread_created_by;type:uuid;not null" json:"thread_created_by"`
	ThreadIsPinned  bool      `gorm:"column:thread_is_pinned;not null;default:false" json:"thread_is_pinned"`
	ThreadIsLocked  bool      `gorm:"column:thread_is_locked;not null;default:false" json:"thread_is_locked"`

	CreatedAt time.Time      `gorm:"column:thread_created_at;autoCreateTime" json:"thread_created_at"`
	UpdatedAt time.Time      `gorm:"column:thread_updated_at;autoUpdateTime" json:"thread_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:thread_deleted_at;index" json:"-"`
}

func (ForumThread) TableName() string { return "forum_threads" }

// ForumPost balasan dalam satu thread. Post yang dihapus di-soft-delete;
// urutan thread tidak berubah.
type ForumPost struct {
	PostID        uuid.UUID `gorm:"column:post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_id"`
	PostThreadID  uuid.UUID `gorm:"column:post_thread_id;type:uuid;not null;index" json:"post_thread_id"`
	PostContent   string    `gorm:"column:post_content;type:text;not null" json:"post_content"`
	PostCreatedBy uuid.UUID `gorm:"column:post_created_by;type:uuid;not null" json:"post_created_by"`

	CreatedAt time.Time      `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
	UpdatedAt time.Time      `gorm:"column:post_updated_at;autoUpdateTime" json:"post_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:post_deleted_at;index" json:"-"`
}

func (ForumPost) TableName() string { return "forum_posts" }
