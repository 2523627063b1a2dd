// file: internals/features/forums/forums/controller/forum_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/forums/forums/dto"
	model "wasitku_backend/internals/features/forums/forums/model"
	helper "wasitku_backend/internals/helpers"
)

type ForumController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewForumController(db *gorm.DB) *ForumController {
	return &ForumController{DB: db, Validator: validator.New()}
}

// GET /forum/threads — pinned dulu, lalu terbaru
func (ctl *ForumController) ListThreads(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ForumThread{})
	if category := c.Query("category"); category != "" {
		q = q.Where("thread_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var threads []model.ForumThread
	if err := q.Order("thread_is_pinned DESC, thread_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&threads).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"threads":    dto.ThreadsFromModels(threads),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// POST /forum/threads
func (ctl *ForumController) CreateThread(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateThreadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	baseSlug := helper.Slugify(req.Title, 200)
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctl.DB,
		"forum_threads", "thread_slug", baseSlug, nil, 220)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	category := req.Category
	if category == "" {
		category = "umum"
	}
	t := model.ForumThread{
		ThreadTitle:     req.Title,
		ThreadSlug:      slug,
		ThreadCategory:  category,
		ThreadCreatedBy: userID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&t).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Thread dibuat", dto.ThreadFromModel(&t))
}

// GET /forum/threads/:id — thread + post terurut lama→baru
func (ctl *ForumController) GetThread(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var t model.ForumThread
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&t, "thread_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Thread tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var posts []model.ForumPost
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("post_thread_id = ?", id).
		Order("post_created_at ASC").
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"thread": dto.ThreadFromModel(&t),
		"posts":  dto.PostsFromModels(posts),
	})
}

// POST /forum/threads/:id/posts
func (ctl *ForumController) CreatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	threadID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var t model.ForumThread
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&t, "thread_id = ?", threadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Thread tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if t.ThreadIsLocked {
		return helper.Error(c, fiber.StatusForbidden, "Thread sudah dikunci")
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	p := model.ForumPost{
		PostThreadID:  threadID,
		PostContent:   req.Content,
		PostCreatedBy: userID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Post dibuat", dto.PostFromModel(&p))
}

// DELETE /forum/posts/:id — hanya penulis post (soft delete)
func (ctl *ForumController) DeletePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var p model.ForumPost
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&p, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if p.PostCreatedBy != userID {
		return helper.Error(c, fiber.StatusForbidden, "Post bukan milik Anda")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Post dihapus", nil)
}

/* =======================================================================
   Admin: moderasi
======================================================================= */

// POST /forum/threads/:id/pin dan /unpin, /lock, /unlock
func (ctl *ForumController) SetThreadPinned(pinned bool) fiber.Handler {
	return ctl.setThreadFlag("thread_is_pinned", pinned, "Pin thread diperbarui")
}

func (ctl *ForumController) SetThreadLocked(locked bool) fiber.Handler {
	return ctl.setThreadFlag("thread_is_locked", locked, "Kunci thread diperbarui")
}

func (ctl *ForumController) setThreadFlag(column string, value bool, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid id")
		}

		res := ctl.DB.WithContext(c.UserContext()).
			Model(&model.ForumThread{}).
			Where("thread_id = ?", id).
			Update(column, value)
		if res.Error != nil {
			return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Thread tidak ditemukan")
		}
		return helper.Success(c, message, nil)
	}
}
