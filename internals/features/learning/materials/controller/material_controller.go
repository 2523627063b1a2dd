// file: internals/features/learning/materials/controller/material_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/learning/materials/dto"
	model "wasitku_backend/internals/features/learning/materials/model"
	helper "wasitku_backend/internals/helpers"
)

type MaterialController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db, Validator: validator.New()}
}

// GET /materials?published=&tag=
func (ctl *MaterialController) ListMaterials(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.LearningMaterial{})
	if published := c.Query("published"); published != "" {
		q = q.Where("material_is_published = ?", published == "true")
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("material_category = ?", category)
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(material_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var materials []model.LearningMaterial
	if err := q.Order("material_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&materials).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"materials":  dto.FromModels(materials),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /materials/:slug
func (ctl *MaterialController) GetMaterialBySlug(c *fiber.Ctx) error {
	var m model.LearningMaterial
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "material_slug = ?", c.Params("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&m))
}

// POST /materials (admin)
func (ctl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	baseSlug := helper.Slugify(req.Title, 200)
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctl.DB,
		"learning_materials", "material_slug", baseSlug, nil, 220)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	m := model.LearningMaterial{
		MaterialTitle:       req.Title,
		MaterialSlug:        slug,
		MaterialCategory:    req.Category,
		MaterialContent:     req.Content,
		MaterialFileURL:     req.FileURL,
		MaterialTags:        req.Tags,
		MaterialIsPublished: req.IsPublished,
		MaterialCreatedBy:   userID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Materi dibuat", dto.FromModel(&m))
}

// PATCH /materials/:id (admin)
func (ctl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.LearningMaterial
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Title != nil && *req.Title != m.MaterialTitle {
		m.MaterialTitle = *req.Title
		baseSlug := helper.Slugify(*req.Title, 200)
		slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctl.DB,
			"learning_materials", "material_slug", baseSlug,
			func(q *gorm.DB) *gorm.DB { return q.Where("material_id <> ?", m.MaterialID) }, 220)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		m.MaterialSlug = slug
	}
	if req.Category != nil {
		m.MaterialCategory = *req.Category
	}
	if req.Content != nil {
		m.MaterialContent = *req.Content
	}
	if req.FileURL != nil {
		m.MaterialFileURL = req.FileURL
	}
	if req.Tags != nil {
		m.MaterialTags = *req.Tags
	}
	if req.IsPublished != nil {
		m.MaterialIsPublished = *req.IsPublished
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Materi diperbarui", dto.FromModel(&m))
}

// DELETE /materials/:id (admin)
func (ctl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.LearningMaterial{}, "material_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	return helper.Success(c, "Materi dihapus", nil)
}
