// file: internals/features/honors/honors/controller/honor_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/honors/honors/dto"
	model "wasitku_backend/internals/features/honors/honors/model"
	svc "wasitku_backend/internals/features/honors/honors/service"
	helper "wasitku_backend/internals/helpers"
)

type HonorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *svc.HonorService
}

func NewHonorController(db *gorm.DB, payout svc.PayoutClient) *HonorController {
	return &HonorController{
		DB:        db,
		Validator: validator.New(),
		Service:   svc.NewHonorService(svc.NewGormStore(db), payout),
	}
}

/* =======================================================================
   Wasit: klaim honor sendiri
======================================================================= */

// POST /honors
func (h *HonorController) CreateHonor(c *fiber.Ctx) error {
	wasitID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateHonorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	honor, err := h.Service.Create(c.UserContext(), wasitID, req.HonorEventID, req.HonorAmountIDR, req.HonorNotes)
	if err != nil {
		return h.mapHonorError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Klaim honor dibuat", dto.FromModel(honor))
}

// PATCH /honors/:id
func (h *HonorController) UpdateHonor(c *fiber.Ctx) error {
	wasitID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateHonorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	honor, err := h.Service.Update(c.UserContext(), id, wasitID, req.HonorAmountIDR, req.HonorNotes)
	if err != nil {
		return h.mapHonorError(c, err)
	}
	return helper.Success(c, "Klaim honor diperbarui", dto.FromModel(honor))
}

// POST /honors/:id/submit
func (h *HonorController) SubmitHonor(c *fiber.Ctx) error {
	wasitID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	honor, err := h.Service.SubmitForVerification(c.UserContext(), id, wasitID)
	if err != nil {
		return h.mapHonorError(c, err)
	}
	return helper.Success(c, "Klaim honor diajukan untuk verifikasi", dto.FromModel(honor))
}

// DELETE /honors/:id
func (h *HonorController) DeleteHonor(c *fiber.Ctx) error {
	wasitID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.Service.Delete(c.UserContext(), id, wasitID); err != nil {
		return h.mapHonorError(c, err)
	}
	return helper.Success(c, "Klaim honor dihapus", nil)
}

// GET /honors/my — daftar klaim + statistik turunan
func (h *HonorController) MyHonors(c *fiber.Ctx) error {
	wasitID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var honors []model.Honor
	if err := h.DB.WithContext(c.UserContext()).
		Where("honor_wasit_id = ?", wasitID).
		Order("honor_created_at DESC").
		Find(&honors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"honors": dto.FromModels(honors),
		"stats":  svc.ComputeStats(honors),
	})
}

/* =======================================================================
   Admin: verifikasi
======================================================================= */

// GET /honors?status=&wasit_id=
func (h *HonorController) ListHonors(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Honor{})
	if status := c.Query("status"); status != "" {
		q = q.Where("honor_status = ?", status)
	}
	if wasit := c.Query("wasit_id"); wasit != "" {
		id, err := uuid.Parse(wasit)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "wasit_id tidak valid")
		}
		q = q.Where("honor_wasit_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var honors []model.Honor
	if err := q.Order("honor_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&honors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"honors":     dto.FromModels(honors),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// POST /honors/:id/verify
func (h *HonorController) VerifyHonor(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.VerifyHonorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	honor, err := h.Service.Verify(c.UserContext(), id, actorID, req.Outcome, req.Notes)
	if err != nil {
		return h.mapHonorError(c, err)
	}
	return helper.Success(c, "Verifikasi honor tersimpan", dto.FromModel(honor))
}

/* ===================== error mapping ===================== */

func (h *HonorController) mapHonorError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrHonorNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrNotOwner):
		return helper.Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, svc.ErrNotDraft),
		errors.Is(err, svc.ErrNotSubmitted),
		errors.Is(err, svc.ErrNotAssigned),
		errors.Is(err, svc.ErrInvalidOutcome):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}
