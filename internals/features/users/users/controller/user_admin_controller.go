// file: internals/features/users/users/controller/user_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/users/users/dto"
	model "wasitku_backend/internals/features/users/users/model"
	svc "wasitku_backend/internals/features/users/users/service"
	helper "wasitku_backend/internals/helpers"
)

type UserAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *svc.UserAdminService
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{
		DB:        db,
		Validator: validator.New(),
		Service:   svc.NewUserAdminService(svc.NewGormStore(db)),
	}
}

// POST /users (super_admin)
func (ctl *UserAdminController) CreateUser(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := ctl.Service.CreateUser(c.UserContext(), actorID, svc.CreateUserInput{
		Email:           req.Email,
		Password:        req.Password,
		FullName:        req.FullName,
		Role:            req.Role,
		KabupatenKotaID: req.KabupatenKotaID,
	})
	if err != nil {
		return ctl.mapUserError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User dibuat", dto.FromModel(u))
}

// DELETE /users/:id (super_admin)
func (ctl *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := ctl.Service.DeleteUser(c.UserContext(), actorID, id); err != nil {
		return ctl.mapUserError(c, err)
	}
	return helper.Success(c, "User dihapus", nil)
}

// PATCH /users/:id/email (admin ke atas)
func (ctl *UserAdminController) UpdateUserEmail(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateUserEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := ctl.Service.UpdateEmail(c.UserContext(), actorID, id, req.Email)
	if err != nil {
		return ctl.mapUserError(c, err)
	}
	return helper.Success(c, "Email user diperbarui", dto.FromModel(u))
}

// GET /users?role=&kabupaten_kota_id=&search=
func (ctl *UserAdminController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.User{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if kab := c.Query("kabupaten_kota_id"); kab != "" {
		id, err := uuid.Parse(kab)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "kabupaten_kota_id tidak valid")
		}
		q = q.Where("user_kabupaten_kota_id = ?", id)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("user_full_name ILIKE ? OR user_email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.User
	if err := q.Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      dto.FromModels(users),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /users/:id
func (ctl *UserAdminController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var u model.User
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&u))
}

/* ===================== error mapping ===================== */

func (ctl *UserAdminController) mapUserError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrUserNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrEmailTaken):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, svc.ErrSelfDeletion),
		errors.Is(err, svc.ErrSuperAdminTarget):
		return helper.Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, svc.ErrInvalidRole),
		errors.Is(err, svc.ErrRegionRequired):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}
