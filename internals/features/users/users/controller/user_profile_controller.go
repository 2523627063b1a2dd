// file: internals/features/users/users/controller/user_profile_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/users/users/dto"
	model "wasitku_backend/internals/features/users/users/model"
	helper "wasitku_backend/internals/helpers"
)

type UserProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db, Validator: validator.New()}
}

// GET /profile
func (ctl *UserProfileController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u model.User
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&u))
}

// PATCH /profile
func (ctl *UserProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["user_full_name"] = *req.FullName
	}
	if req.BankName != nil {
		updates["user_bank_name"] = *req.BankName
	}
	if req.BankAccount != nil {
		updates["user_bank_account"] = *req.BankAccount
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "tidak ada field yang diubah")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var u model.User
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&u, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Profil diperbarui", dto.FromModel(&u))
}

// POST /profile/photo — multipart "photo", dikonversi ke WebP lalu
// diunggah ke Supabase storage.
func (ctl *UserProfileController) UploadProfilePhoto(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "file 'photo' wajib diunggah")
	}

	url, err := helper.UploadImageToSupabase("profile_photos", fileHeader)
	if err != nil {
		log.Printf("[ERROR] upload foto profil %s gagal: %v", userID, err)
		return helper.Error(c, fiber.StatusBadGateway, "upload foto gagal: "+err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("user_photo_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("✅ Foto profil %s diperbarui: %s", userID, url)
	return helper.Success(c, "Foto profil diperbarui", fiber.Map{"photo_url": url})
}
