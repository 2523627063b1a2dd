package dto

import (
	"time"

	"github.com/google/uuid"

	"wasitku_backend/internals/features/users/users/model"
)

type CreateUserRequest struct {
	Email           string     `json:"email" validate:"required,email"`
	Password        string     `json:"password" validate:"required,min=8"`
	FullName        string     `json:"full_name" validate:"required,min=3,max=100"`
	Role            string     `json:"role" validate:"required,oneof=wasit admin super_admin"`
	KabupatenKotaID *uuid.UUID `json:"kabupaten_kota_id,omitempty"`
}

type UpdateUserEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	BankName    *string `json:"bank_name,omitempty"`
	BankAccount *string `json:"bank_account,omitempty"`
}

type UserResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	Role            string     `json:"role"`
	KabupatenKotaID *uuid.UUID `json:"kabupaten_kota_id,omitempty"`
	IsActive        bool       `json:"is_active"`
	PhotoURL        *string    `json:"photo_url,omitempty"`
	BankName        *string    `json:"bank_name,omitempty"`
	BankAccount     *string    `json:"bank_account,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromModel(u *model.User) UserResponse {
	return UserResponse{
		UserID:          u.UserID,
		Email:           u.UserEmail,
		FullName:        u.UserFullName,
		Role:            u.UserRole,
		KabupatenKotaID: u.UserKabupatenKotaID,
		IsActive:        u.UserIsActive,
		PhotoURL:        u.UserPhotoURL,
		BankName:        u.UserBankName,
		BankAccount:     u.UserBankAccount,
		CreatedAt:       u.CreatedAt,
	}
}

func FromModels(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}
