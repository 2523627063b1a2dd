package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User akun wasit/admin/super_admin. Password selalu hash bcrypt,
// tidak pernah ikut ter-serialize keluar (json:"-").
type User struct {
	UserID              uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail           string     `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword        string     `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserFullName        string     `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`
	UserRole            string     `gorm:"column:user_role;type:varchar(20);not null;default:'wasit';index" json:"user_role"`
	UserKabupatenKotaID *uuid.UUID `gorm:"column:user_kabupaten_kota_id;type:uuid;index" json:"user_kabupaten_kota_id,omitempty"`
	UserIsActive        bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserPhotoURL        *string    `gorm:"column:user_photo_url" json:"user_photo_url,omitempty"`
	UserBankName        *string    `gorm:"column:user_bank_name;type:varchar(50)" json:"user_bank_name,omitempty"`
	UserBankAccount     *string    `gorm:"column:user_bank_account;type:varchar(50)" json:"user_bank_account,omitempty"`

	CreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) IsSuperAdmin() bool { return u.UserRole == "super_admin" }
