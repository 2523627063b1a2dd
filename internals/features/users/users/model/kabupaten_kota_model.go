package model

import (
	"time"

	"github.com/google/uuid"
)

// KabupatenKota wilayah penugasan wasit dan pembatasan akses admin.
type KabupatenKota struct {
	KabupatenKotaID       uuid.UUID `gorm:"column:kabupaten_kota_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kabupaten_kota_id"`
	KabupatenKotaName     string    `gorm:"column:kabupaten_kota_name;type:varchar(100);not null;uniqueIndex" json:"kabupaten_kota_name"`
	KabupatenKotaProvince string    `gorm:"column:kabupaten_kota_province;type:varchar(100);not null" json:"kabupaten_kota_province"`
	KabupatenKotaSlug     string    `gorm:"column:kabupaten_kota_slug;type:varchar(120);not null;uniqueIndex" json:"kabupaten_kota_slug"`

	CreatedAt time.Time `gorm:"column:kabupaten_kota_created_at;autoCreateTime" json:"kabupaten_kota_created_at"`
	UpdatedAt time.Time `gorm:"column:kabupaten_kota_updated_at;autoUpdateTime" json:"kabupaten_kota_updated_at"`
}

func (KabupatenKota) TableName() string { return "kabupaten_kota" }
