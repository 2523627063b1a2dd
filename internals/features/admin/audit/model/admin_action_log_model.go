package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Aksi yang dicatat di log_action.
const (
	ActionCreateUser      = "CREATE_USER"
	ActionDeleteUser      = "DELETE_USER"
	ActionUpdateUserEmail = "UPDATE_USER_EMAIL"
	ActionExportDatabase  = "EXPORT_DATABASE"
	ActionImportDatabase  = "IMPORT_DATABASE"
)

// AdminActionLog jejak audit aksi administratif. Append-only: tidak pernah
// di-update atau dihapus oleh aplikasi.
type AdminActionLog struct {
	LogID       uuid.UUID         `gorm:"column:log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"log_id"`
	LogActorID  uuid.UUID         `gorm:"column:log_actor_id;type:uuid;not null;index" json:"log_actor_id"`
	LogAction   string            `gorm:"column:log_action;type:varchar(50);not null;index" json:"log_action"`
	LogTargetID *uuid.UUID        `gorm:"column:log_target_id;type:uuid" json:"log_target_id,omitempty"`
	LogMetadata datatypes.JSONMap `gorm:"column:log_metadata;type:jsonb" json:"log_metadata,omitempty"`

	CreatedAt time.Time `gorm:"column:log_created_at;autoCreateTime" json:"log_created_at"`
}

func (AdminActionLog) TableName() string { return "admin_action_logs" }
