package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	auditModel "wasitku_backend/internals/features/admin/audit/model"
	"wasitku_backend/internals/features/users/users/model"
)

var (
	ErrUserNotFound     = errors.New("user tidak ditemukan")
	ErrEmailTaken       = errors.New("email sudah terdaftar")
	ErrInvalidRole      = errors.New("role tidak dikenal")
	ErrRegionRequired   = errors.New("kabupaten/kota wajib diisi untuk role selain super_admin")
	ErrSelfDeletion     = errors.New("tidak bisa menghapus akun sendiri")
	ErrSuperAdminTarget = errors.New("akun super_admin tidak bisa dihapus")
)

// Store abstraksi persistence user + audit.
type Store interface {
	FindUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) error
	SaveUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	WriteAudit(ctx context.Context, entry *auditModel.AdminActionLog) error
}

type UserAdminService struct {
	store Store
}

func NewUserAdminService(store Store) *UserAdminService {
	return &UserAdminService{store: store}
}

// CreateUserInput data akun baru dari super_admin.
type CreateUserInput struct {
	Email           string
	Password        string
	FullName        string
	Role            string
	KabupatenKotaID *uuid.UUID
}

// CreateUser membuat akun baru. Role selain super_admin wajib terikat
// kabupaten/kota. Email duplikat ditolak sebelum menyentuh store.
func (s *UserAdminService) CreateUser(ctx context.Context, actorID uuid.UUID, in CreateUserInput) (*model.User, error) {
	role := strings.TrimSpace(in.Role)
	if !validRole(role) {
		return nil, ErrInvalidRole
	}
	if role != constants.RoleSuperAdmin && in.KabupatenKotaID == nil {
		return nil, ErrRegionRequired
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if existing, err := s.store.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		UserEmail:           email,
		UserPassword:        string(hash),
		UserFullName:        strings.TrimSpace(in.FullName),
		UserRole:            role,
		UserKabupatenKotaID: in.KabupatenKotaID,
		UserIsActive:        true,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		if isDuplicateErr(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.audit(ctx, actorID, auditModel.ActionCreateUser, &u.UserID, datatypes.JSONMap{
		"email":     u.UserEmail,
		"full_name": u.UserFullName,
		"role":      u.UserRole,
	})
	return u, nil
}

// DeleteUser menghapus akun (soft delete). Menghapus diri sendiri atau
// sesama super_admin ditolak. Snapshot akun ikut tercatat di audit.
func (s *UserAdminService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrSelfDeletion
	}

	target, err := s.find(ctx, targetID)
	if err != nil {
		return err
	}
	if target.IsSuperAdmin() {
		return ErrSuperAdminTarget
	}

	if err := s.store.DeleteUser(ctx, targetID); err != nil {
		return err
	}

	snapshot := datatypes.JSONMap{
		"email":     target.UserEmail,
		"full_name": target.UserFullName,
		"role":      target.UserRole,
		"is_active": target.UserIsActive,
	}
	if target.UserKabupatenKotaID != nil {
		snapshot["kabupaten_kota_id"] = target.UserKabupatenKotaID.String()
	}
	s.audit(ctx, actorID, auditModel.ActionDeleteUser, &targetID, snapshot)
	return nil
}

// UpdateEmail mengganti email akun; email lama dan baru tercatat di audit.
func (s *UserAdminService) UpdateEmail(ctx context.Context, actorID, targetID uuid.UUID, newEmail string) (*model.User, error) {
	target, err := s.find(ctx, targetID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(newEmail))
	if email == target.UserEmail {
		return target, nil
	}
	if existing, err := s.store.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	before := target.UserEmail
	target.UserEmail = email
	if err := s.store.SaveUser(ctx, target); err != nil {
		if isDuplicateErr(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.audit(ctx, actorID, auditModel.ActionUpdateUserEmail, &targetID, datatypes.JSONMap{
		"before": before,
		"after":  email,
	})
	return target, nil
}

/* ===================== internal ===================== */

func validRole(role string) bool {
	for _, r := range constants.AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func isDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate") ||
		strings.Contains(err.Error(), "23505")
}

func (s *UserAdminService) find(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.store.FindUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// audit best-effort: gagalnya pencatatan tidak membatalkan aksi utama.
func (s *UserAdminService) audit(ctx context.Context, actorID uuid.UUID, action string, targetID *uuid.UUID, meta datatypes.JSONMap) {
	entry := &auditModel.AdminActionLog{
		LogActorID:  actorID,
		LogAction:   action,
		LogTargetID: targetID,
		LogMetadata: meta,
	}
	if err := s.store.WriteAudit(ctx, entry); err != nil {
		log.Printf("[WARN] gagal mencatat audit %s: %v", action, err)
	}
}
