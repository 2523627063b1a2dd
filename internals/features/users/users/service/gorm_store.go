package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "wasitku_backend/internals/features/admin/audit/model"
	"wasitku_backend/internals/features/users/users/model"
)

// GormStore implementasi Store di atas Postgres.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) FindUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := s.DB.WithContext(ctx).First(&u, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := s.DB.WithContext(ctx).First(&u, "user_email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *model.User) error {
	return s.DB.WithContext(ctx).Create(u).Error
}

func (s *GormStore) SaveUser(ctx context.Context, u *model.User) error {
	return s.DB.WithContext(ctx).Save(u).Error
}

func (s *GormStore) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Delete(&model.User{}, "user_id = ?", id).Error
}

func (s *GormStore) WriteAudit(ctx context.Context, entry *auditModel.AdminActionLog) error {
	return s.DB.WithContext(ctx).Create(entry).Error
}
