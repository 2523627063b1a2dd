package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "wasitku_backend/internals/features/events/events/model"
	"wasitku_backend/internals/features/honors/honors/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FindHonor(ctx context.Context, id uuid.UUID) (*model.Honor, error) {
	var h model.Honor
	if err := s.DB.WithContext(ctx).
		First(&h, "honor_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *GormStore) CreateHonor(ctx context.Context, h *model.Honor) error {
	return s.DB.WithContext(ctx).Create(h).Error
}

func (s *GormStore) SaveHonor(ctx context.Context, h *model.Honor) error {
	return s.DB.WithContext(ctx).Save(h).Error
}

func (s *GormStore) DeleteHonor(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Delete(&model.Honor{}, "honor_id = ?", id).Error
}

func (s *GormStore) HasAssignment(ctx context.Context, eventID, wasitID uuid.UUID) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&eventModel.EventAssignment{}).
		Where("assignment_event_id = ? AND assignment_wasit_id = ?", eventID, wasitID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) ListByWasit(ctx context.Context, wasitID uuid.UUID) ([]model.Honor, error) {
	var honors []model.Honor
	if err := s.DB.WithContext(ctx).
		Where("honor_wasit_id = ?", wasitID).
		Order("honor_created_at DESC").
		Find(&honors).Error; err != nil {
		return nil, err
	}
	return honors, nil
}
