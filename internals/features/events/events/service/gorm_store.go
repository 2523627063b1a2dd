package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wasitku_backend/internals/features/events/events/model"
)

// GormStore implementasi Store di atas PostgreSQL.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FindEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var ev model.Event
	if err := s.DB.WithContext(ctx).
		First(&ev, "event_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *GormStore) CreateEvent(ctx context.Context, ev *model.Event) error {
	return s.DB.WithContext(ctx).Create(ev).Error
}

func (s *GormStore) AppendApproval(ctx context.Context, ap *model.EventApproval) error {
	return s.DB.WithContext(ctx).Create(ap).Error
}

// ApplyTransition: update status + insert audit dalam SATU transaksi,
// supaya tidak ada event yang berpindah status tanpa jejak audit.
func (s *GormStore) ApplyTransition(ctx context.Context, ev *model.Event, ap *model.EventApproval) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Event{}).
			Where("event_id = ?", ev.EventID).
			Update("event_status", ev.EventStatus).Error; err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}
