package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	auditModel "wasitku_backend/internals/features/admin/audit/model"
)

// GormStore implementasi Store di atas Postgres. Nama tabel dan kolom
// selalu datang dari TableSpec (registry), tidak pernah dari input user.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) FetchRows(ctx context.Context, spec TableSpec, from, to *time.Time) ([]map[string]interface{}, error) {
	q := s.DB.WithContext(ctx).Table(spec.Name)
	if from != nil {
		q = q.Where(spec.CreatedAtColumn+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(spec.CreatedAtColumn+" <= ?", *to)
	}

	var rows []map[string]interface{}
	if err := q.Order(spec.CreatedAtColumn + " DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) RowExists(ctx context.Context, spec TableSpec, id interface{}) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Table(spec.Name).
		Where(fmt.Sprintf("%s = ?", spec.IDColumn), id).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) InsertRow(ctx context.Context, spec TableSpec, record map[string]interface{}) error {
	return s.DB.WithContext(ctx).Table(spec.Name).Create(record).Error
}

func (s *GormStore) UpsertRow(ctx context.Context, spec TableSpec, record map[string]interface{}) error {
	return s.DB.WithContext(ctx).Table(spec.Name).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: spec.IDColumn}},
		UpdateAll: true,
	}).Create(record).Error
}

func (s *GormStore) WriteAudit(ctx context.Context, entry *auditModel.AdminActionLog) error {
	return s.DB.WithContext(ctx).Create(entry).Error
}
