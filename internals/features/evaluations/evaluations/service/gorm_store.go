package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wasitku_backend/internals/features/evaluations/evaluations/model"
)

// GormStore implementasi Store di atas Postgres.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) FindEvaluation(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	var e model.Evaluation
	if err := s.DB.WithContext(ctx).First(&e, "evaluation_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *GormStore) CreateEvaluation(ctx context.Context, e *model.Evaluation) error {
	return s.DB.WithContext(ctx).Create(e).Error
}

func (s *GormStore) SaveEvaluation(ctx context.Context, e *model.Evaluation) error {
	return s.DB.WithContext(ctx).Save(e).Error
}

func (s *GormStore) ListScores(ctx context.Context, evaluationID uuid.UUID) ([]model.EvaluationScore, error) {
	var scores []model.EvaluationScore
	err := s.DB.WithContext(ctx).
		Where("score_evaluation_id = ?", evaluationID).
		Find(&scores).Error
	return scores, err
}

// UpsertScores: ON CONFLICT (score_evaluation_id, score_criteria_id) DO UPDATE.
func (s *GormStore) UpsertScores(ctx context.Context, scores []model.EvaluationScore) error {
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "score_evaluation_id"},
			{Name: "score_criteria_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"score_value", "score_updated_at"}),
	}).Create(&scores).Error
}

func (s *GormStore) ListActiveCriteria(ctx context.Context) ([]model.EvaluationCriteria, error) {
	var criteria []model.EvaluationCriteria
	err := s.DB.WithContext(ctx).
		Where("criteria_is_active = ?", true).
		Order("criteria_name ASC").
		Find(&criteria).Error
	return criteria, err
}
