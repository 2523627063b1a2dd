package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wasitku_backend/internals/features/evaluations/evaluations/model"
)

var (
	ErrEvaluationNotFound = errors.New("evaluasi tidak ditemukan")
	ErrNotDraft           = errors.New("evaluasi hanya bisa diubah saat masih draft")
	ErrNotSubmitted       = errors.New("evaluasi hanya bisa direview saat berstatus submitted")
	ErrNotEvaluator       = errors.New("evaluasi bukan milik evaluator tersebut")
	ErrScoreOutOfRange    = errors.New("nilai harus di antara 0 dan 10")
)

// Store abstraksi persistence evaluasi.
type Store interface {
	FindEvaluation(ctx context.Context, id uuid.UUID) (*model.Evaluation, error)
	CreateEvaluation(ctx context.Context, e *model.Evaluation) error
	SaveEvaluation(ctx context.Context, e *model.Evaluation) error
	ListScores(ctx context.Context, evaluationID uuid.UUID) ([]model.EvaluationScore, error)
	UpsertScores(ctx context.Context, scores []model.EvaluationScore) error
	ListActiveCriteria(ctx context.Context) ([]model.EvaluationCriteria, error)
}

type EvaluationService struct {
	store Store
}

func NewEvaluationService(store Store) *EvaluationService {
	return &EvaluationService{store: store}
}

// ComputeTotalScore menghitung rata-rata tertimbang nilai lalu dikali 10
// (skala 0–100). Kriteria yang belum dinilai tidak ikut pembilang maupun
// penyebut; tanpa nilai sama sekali hasilnya 0, bukan NaN.
func ComputeTotalScore(scores []model.EvaluationScore, criteria []model.EvaluationCriteria) float64 {
	weightByCriteria := make(map[uuid.UUID]float64, len(criteria))
	for i := range criteria {
		weightByCriteria[criteria[i].CriteriaID] = criteria[i].CriteriaWeight
	}

	var sum, totalWeight float64
	for i := range scores {
		w, ok := weightByCriteria[scores[i].ScoreCriteriaID]
		if !ok {
			continue
		}
		sum += scores[i].ScoreValue * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return math.Round(sum/totalWeight*10*100) / 100
}

// Create membuka evaluasi draft baru.
func (s *EvaluationService) Create(ctx context.Context, eventID, wasitID, evaluatorID uuid.UUID) (*model.Evaluation, error) {
	e := &model.Evaluation{
		EvaluationEventID:     eventID,
		EvaluationWasitID:     wasitID,
		EvaluationEvaluatorID: evaluatorID,
		EvaluationStatus:      model.EvaluationStatusDraft,
	}
	if err := s.store.CreateEvaluation(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ScoreInput pasangan kriteria-nilai dari evaluator.
type ScoreInput struct {
	CriteriaID uuid.UUID
	Value      float64
}

// UpsertScores menyimpan nilai per kriteria. Nilai untuk kriteria yang sama
// menimpa nilai sebelumnya (ON CONFLICT DO UPDATE di store).
func (s *EvaluationService) UpsertScores(ctx context.Context, evaluationID, evaluatorID uuid.UUID, inputs []ScoreInput) error {
	e, err := s.ownedDraft(ctx, evaluationID, evaluatorID)
	if err != nil {
		return err
	}

	rows := make([]model.EvaluationScore, 0, len(inputs))
	for _, in := range inputs {
		if in.Value < 0 || in.Value > 10 {
			return ErrScoreOutOfRange
		}
		rows = append(rows, model.EvaluationScore{
			ScoreEvaluationID: e.EvaluationID,
			ScoreCriteriaID:   in.CriteriaID,
			ScoreValue:        in.Value,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return s.store.UpsertScores(ctx, rows)
}

// Submit menutup draft: hitung total skor dari nilai tersimpan lalu simpan
// status submitted + total dalam satu kali simpan. Submit ulang ditolak.
func (s *EvaluationService) Submit(ctx context.Context, evaluationID, evaluatorID uuid.UUID, notes *string) (*model.Evaluation, error) {
	e, err := s.ownedDraft(ctx, evaluationID, evaluatorID)
	if err != nil {
		return nil, err
	}

	scores, err := s.store.ListScores(ctx, e.EvaluationID)
	if err != nil {
		return nil, err
	}
	criteria, err := s.store.ListActiveCriteria(ctx)
	if err != nil {
		return nil, err
	}

	total := ComputeTotalScore(scores, criteria)
	now := time.Now()
	e.EvaluationStatus = model.EvaluationStatusSubmitted
	e.EvaluationTotalScore = &total
	e.EvaluationSubmittedAt = &now
	if notes != nil {
		e.EvaluationNotes = notes
	}
	if err := s.store.SaveEvaluation(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Review menandai evaluasi submitted sudah ditinjau admin.
func (s *EvaluationService) Review(ctx context.Context, evaluationID uuid.UUID) (*model.Evaluation, error) {
	e, err := s.find(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	if !e.IsSubmitted() {
		return nil, ErrNotSubmitted
	}
	e.EvaluationStatus = model.EvaluationStatusReviewed
	if err := s.store.SaveEvaluation(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EvaluationService) find(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	e, err := s.store.FindEvaluation(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EvaluationService) ownedDraft(ctx context.Context, id, evaluatorID uuid.UUID) (*model.Evaluation, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.EvaluationEvaluatorID != evaluatorID {
		return nil, ErrNotEvaluator
	}
	if !e.IsDraft() {
		return nil, ErrNotDraft
	}
	return e, nil
}
