package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wasitku_backend/internals/features/evaluations/evaluations/model"
)

// ── mock store ──

type mockEvalStore struct {
	evaluations map[uuid.UUID]*model.Evaluation
	scores      map[[2]uuid.UUID]float64 // [evaluation, criteria]
	criteria    []model.EvaluationCriteria
}

func newMockEvalStore() *mockEvalStore {
	return &mockEvalStore{
		evaluations: make(map[uuid.UUID]*model.Evaluation),
		scores:      make(map[[2]uuid.UUID]float64),
	}
}

func (m *mockEvalStore) FindEvaluation(_ context.Context, id uuid.UUID) (*model.Evaluation, error) {
	if e, ok := m.evaluations[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEvalStore) CreateEvaluation(_ context.Context, e *model.Evaluation) error {
	if e.EvaluationID == uuid.Nil {
		e.EvaluationID = uuid.New()
	}
	cp := *e
	m.evaluations[e.EvaluationID] = &cp
	return nil
}

func (m *mockEvalStore) SaveEvaluation(_ context.Context, e *model.Evaluation) error {
	cp := *e
	m.evaluations[e.EvaluationID] = &cp
	return nil
}

func (m *mockEvalStore) ListScores(_ context.Context, evaluationID uuid.UUID) ([]model.EvaluationScore, error) {
	var out []model.EvaluationScore
	for key, v := range m.scores {
		if key[0] == evaluationID {
			out = append(out, model.EvaluationScore{
				ScoreEvaluationID: key[0],
				ScoreCriteriaID:   key[1],
				ScoreValue:        v,
			})
		}
	}
	return out, nil
}

func (m *mockEvalStore) UpsertScores(_ context.Context, scores []model.EvaluationScore) error {
	for _, s := range scores {
		m.scores[[2]uuid.UUID{s.ScoreEvaluationID, s.ScoreCriteriaID}] = s.ScoreValue
	}
	return nil
}

func (m *mockEvalStore) ListActiveCriteria(_ context.Context) ([]model.EvaluationCriteria, error) {
	return m.criteria, nil
}

func criteriaFixture(weights ...float64) []model.EvaluationCriteria {
	out := make([]model.EvaluationCriteria, 0, len(weights))
	for _, w := range weights {
		out = append(out, model.EvaluationCriteria{
			CriteriaID:       uuid.New(),
			CriteriaWeight:   w,
			CriteriaIsActive: true,
		})
	}
	return out
}

// ── ComputeTotalScore ──

func TestComputeTotalScore_PerfectScores(t *testing.T) {
	criteria := criteriaFixture(2, 1, 3)
	var scores []model.EvaluationScore
	for _, c := range criteria {
		scores = append(scores, model.EvaluationScore{ScoreCriteriaID: c.CriteriaID, ScoreValue: 10})
	}

	if got := ComputeTotalScore(scores, criteria); got != 100 {
		t.Errorf("total = %v, want 100", got)
	}
}

func TestComputeTotalScore_WeightedPartial(t *testing.T) {
	// (5×2 + 7×1) / 3 × 10 = 56.67
	criteria := criteriaFixture(2, 1)
	scores := []model.EvaluationScore{
		{ScoreCriteriaID: criteria[0].CriteriaID, ScoreValue: 5},
		{ScoreCriteriaID: criteria[1].CriteriaID, ScoreValue: 7},
	}

	if got := ComputeTotalScore(scores, criteria); got != 56.67 {
		t.Errorf("total = %v, want 56.67", got)
	}
}

func TestComputeTotalScore_SkipsUnscoredCriteria(t *testing.T) {
	// kriteria ketiga (bobot 5) tidak dinilai → tidak masuk penyebut
	criteria := criteriaFixture(2, 1, 5)
	scores := []model.EvaluationScore{
		{ScoreCriteriaID: criteria[0].CriteriaID, ScoreValue: 5},
		{ScoreCriteriaID: criteria[1].CriteriaID, ScoreValue: 7},
	}

	if got := ComputeTotalScore(scores, criteria); got != 56.67 {
		t.Errorf("total = %v, want 56.67", got)
	}
}

func TestComputeTotalScore_Empty(t *testing.T) {
	if got := ComputeTotalScore(nil, criteriaFixture(1, 2)); got != 0 {
		t.Errorf("total = %v, want 0", got)
	}
	if got := ComputeTotalScore(nil, nil); got != 0 {
		t.Errorf("total tanpa kriteria = %v, want 0", got)
	}
}

func TestComputeTotalScore_IgnoresUnknownCriteria(t *testing.T) {
	criteria := criteriaFixture(1)
	scores := []model.EvaluationScore{
		{ScoreCriteriaID: criteria[0].CriteriaID, ScoreValue: 8},
		{ScoreCriteriaID: uuid.New(), ScoreValue: 1}, // kriteria nonaktif/terhapus
	}

	if got := ComputeTotalScore(scores, criteria); got != 80 {
		t.Errorf("total = %v, want 80", got)
	}
}

// ── UpsertScores ──

func TestUpsertScores_OverwritesPreviousValue(t *testing.T) {
	store := newMockEvalStore()
	store.criteria = criteriaFixture(1)
	svc := NewEvaluationService(store)

	evaluatorID := uuid.New()
	eval, err := svc.Create(context.Background(), uuid.New(), uuid.New(), evaluatorID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cID := store.criteria[0].CriteriaID
	if err := svc.UpsertScores(context.Background(), eval.EvaluationID, evaluatorID,
		[]ScoreInput{{CriteriaID: cID, Value: 4}}); err != nil {
		t.Fatalf("upsert pertama: %v", err)
	}
	if err := svc.UpsertScores(context.Background(), eval.EvaluationID, evaluatorID,
		[]ScoreInput{{CriteriaID: cID, Value: 9}}); err != nil {
		t.Fatalf("upsert kedua: %v", err)
	}

	if got := store.scores[[2]uuid.UUID{eval.EvaluationID, cID}]; got != 9 {
		t.Errorf("score = %v, want 9", got)
	}
	if len(store.scores) != 1 {
		t.Errorf("jumlah baris score = %d, want 1", len(store.scores))
	}
}

func TestUpsertScores_RangeGuard(t *testing.T) {
	store := newMockEvalStore()
	svc := NewEvaluationService(store)

	evaluatorID := uuid.New()
	eval, _ := svc.Create(context.Background(), uuid.New(), uuid.New(), evaluatorID)

	err := svc.UpsertScores(context.Background(), eval.EvaluationID, evaluatorID,
		[]ScoreInput{{CriteriaID: uuid.New(), Value: 11}})
	if !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("err = %v, want ErrScoreOutOfRange", err)
	}
}

func TestUpsertScores_EvaluatorOnly(t *testing.T) {
	store := newMockEvalStore()
	svc := NewEvaluationService(store)

	eval, _ := svc.Create(context.Background(), uuid.New(), uuid.New(), uuid.New())

	err := svc.UpsertScores(context.Background(), eval.EvaluationID, uuid.New(),
		[]ScoreInput{{CriteriaID: uuid.New(), Value: 5}})
	if !errors.Is(err, ErrNotEvaluator) {
		t.Errorf("err = %v, want ErrNotEvaluator", err)
	}
}

// ── Submit / Review ──

func TestSubmit_ComputesAndPersistsTotal(t *testing.T) {
	store := newMockEvalStore()
	store.criteria = criteriaFixture(2, 1)
	svc := NewEvaluationService(store)

	evaluatorID := uuid.New()
	eval, _ := svc.Create(context.Background(), uuid.New(), uuid.New(), evaluatorID)
	_ = svc.UpsertScores(context.Background(), eval.EvaluationID, evaluatorID, []ScoreInput{
		{CriteriaID: store.criteria[0].CriteriaID, Value: 5},
		{CriteriaID: store.criteria[1].CriteriaID, Value: 7},
	})

	out, err := svc.Submit(context.Background(), eval.EvaluationID, evaluatorID, nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.EvaluationStatus != model.EvaluationStatusSubmitted {
		t.Errorf("status = %s, want submitted", out.EvaluationStatus)
	}
	if out.EvaluationTotalScore == nil || *out.EvaluationTotalScore != 56.67 {
		t.Errorf("total = %v, want 56.67", out.EvaluationTotalScore)
	}
	if out.EvaluationSubmittedAt == nil {
		t.Error("submitted_at tidak terisi")
	}
}

func TestSubmit_NoScoresYieldsZero(t *testing.T) {
	store := newMockEvalStore()
	store.criteria = criteriaFixture(1)
	svc := NewEvaluationService(store)

	evaluatorID := uuid.New()
	eval, _ := svc.Create(context.Background(), uuid.New(), uuid.New(), evaluatorID)

	out, err := svc.Submit(context.Background(), eval.EvaluationID, evaluatorID, nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.EvaluationTotalScore == nil || *out.EvaluationTotalScore != 0 {
		t.Errorf("total = %v, want 0", out.EvaluationTotalScore)
	}
}

func TestSubmit_Twice_Rejected(t *testing.T) {
	store := newMockEvalStore()
	svc := NewEvaluationService(store)

	evaluatorID := uuid.New()
	eval, _ := svc.Create(context.Background(), uuid.New(), uuid.New(), evaluatorID)

	if _, err := svc.Submit(context.Background(), eval.EvaluationID, evaluatorID, nil); err != nil {
		t.Fatalf("submit pertama: %v", err)
	}
	if _, err := svc.Submit(context.Background(), eval.EvaluationID, evaluatorID, nil); !errors.Is(err, ErrNotDraft) {
		t.Errorf("submit kedua: err = %v, want ErrNotDraft", err)
	}
}

func TestReview_OnlySubmitted(t *testing.T) {
	store := newMockEvalStore()
	svc := NewEvaluationService(store)

	eval, _ := svc.Create(context.Background(), uuid.New(), uuid.New(), uuid.New())

	if _, err := svc.Review(context.Background(), eval.EvaluationID); !errors.Is(err, ErrNotSubmitted) {
		t.Errorf("review draft: err = %v, want ErrNotSubmitted", err)
	}

	store.evaluations[eval.EvaluationID].EvaluationStatus = model.EvaluationStatusSubmitted
	out, err := svc.Review(context.Background(), eval.EvaluationID)
	if err != nil {
		t.Fatalf("review submitted: %v", err)
	}
	if out.EvaluationStatus != model.EvaluationStatusReviewed {
		t.Errorf("status = %s, want reviewed", out.EvaluationStatus)
	}
}

func TestReview_NotFound(t *testing.T) {
	svc := NewEvaluationService(newMockEvalStore())
	if _, err := svc.Review(context.Background(), uuid.New()); !errors.Is(err, ErrEvaluationNotFound) {
		t.Errorf("err = %v, want ErrEvaluationNotFound", err)
	}
}
