package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wasitku_backend/internals/features/honors/honors/model"
)

// ── mock store ──

type mockHonorStore struct {
	honors      map[uuid.UUID]*model.Honor
	assignments map[[2]uuid.UUID]bool // [event, wasit]
	deleted     []uuid.UUID
}

func newMockHonorStore() *mockHonorStore {
	return &mockHonorStore{
		honors:      make(map[uuid.UUID]*model.Honor),
		assignments: make(map[[2]uuid.UUID]bool),
	}
}

func (m *mockHonorStore) FindHonor(_ context.Context, id uuid.UUID) (*model.Honor, error) {
	if h, ok := m.honors[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHonorStore) CreateHonor(_ context.Context, h *model.Honor) error {
	if h.HonorID == uuid.Nil {
		h.HonorID = uuid.New()
	}
	cp := *h
	m.honors[h.HonorID] = &cp
	return nil
}

func (m *mockHonorStore) SaveHonor(_ context.Context, h *model.Honor) error {
	cp := *h
	m.honors[h.HonorID] = &cp
	return nil
}

func (m *mockHonorStore) DeleteHonor(_ context.Context, id uuid.UUID) error {
	delete(m.honors, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockHonorStore) HasAssignment(_ context.Context, eventID, wasitID uuid.UUID) (bool, error) {
	return m.assignments[[2]uuid.UUID{eventID, wasitID}], nil
}

func (m *mockHonorStore) ListByWasit(_ context.Context, wasitID uuid.UUID) ([]model.Honor, error) {
	var out []model.Honor
	for _, h := range m.honors {
		if h.HonorWasitID == wasitID {
			out = append(out, *h)
		}
	}
	return out, nil
}

type mockPayout struct {
	calls int
	fail  bool
}

func (m *mockPayout) CreatePayout(_ context.Context, _ *model.Honor) (string, error) {
	m.calls++
	if m.fail {
		return "", errors.New("payout gateway down")
	}
	return "IRIS-REF-001", nil
}

func seedHonor(store *mockHonorStore, wasitID uuid.UUID, status string) uuid.UUID {
	id := uuid.New()
	store.honors[id] = &model.Honor{
		HonorID:        id,
		HonorWasitID:   wasitID,
		HonorAmountIDR: 500_000,
		HonorStatus:    status,
	}
	return id
}

// ── Create ──

func TestCreate_WithoutEvent(t *testing.T) {
	store := newMockHonorStore()
	svc := NewHonorService(store, nil)

	h, err := svc.Create(context.Background(), uuid.New(), nil, 750_000, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if h.HonorStatus != model.HonorStatusDraft {
		t.Errorf("status = %s, want draft", h.HonorStatus)
	}
}

func TestCreate_RequiresAssignment(t *testing.T) {
	store := newMockHonorStore()
	svc := NewHonorService(store, nil)

	wasitID := uuid.New()
	eventID := uuid.New()

	_, err := svc.Create(context.Background(), wasitID, &eventID, 500_000, nil)
	if !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("err = %v, want ErrNotAssigned", err)
	}

	store.assignments[[2]uuid.UUID{eventID, wasitID}] = true
	if _, err := svc.Create(context.Background(), wasitID, &eventID, 500_000, nil); err != nil {
		t.Fatalf("Create setelah ditugaskan: %v", err)
	}
}

// ── Update / Delete guard draft ──

func TestUpdate_OnlyDraft(t *testing.T) {
	wasitID := uuid.New()
	amount := int64(900_000)

	for _, status := range []string{model.HonorStatusSubmitted, model.HonorStatusVerified, model.HonorStatusRejected} {
		store := newMockHonorStore()
		id := seedHonor(store, wasitID, status)
		svc := NewHonorService(store, nil)

		_, err := svc.Update(context.Background(), id, wasitID, &amount, nil)
		if !errors.Is(err, ErrNotDraft) {
			t.Errorf("update %s: err = %v, want ErrNotDraft", status, err)
		}
	}

	store := newMockHonorStore()
	id := seedHonor(store, wasitID, model.HonorStatusDraft)
	svc := NewHonorService(store, nil)

	h, err := svc.Update(context.Background(), id, wasitID, &amount, nil)
	if err != nil {
		t.Fatalf("update draft: %v", err)
	}
	if h.HonorAmountIDR != amount {
		t.Errorf("amount = %d, want %d", h.HonorAmountIDR, amount)
	}
}

func TestDelete_OnlyDraftAndOwner(t *testing.T) {
	wasitID := uuid.New()

	store := newMockHonorStore()
	id := seedHonor(store, wasitID, model.HonorStatusSubmitted)
	svc := NewHonorService(store, nil)
	if err := svc.Delete(context.Background(), id, wasitID); !errors.Is(err, ErrNotDraft) {
		t.Errorf("delete submitted: err = %v, want ErrNotDraft", err)
	}

	store = newMockHonorStore()
	id = seedHonor(store, wasitID, model.HonorStatusDraft)
	svc = NewHonorService(store, nil)
	if err := svc.Delete(context.Background(), id, uuid.New()); !errors.Is(err, ErrNotOwner) {
		t.Errorf("delete bukan pemilik: err = %v, want ErrNotOwner", err)
	}
	if err := svc.Delete(context.Background(), id, wasitID); err != nil {
		t.Fatalf("delete draft pemilik: %v", err)
	}
	if len(store.deleted) != 1 {
		t.Errorf("deleted = %d, want 1", len(store.deleted))
	}
}

// ── Submit / Verify ──

func TestSubmitForVerification(t *testing.T) {
	wasitID := uuid.New()
	store := newMockHonorStore()
	id := seedHonor(store, wasitID, model.HonorStatusDraft)
	svc := NewHonorService(store, nil)

	h, err := svc.SubmitForVerification(context.Background(), id, wasitID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if h.HonorStatus != model.HonorStatusSubmitted {
		t.Errorf("status = %s, want submitted", h.HonorStatus)
	}
	if h.HonorSubmittedAt == nil {
		t.Error("submitted_at tidak terisi")
	}

	// submit kedua harus gagal (bukan draft lagi)
	if _, err := svc.SubmitForVerification(context.Background(), id, wasitID); !errors.Is(err, ErrNotDraft) {
		t.Errorf("submit kedua: err = %v, want ErrNotDraft", err)
	}
}

func TestVerify_OnlySubmitted(t *testing.T) {
	for _, status := range []string{model.HonorStatusDraft, model.HonorStatusVerified, model.HonorStatusRejected} {
		store := newMockHonorStore()
		id := seedHonor(store, uuid.New(), status)
		svc := NewHonorService(store, nil)

		_, err := svc.Verify(context.Background(), id, uuid.New(), model.HonorStatusVerified, nil)
		if !errors.Is(err, ErrNotSubmitted) {
			t.Errorf("verify dari %s: err = %v, want ErrNotSubmitted", status, err)
		}
	}
}

func TestVerify_InvalidOutcome(t *testing.T) {
	store := newMockHonorStore()
	id := seedHonor(store, uuid.New(), model.HonorStatusSubmitted)
	svc := NewHonorService(store, nil)

	_, err := svc.Verify(context.Background(), id, uuid.New(), "approved", nil)
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Errorf("err = %v, want ErrInvalidOutcome", err)
	}
}

func TestVerify_TriggersPayout(t *testing.T) {
	store := newMockHonorStore()
	id := seedHonor(store, uuid.New(), model.HonorStatusSubmitted)
	payout := &mockPayout{}
	svc := NewHonorService(store, payout)

	actorID := uuid.New()
	h, err := svc.Verify(context.Background(), id, actorID, model.HonorStatusVerified, nil)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if payout.calls != 1 {
		t.Errorf("payout calls = %d, want 1", payout.calls)
	}
	if h.HonorPayoutReference == nil || *h.HonorPayoutReference != "IRIS-REF-001" {
		t.Errorf("payout reference = %v", h.HonorPayoutReference)
	}
	if h.HonorVerifiedBy == nil || *h.HonorVerifiedBy != actorID {
		t.Errorf("verified_by = %v, want %s", h.HonorVerifiedBy, actorID)
	}
}

func TestVerify_PayoutFailureIsNonFatal(t *testing.T) {
	store := newMockHonorStore()
	id := seedHonor(store, uuid.New(), model.HonorStatusSubmitted)
	payout := &mockPayout{fail: true}
	svc := NewHonorService(store, payout)

	h, err := svc.Verify(context.Background(), id, uuid.New(), model.HonorStatusVerified, nil)
	if err != nil {
		t.Fatalf("verify harus sukses walau payout gagal: %v", err)
	}
	if h.HonorStatus != model.HonorStatusVerified {
		t.Errorf("status = %s, want verified", h.HonorStatus)
	}
	if h.HonorPayoutReference != nil {
		t.Errorf("payout reference harus kosong, got %v", *h.HonorPayoutReference)
	}
}

func TestVerify_RejectedSkipsPayout(t *testing.T) {
	store := newMockHonorStore()
	id := seedHonor(store, uuid.New(), model.HonorStatusSubmitted)
	payout := &mockPayout{}
	svc := NewHonorService(store, payout)

	if _, err := svc.Verify(context.Background(), id, uuid.New(), model.HonorStatusRejected, nil); err != nil {
		t.Fatalf("verify rejected: %v", err)
	}
	if payout.calls != 0 {
		t.Errorf("payout calls = %d, want 0", payout.calls)
	}
}

// ── Statistik turunan ──

func TestComputeStats(t *testing.T) {
	honors := []model.Honor{
		{HonorStatus: model.HonorStatusDraft, HonorAmountIDR: 100_000},
		{HonorStatus: model.HonorStatusSubmitted, HonorAmountIDR: 200_000},
		{HonorStatus: model.HonorStatusSubmitted, HonorAmountIDR: 250_000},
		{HonorStatus: model.HonorStatusVerified, HonorAmountIDR: 300_000},
		{HonorStatus: model.HonorStatusVerified, HonorAmountIDR: 400_000},
		{HonorStatus: model.HonorStatusRejected, HonorAmountIDR: 999_000},
	}

	st := ComputeStats(honors)
	if st.TotalDraft != 1 || st.TotalPending != 2 || st.TotalVerified != 2 || st.TotalRejected != 1 {
		t.Errorf("stats salah: %+v", st)
	}
	if st.VerifiedAmount != 700_000 {
		t.Errorf("verified_amount = %d, want 700000", st.VerifiedAmount)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	st := ComputeStats(nil)
	if st != (HonorStats{}) {
		t.Errorf("stats kosong salah: %+v", st)
	}
}
