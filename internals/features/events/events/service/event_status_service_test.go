package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wasitku_backend/internals/features/events/events/model"
)

// ── mock store ──

type mockEventStore struct {
	events    map[uuid.UUID]*model.Event
	approvals []*model.EventApproval

	failAppendApproval bool
	findCalls          int
}

func newMockEventStore() *mockEventStore {
	return &mockEventStore{events: make(map[uuid.UUID]*model.Event)}
}

func (m *mockEventStore) FindEvent(_ context.Context, id uuid.UUID) (*model.Event, error) {
	m.findCalls++
	if ev, ok := m.events[id]; ok {
		cp := *ev
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventStore) CreateEvent(_ context.Context, ev *model.Event) error {
	if ev.EventID == uuid.Nil {
		ev.EventID = uuid.New()
	}
	cp := *ev
	m.events[ev.EventID] = &cp
	return nil
}

func (m *mockEventStore) AppendApproval(_ context.Context, ap *model.EventApproval) error {
	if m.failAppendApproval {
		return errors.New("audit insert failed")
	}
	m.approvals = append(m.approvals, ap)
	return nil
}

func (m *mockEventStore) ApplyTransition(_ context.Context, ev *model.Event, ap *model.EventApproval) error {
	stored, ok := m.events[ev.EventID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.EventStatus = ev.EventStatus
	m.approvals = append(m.approvals, ap)
	return nil
}

func seedEvent(store *mockEventStore, status string) uuid.UUID {
	id := uuid.New()
	store.events[id] = &model.Event{
		EventID:     id,
		EventName:   "Kejuaraan Daerah",
		EventStatus: status,
	}
	return id
}

// ── CanTransition ──

func TestCanTransition_Graph(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{model.EventStatusDiajukan, model.EventStatusDisetujui, true},
		{model.EventStatusDiajukan, model.EventStatusDitolak, true},
		{model.EventStatusDisetujui, model.EventStatusSelesai, true},
		{model.EventStatusDiajukan, model.EventStatusSelesai, false},
		{model.EventStatusDitolak, model.EventStatusSelesai, false},
		{model.EventStatusDitolak, model.EventStatusDisetujui, false},
		{model.EventStatusSelesai, model.EventStatusDiajukan, false},
		{model.EventStatusDisetujui, model.EventStatusDisetujui, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

// ── Submit ──

func TestSubmit_CreatesEventWithAudit(t *testing.T) {
	store := newMockEventStore()
	svc := NewStatusService(store)

	ev := &model.Event{EventName: "Porda", EventCreatedBy: uuid.New()}
	if err := svc.Submit(context.Background(), ev); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if ev.EventStatus != model.EventStatusDiajukan {
		t.Errorf("status = %s, want DIAJUKAN", ev.EventStatus)
	}
	if len(store.approvals) != 1 {
		t.Fatalf("approvals = %d, want 1", len(store.approvals))
	}
	ap := store.approvals[0]
	if ap.ApprovalAction != model.ApprovalActionSubmit {
		t.Errorf("action = %s, want SUBMIT", ap.ApprovalAction)
	}
	if ap.ApprovalFromStatus != nil {
		t.Errorf("from_status = %v, want nil", *ap.ApprovalFromStatus)
	}
	if ap.ApprovalToStatus != model.EventStatusDiajukan {
		t.Errorf("to_status = %s, want DIAJUKAN", ap.ApprovalToStatus)
	}
}

func TestSubmit_AuditFailureIsNonFatal(t *testing.T) {
	store := newMockEventStore()
	store.failAppendApproval = true
	svc := NewStatusService(store)

	ev := &model.Event{EventName: "Porda", EventCreatedBy: uuid.New()}
	if err := svc.Submit(context.Background(), ev); err != nil {
		t.Fatalf("Submit harus sukses walau audit gagal, got: %v", err)
	}
	if _, ok := store.events[ev.EventID]; !ok {
		t.Error("event tidak tersimpan")
	}
}

// ── Approve / Reject / Complete ──

func TestApprove_FromDiajukan(t *testing.T) {
	store := newMockEventStore()
	id := seedEvent(store, model.EventStatusDiajukan)
	svc := NewStatusService(store)

	ev, err := svc.Approve(context.Background(), id, uuid.New(), nil)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if ev.EventStatus != model.EventStatusDisetujui {
		t.Errorf("status = %s, want DISETUJUI", ev.EventStatus)
	}
	if len(store.approvals) != 1 {
		t.Fatalf("approvals = %d, want 1", len(store.approvals))
	}
	ap := store.approvals[0]
	if ap.ApprovalFromStatus == nil || *ap.ApprovalFromStatus != model.EventStatusDiajukan {
		t.Errorf("from_status salah: %v", ap.ApprovalFromStatus)
	}
	if ap.ApprovalToStatus != model.EventStatusDisetujui {
		t.Errorf("to_status = %s, want DISETUJUI", ap.ApprovalToStatus)
	}
}

func TestApprove_NotFound(t *testing.T) {
	store := newMockEventStore()
	svc := NewStatusService(store)

	_, err := svc.Approve(context.Background(), uuid.New(), uuid.New(), nil)
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestApprove_Twice_Rejected(t *testing.T) {
	store := newMockEventStore()
	id := seedEvent(store, model.EventStatusDiajukan)
	svc := NewStatusService(store)

	if _, err := svc.Approve(context.Background(), id, uuid.New(), nil); err != nil {
		t.Fatalf("Approve pertama: %v", err)
	}
	_, err := svc.Approve(context.Background(), id, uuid.New(), nil)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("approve kedua: err = %v, want ErrInvalidTransition", err)
	}
	// tidak boleh ada baris audit ganda
	if len(store.approvals) != 1 {
		t.Errorf("approvals = %d, want 1 (tanpa duplikat)", len(store.approvals))
	}
}

func TestReject_RequiresNotes(t *testing.T) {
	store := newMockEventStore()
	id := seedEvent(store, model.EventStatusDiajukan)
	svc := NewStatusService(store)

	_, err := svc.Reject(context.Background(), id, uuid.New(), "   ")
	if !errors.Is(err, ErrNotesRequired) {
		t.Errorf("err = %v, want ErrNotesRequired", err)
	}
	if len(store.approvals) != 0 {
		t.Errorf("tidak boleh ada audit untuk reject yang gagal validasi")
	}
}

func TestReject_Terminal(t *testing.T) {
	store := newMockEventStore()
	id := seedEvent(store, model.EventStatusDiajukan)
	svc := NewStatusService(store)

	if _, err := svc.Reject(context.Background(), id, uuid.New(), "dokumen tidak lengkap"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	// DITOLAK terminal: tidak bisa complete maupun approve lagi
	if _, err := svc.Complete(context.Background(), id, uuid.New(), nil); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("complete setelah ditolak: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.Approve(context.Background(), id, uuid.New(), nil); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("approve setelah ditolak: err = %v, want ErrInvalidTransition", err)
	}
}

func TestComplete_OnlyFromDisetujui(t *testing.T) {
	for _, status := range []string{model.EventStatusDiajukan, model.EventStatusDitolak, model.EventStatusSelesai} {
		store := newMockEventStore()
		id := seedEvent(store, status)
		svc := NewStatusService(store)

		_, err := svc.Complete(context.Background(), id, uuid.New(), nil)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("complete dari %s: err = %v, want ErrInvalidTransition", status, err)
		}
	}

	store := newMockEventStore()
	id := seedEvent(store, model.EventStatusDisetujui)
	svc := NewStatusService(store)

	ev, err := svc.Complete(context.Background(), id, uuid.New(), nil)
	if err != nil {
		t.Fatalf("complete dari DISETUJUI: %v", err)
	}
	if ev.EventStatus != model.EventStatusSelesai {
		t.Errorf("status = %s, want SELESAI", ev.EventStatus)
	}
}

// Setiap transisi sukses menghasilkan TEPAT satu baris audit yang cocok.
func TestTransitions_OneAuditRowEach(t *testing.T) {
	store := newMockEventStore()
	id := seedEvent(store, model.EventStatusDiajukan)
	svc := NewStatusService(store)

	if _, err := svc.Approve(context.Background(), id, uuid.New(), nil); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := svc.Complete(context.Background(), id, uuid.New(), nil); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if len(store.approvals) != 2 {
		t.Fatalf("approvals = %d, want 2", len(store.approvals))
	}
	first, second := store.approvals[0], store.approvals[1]
	if *first.ApprovalFromStatus != model.EventStatusDiajukan || first.ApprovalToStatus != model.EventStatusDisetujui {
		t.Errorf("audit pertama: %v → %s", *first.ApprovalFromStatus, first.ApprovalToStatus)
	}
	if *second.ApprovalFromStatus != model.EventStatusDisetujui || second.ApprovalToStatus != model.EventStatusSelesai {
		t.Errorf("audit kedua: %v → %s", *second.ApprovalFromStatus, second.ApprovalToStatus)
	}
}
