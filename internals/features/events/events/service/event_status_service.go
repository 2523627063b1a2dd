package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wasitku_backend/internals/features/events/events/model"
	"wasitku_backend/internals/metrics"
)

var (
	ErrEventNotFound     = errors.New("event tidak ditemukan")
	ErrInvalidTransition = errors.New("transisi status event tidak valid")
	ErrNotesRequired     = errors.New("alasan penolakan wajib diisi")
)

// Graf transisi status event. DITOLAK dan SELESAI terminal.
var transitions = map[string][]string{
	model.EventStatusDiajukan:  {model.EventStatusDisetujui, model.EventStatusDitolak},
	model.EventStatusDisetujui: {model.EventStatusSelesai},
}

// CanTransition true bila from → to ada di graf.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Store abstraksi persistence supaya state machine bisa dites tanpa DB.
type Store interface {
	FindEvent(ctx context.Context, id uuid.UUID) (*model.Event, error)
	CreateEvent(ctx context.Context, ev *model.Event) error
	AppendApproval(ctx context.Context, ap *model.EventApproval) error
	// ApplyTransition menulis status baru + baris audit secara atomik.
	ApplyTransition(ctx context.Context, ev *model.Event, ap *model.EventApproval) error
}

type StatusService struct {
	store Store
}

func NewStatusService(store Store) *StatusService {
	return &StatusService{store: store}
}

// Submit membuat event baru berstatus DIAJUKAN + baris audit SUBMIT.
// Gagalnya insert audit TIDAK membatalkan pembuatan event (hanya dicatat di log).
func (s *StatusService) Submit(ctx context.Context, ev *model.Event) error {
	ev.EventStatus = model.EventStatusDiajukan
	if err := s.store.CreateEvent(ctx, ev); err != nil {
		return err
	}

	ap := &model.EventApproval{
		ApprovalEventID:  ev.EventID,
		ApprovalAction:   model.ApprovalActionSubmit,
		ApprovalToStatus: model.EventStatusDiajukan,
		ApprovalActorID:  ev.EventCreatedBy,
	}
	if err := s.store.AppendApproval(ctx, ap); err != nil {
		log.Printf("[WARN] audit SUBMIT event %s gagal ditulis: %v", ev.EventID, err)
	}

	metrics.EventTransitions.WithLabelValues(model.ApprovalActionSubmit).Inc()
	return nil
}

func (s *StatusService) Approve(ctx context.Context, eventID, actorID uuid.UUID, notes *string) (*model.Event, error) {
	return s.transition(ctx, eventID, actorID, model.ApprovalActionApprove, model.EventStatusDisetujui, notes)
}

// Reject wajib menyertakan alasan penolakan.
func (s *StatusService) Reject(ctx context.Context, eventID, actorID uuid.UUID, notes string) (*model.Event, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrNotesRequired
	}
	return s.transition(ctx, eventID, actorID, model.ApprovalActionReject, model.EventStatusDitolak, &notes)
}

func (s *StatusService) Complete(ctx context.Context, eventID, actorID uuid.UUID, notes *string) (*model.Event, error) {
	return s.transition(ctx, eventID, actorID, model.ApprovalActionComplete, model.EventStatusSelesai, notes)
}

// transition: load → guard graf → tulis status + audit atomik.
// Transisi ulang pada event yang sudah berpindah DITOLAK, bukan di-noop,
// supaya tidak ada baris audit ganda.
func (s *StatusService) transition(ctx context.Context, eventID, actorID uuid.UUID, action, to string, notes *string) (*model.Event, error) {
	ev, err := s.store.FindEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if !CanTransition(ev.EventStatus, to) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, ev.EventStatus, to)
	}

	from := ev.EventStatus
	ap := &model.EventApproval{
		ApprovalEventID:    ev.EventID,
		ApprovalAction:     action,
		ApprovalFromStatus: &from,
		ApprovalToStatus:   to,
		ApprovalActorID:    actorID,
		ApprovalNotes:      notes,
	}

	ev.EventStatus = to
	if err := s.store.ApplyTransition(ctx, ev, ap); err != nil {
		return nil, err
	}

	metrics.EventTransitions.WithLabelValues(action).Inc()
	return ev, nil
}
