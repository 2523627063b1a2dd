package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wasitku_backend/internals/features/honors/honors/model"
	"wasitku_backend/internals/metrics"
)

var (
	ErrHonorNotFound  = errors.New("honor tidak ditemukan")
	ErrNotDraft       = errors.New("honor hanya bisa diubah/dihapus saat masih draft")
	ErrNotSubmitted   = errors.New("honor hanya bisa diverifikasi saat berstatus submitted")
	ErrNotOwner       = errors.New("honor bukan milik wasit tersebut")
	ErrNotAssigned    = errors.New("wasit tidak ditugaskan pada event tersebut")
	ErrInvalidOutcome = errors.New("hasil verifikasi harus 'verified' atau 'rejected'")
)

// Store abstraksi persistence honor.
type Store interface {
	FindHonor(ctx context.Context, id uuid.UUID) (*model.Honor, error)
	CreateHonor(ctx context.Context, h *model.Honor) error
	SaveHonor(ctx context.Context, h *model.Honor) error
	DeleteHonor(ctx context.Context, id uuid.UUID) error
	HasAssignment(ctx context.Context, eventID, wasitID uuid.UUID) (bool, error)
	ListByWasit(ctx context.Context, wasitID uuid.UUID) ([]model.Honor, error)
}

// PayoutClient mengirim pencairan honor yang sudah diverifikasi
// (implementasi produksi: Midtrans Iris). Boleh nil → pencairan nonaktif.
type PayoutClient interface {
	CreatePayout(ctx context.Context, h *model.Honor) (referenceNo string, err error)
}

type HonorService struct {
	store  Store
	payout PayoutClient
}

func NewHonorService(store Store, payout PayoutClient) *HonorService {
	return &HonorService{store: store, payout: payout}
}

// Create membuat klaim honor berstatus draft.
// Kalau di-link ke event, wasit wajib punya penugasan pada event itu.
func (s *HonorService) Create(ctx context.Context, wasitID uuid.UUID, eventID *uuid.UUID, amount int64, notes *string) (*model.Honor, error) {
	if eventID != nil {
		assigned, err := s.store.HasAssignment(ctx, *eventID, wasitID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, ErrNotAssigned
		}
	}

	h := &model.Honor{
		HonorWasitID:   wasitID,
		HonorEventID:   eventID,
		HonorAmountIDR: amount,
		HonorNotes:     notes,
		HonorStatus:    model.HonorStatusDraft,
	}
	if err := s.store.CreateHonor(ctx, h); err != nil {
		return nil, err
	}
	metrics.HonorTransitions.WithLabelValues("create").Inc()
	return h, nil
}

// Update hanya untuk draft milik wasit sendiri.
func (s *HonorService) Update(ctx context.Context, id, wasitID uuid.UUID, amount *int64, notes *string) (*model.Honor, error) {
	h, err := s.ownedDraft(ctx, id, wasitID)
	if err != nil {
		return nil, err
	}

	if amount != nil {
		h.HonorAmountIDR = *amount
	}
	if notes != nil {
		h.HonorNotes = notes
	}
	if err := s.store.SaveHonor(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// SubmitForVerification: draft → submitted.
func (s *HonorService) SubmitForVerification(ctx context.Context, id, wasitID uuid.UUID) (*model.Honor, error) {
	h, err := s.ownedDraft(ctx, id, wasitID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	h.HonorStatus = model.HonorStatusSubmitted
	h.HonorSubmittedAt = &now
	if err := s.store.SaveHonor(ctx, h); err != nil {
		return nil, err
	}
	metrics.HonorTransitions.WithLabelValues("submit").Inc()
	return h, nil
}

// Verify: submitted → verified|rejected, oleh admin.
// Honor yang verified memicu pencairan (best-effort): gagalnya payout
// dicatat di log, verifikasi tetap tersimpan.
func (s *HonorService) Verify(ctx context.Context, id, actorID uuid.UUID, outcome string, notes *string) (*model.Honor, error) {
	if outcome != model.HonorStatusVerified && outcome != model.HonorStatusRejected {
		return nil, ErrInvalidOutcome
	}

	h, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !h.IsSubmitted() {
		return nil, ErrNotSubmitted
	}

	now := time.Now()
	h.HonorStatus = outcome
	h.HonorVerifiedAt = &now
	h.HonorVerifiedBy = &actorID
	h.HonorVerificationNotes = notes
	if err := s.store.SaveHonor(ctx, h); err != nil {
		return nil, err
	}
	metrics.HonorTransitions.WithLabelValues(outcome).Inc()

	if outcome == model.HonorStatusVerified && s.payout != nil {
		ref, err := s.payout.CreatePayout(ctx, h)
		if err != nil {
			log.Printf("[WARN] pencairan honor %s gagal: %v", h.HonorID, err)
		} else {
			h.HonorPayoutReference = &ref
			if err := s.store.SaveHonor(ctx, h); err != nil {
				log.Printf("[WARN] simpan referensi payout honor %s gagal: %v", h.HonorID, err)
			}
			metrics.HonorPayouts.Inc()
		}
	}
	return h, nil
}

// Delete hanya untuk draft milik wasit sendiri.
func (s *HonorService) Delete(ctx context.Context, id, wasitID uuid.UUID) error {
	if _, err := s.ownedDraft(ctx, id, wasitID); err != nil {
		return err
	}
	return s.store.DeleteHonor(ctx, id)
}

/* ===================== Statistik turunan ===================== */

// HonorStats dihitung ulang dari kumpulan baris honor saat dibaca,
// tidak pernah disimpan.
type HonorStats struct {
	TotalDraft     int   `json:"total_draft"`
	TotalPending   int   `json:"total_pending"`
	TotalVerified  int   `json:"total_verified"`
	TotalRejected  int   `json:"total_rejected"`
	VerifiedAmount int64 `json:"verified_amount_idr"`
}

func ComputeStats(honors []model.Honor) HonorStats {
	var st HonorStats
	for i := range honors {
		switch honors[i].HonorStatus {
		case model.HonorStatusDraft:
			st.TotalDraft++
		case model.HonorStatusSubmitted:
			st.TotalPending++
		case model.HonorStatusVerified:
			st.TotalVerified++
			st.VerifiedAmount += honors[i].HonorAmountIDR
		case model.HonorStatusRejected:
			st.TotalRejected++
		}
	}
	return st
}

func (s *HonorService) StatsByWasit(ctx context.Context, wasitID uuid.UUID) (HonorStats, error) {
	honors, err := s.store.ListByWasit(ctx, wasitID)
	if err != nil {
		return HonorStats{}, err
	}
	return ComputeStats(honors), nil
}

/* ===================== internal ===================== */

func (s *HonorService) find(ctx context.Context, id uuid.UUID) (*model.Honor, error) {
	h, err := s.store.FindHonor(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHonorNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *HonorService) ownedDraft(ctx context.Context, id, wasitID uuid.UUID) (*model.Honor, error) {
	h, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.HonorWasitID != wasitID {
		return nil, ErrNotOwner
	}
	if !h.IsDraft() {
		return nil, ErrNotDraft
	}
	return h, nil
}
