package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	auditModel "wasitku_backend/internals/features/admin/audit/model"
	"wasitku_backend/internals/metrics"
)

// Strategi penanganan record impor yang id-nya sudah ada.
const (
	StrategySkip   = "skip"
	StrategyUpdate = "update"
)

const maxErrorsPerTable = 5

// ImportResult ringkasan impor satu tabel. Errors dipotong maksimal
// maxErrorsPerTable supaya respons tidak membengkak.
type ImportResult struct {
	Table   string   `json:"table"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

type ImportService struct {
	store Store
}

func NewImportService(store Store) *ImportService {
	return &ImportService{store: store}
}

// Import memproses record per tabel. Tabel di luar allow-list: seluruh
// record-nya dihitung gagal tanpa menyentuh store. Kegagalan per record
// dicatat dan diteruskan, tidak menghentikan batch. Satu AdminActionLog
// agregat ditulis di akhir.
func (s *ImportService) Import(ctx context.Context, actorID uuid.UUID, payload map[string][]map[string]interface{}, strategy string) ([]ImportResult, error) {
	if strategy != StrategySkip && strategy != StrategyUpdate {
		return nil, fmt.Errorf("strategi tidak dikenal: %s", strategy)
	}

	results := make([]ImportResult, 0, len(payload))
	for table, records := range payload {
		results = append(results, s.importTable(ctx, table, records, strategy))
	}

	summary := datatypes.JSONMap{"strategy": strategy}
	for _, r := range results {
		summary[r.Table] = map[string]interface{}{
			"success": r.Success,
			"failed":  r.Failed,
		}
	}
	if err := s.store.WriteAudit(ctx, &auditModel.AdminActionLog{
		LogActorID:  actorID,
		LogAction:   auditModel.ActionImportDatabase,
		LogMetadata: summary,
	}); err != nil {
		log.Printf("[WARN] gagal mencatat audit impor: %v", err)
	}
	return results, nil
}

func (s *ImportService) importTable(ctx context.Context, table string, records []map[string]interface{}, strategy string) ImportResult {
	result := ImportResult{Table: table}

	spec, ok := LookupTable(table)
	if !ok {
		result.Failed = len(records)
		result.Errors = append(result.Errors, "tabel tidak ada di daftar yang diizinkan")
		metrics.ImportedRecords.WithLabelValues(table, "failed").Add(float64(len(records)))
		return result
	}

	for i, raw := range records {
		if err := s.importRecord(ctx, spec, raw, strategy); err != nil {
			result.Failed++
			if len(result.Errors) < maxErrorsPerTable {
				result.Errors = append(result.Errors, fmt.Sprintf("record %d: %v", i, err))
			}
			metrics.ImportedRecords.WithLabelValues(table, "failed").Inc()
			continue
		}
		result.Success++
		metrics.ImportedRecords.WithLabelValues(table, "success").Inc()
	}
	return result
}

func (s *ImportService) importRecord(ctx context.Context, spec TableSpec, raw map[string]interface{}, strategy string) error {
	record := sanitizeRecord(spec, raw)
	if len(record) == 0 {
		return fmt.Errorf("tidak ada kolom yang tersisa setelah sanitasi")
	}

	id, hasID := record[spec.IDColumn]
	if !hasID || id == nil || id == "" {
		// tanpa id → selalu insert sebagai baris baru
		delete(record, spec.IDColumn)
		return s.store.InsertRow(ctx, spec, record)
	}

	switch strategy {
	case StrategyUpdate:
		return s.store.UpsertRow(ctx, spec, record)
	default: // skip
		exists, err := s.store.RowExists(ctx, spec, id)
		if err != nil {
			return err
		}
		if exists {
			// sudah ada → dihitung sukses, baris lama tidak disentuh
			return nil
		}
		return s.store.InsertRow(ctx, spec, record)
	}
}

// sanitizeRecord memproyeksikan record ke kolom yang diizinkan saja.
// Kolom server-managed (created/updated/deleted_at) tidak pernah ada di
// AllowedColumns, jadi otomatis terbuang; begitu juga kolom sensitif
// seperti users.user_password.
func sanitizeRecord(spec TableSpec, raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for _, col := range spec.AllowedColumns {
		if v, ok := raw[col]; ok {
			out[col] = v
		}
	}
	return out
}
