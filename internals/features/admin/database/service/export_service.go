package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"wasitku_backend/internals/constants"
	auditModel "wasitku_backend/internals/features/admin/audit/model"
	"wasitku_backend/internals/metrics"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Store akses baca/tulis baris mentah per tabel untuk pipeline database ops.
type Store interface {
	FetchRows(ctx context.Context, spec TableSpec, from, to *time.Time) ([]map[string]interface{}, error)
	RowExists(ctx context.Context, spec TableSpec, id interface{}) (bool, error)
	InsertRow(ctx context.Context, spec TableSpec, record map[string]interface{}) error
	UpsertRow(ctx context.Context, spec TableSpec, record map[string]interface{}) error
	WriteAudit(ctx context.Context, entry *auditModel.AdminActionLog) error
}

// TableError kegagalan satu tabel saat ekspor; tabel lain tetap jalan.
type TableError struct {
	Table   string `json:"table"`
	Message string `json:"message"`
}

// ExportBundle hasil ekspor: data JSON per tabel atau string CSV per tabel,
// plus daftar kegagalan parsial.
type ExportBundle struct {
	Format  string                              `json:"format"`
	Data    map[string][]map[string]interface{} `json:"data,omitempty"`
	CSVData map[string]string                   `json:"csv_data,omitempty"`
	Counts  map[string]int                      `json:"counts"`
	Errors  []TableError                        `json:"errors,omitempty"`
}

type ExportService struct {
	store Store
}

func NewExportService(store Store) *ExportService {
	return &ExportService{store: store}
}

// Export mengambil isi tabel-tabel terpilih; daftar kosong berarti semua
// tabel di allow-list. Tabel di luar allow-list atau
// yang query-nya gagal masuk ke errors[]; sisanya tetap dikembalikan
// (bundle parsial). Satu AdminActionLog dicatat per pemanggilan.
func (s *ExportService) Export(ctx context.Context, actorID uuid.UUID, tables []string, format string, from, to *time.Time) (*ExportBundle, error) {
	if format != FormatJSON && format != FormatCSV {
		return nil, fmt.Errorf("format tidak dikenal: %s", format)
	}
	if len(tables) == 0 {
		tables = constants.ExportableTables
	}

	bundle := &ExportBundle{
		Format: format,
		Counts: map[string]int{},
	}
	if format == FormatCSV {
		bundle.CSVData = map[string]string{}
	} else {
		bundle.Data = map[string][]map[string]interface{}{}
	}

	for _, name := range tables {
		spec, ok := LookupTable(name)
		if !ok {
			bundle.Errors = append(bundle.Errors, TableError{
				Table:   name,
				Message: "tabel tidak ada di daftar yang diizinkan",
			})
			continue
		}

		rows, err := s.store.FetchRows(ctx, spec, from, to)
		if err != nil {
			bundle.Errors = append(bundle.Errors, TableError{Table: name, Message: err.Error()})
			continue
		}

		if format == FormatCSV {
			encoded, err := EncodeCSV(rows)
			if err != nil {
				bundle.Errors = append(bundle.Errors, TableError{Table: name, Message: err.Error()})
				continue
			}
			bundle.CSVData[name] = string(encoded)
		} else {
			bundle.Data[name] = rows
		}
		bundle.Counts[name] = len(rows)
		metrics.ExportedRecords.WithLabelValues(name).Add(float64(len(rows)))
	}

	meta := datatypes.JSONMap{
		"tables": tables,
		"format": format,
		"counts": bundle.Counts,
	}
	if from != nil {
		meta["from"] = from.Format(time.RFC3339)
	}
	if to != nil {
		meta["to"] = to.Format(time.RFC3339)
	}
	if err := s.store.WriteAudit(ctx, &auditModel.AdminActionLog{
		LogActorID:  actorID,
		LogAction:   auditModel.ActionExportDatabase,
		LogMetadata: meta,
	}); err != nil {
		log.Printf("[WARN] gagal mencatat audit ekspor: %v", err)
	}

	return bundle, nil
}
