package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"wasitku_backend/internals/constants"
	auditModel "wasitku_backend/internals/features/admin/audit/model"
)

// ── mock store ──

type mockDBStore struct {
	rows       map[string][]map[string]interface{}
	existing   map[string]map[string]bool // table → id(string) → ada
	inserted   map[string][]map[string]interface{}
	upserted   map[string][]map[string]interface{}
	audits     []auditModel.AdminActionLog
	failTables map[string]bool
	fetchCalls []string
}

func newMockDBStore() *mockDBStore {
	return &mockDBStore{
		rows:       make(map[string][]map[string]interface{}),
		existing:   make(map[string]map[string]bool),
		inserted:   make(map[string][]map[string]interface{}),
		upserted:   make(map[string][]map[string]interface{}),
		failTables: make(map[string]bool),
	}
}

func (m *mockDBStore) FetchRows(_ context.Context, spec TableSpec, _, _ *time.Time) ([]map[string]interface{}, error) {
	m.fetchCalls = append(m.fetchCalls, spec.Name)
	if m.failTables[spec.Name] {
		return nil, errors.New("query gagal")
	}
	return m.rows[spec.Name], nil
}

func (m *mockDBStore) RowExists(_ context.Context, spec TableSpec, id interface{}) (bool, error) {
	return m.existing[spec.Name][fmt.Sprint(id)], nil
}

func (m *mockDBStore) InsertRow(_ context.Context, spec TableSpec, record map[string]interface{}) error {
	if m.failTables[spec.Name] {
		return errors.New("insert gagal")
	}
	m.inserted[spec.Name] = append(m.inserted[spec.Name], record)
	return nil
}

func (m *mockDBStore) UpsertRow(_ context.Context, spec TableSpec, record map[string]interface{}) error {
	m.upserted[spec.Name] = append(m.upserted[spec.Name], record)
	return nil
}

func (m *mockDBStore) WriteAudit(_ context.Context, entry *auditModel.AdminActionLog) error {
	m.audits = append(m.audits, *entry)
	return nil
}

// ── Export ──

func TestExport_UnknownTableNeverReachesStore(t *testing.T) {
	store := newMockDBStore()
	svc := NewExportService(store)

	bundle, err := svc.Export(context.Background(), uuid.New(),
		[]string{"events", "pg_shadow"}, FormatJSON, nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if len(bundle.Errors) != 1 || bundle.Errors[0].Table != "pg_shadow" {
		t.Errorf("errors = %+v, want 1 error untuk pg_shadow", bundle.Errors)
	}
	for _, called := range store.fetchCalls {
		if called == "pg_shadow" {
			t.Error("tabel terlarang sampai ke store")
		}
	}
}

func TestExport_PartialFailure(t *testing.T) {
	store := newMockDBStore()
	store.rows["events"] = []map[string]interface{}{
		{"event_id": "e1", "event_name": "Liga Kota"},
	}
	store.failTables["honors"] = true
	svc := NewExportService(store)

	bundle, err := svc.Export(context.Background(), uuid.New(),
		[]string{"events", "honors"}, FormatJSON, nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if len(bundle.Data["events"]) != 1 {
		t.Errorf("events = %d baris, want 1", len(bundle.Data["events"]))
	}
	if len(bundle.Errors) != 1 || bundle.Errors[0].Table != "honors" {
		t.Errorf("errors = %+v", bundle.Errors)
	}
	if bundle.Counts["events"] != 1 {
		t.Errorf("counts = %v", bundle.Counts)
	}
}

func TestExport_WritesAudit(t *testing.T) {
	store := newMockDBStore()
	svc := NewExportService(store)

	actorID := uuid.New()
	if _, err := svc.Export(context.Background(), actorID, []string{"events"}, FormatJSON, nil, nil); err != nil {
		t.Fatalf("export: %v", err)
	}

	if len(store.audits) != 1 {
		t.Fatalf("audit = %d, want 1", len(store.audits))
	}
	if store.audits[0].LogAction != auditModel.ActionExportDatabase {
		t.Errorf("action = %s", store.audits[0].LogAction)
	}
	if store.audits[0].LogActorID != actorID {
		t.Errorf("actor = %s, want %s", store.audits[0].LogActorID, actorID)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	svc := NewExportService(newMockDBStore())
	if _, err := svc.Export(context.Background(), uuid.New(), []string{"events"}, "xml", nil, nil); err == nil {
		t.Error("format xml harus ditolak")
	}
}

func TestExport_CSVFormat(t *testing.T) {
	store := newMockDBStore()
	store.rows["kabupaten_kota"] = []map[string]interface{}{
		{"kabupaten_kota_id": "k1", "kabupaten_kota_name": "Kota Bandung", "kabupaten_kota_slug": "kota-bandung"},
	}
	svc := NewExportService(store)

	bundle, err := svc.Export(context.Background(), uuid.New(),
		[]string{"kabupaten_kota"}, FormatCSV, nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	csvText := bundle.CSVData["kabupaten_kota"]
	if !strings.HasPrefix(csvText, "kabupaten_kota_id,kabupaten_kota_name,kabupaten_kota_slug") {
		t.Errorf("header CSV salah: %q", csvText)
	}
	if !strings.Contains(csvText, "Kota Bandung") {
		t.Errorf("isi CSV salah: %q", csvText)
	}
}

func TestExport_EmptyTablesExportsAllAllowed(t *testing.T) {
	store := newMockDBStore()
	store.rows["events"] = []map[string]interface{}{
		{"event_id": "e1", "event_name": "Liga Kota"},
	}
	svc := NewExportService(store)

	bundle, err := svc.Export(context.Background(), uuid.New(), nil, FormatJSON, nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if len(store.fetchCalls) != len(constants.ExportableTables) {
		t.Errorf("fetch = %d tabel, want %d", len(store.fetchCalls), len(constants.ExportableTables))
	}
	if len(bundle.Errors) != 0 {
		t.Errorf("errors = %+v", bundle.Errors)
	}
	if bundle.Counts["events"] != 1 {
		t.Errorf("counts = %v", bundle.Counts)
	}
}

func TestRegistryMatchesAllowList(t *testing.T) {
	for _, name := range constants.ExportableTables {
		spec, ok := LookupTable(name)
		if !ok {
			t.Errorf("tabel %s ada di allow-list tapi tidak punya spec", name)
			continue
		}
		if spec.Name != name {
			t.Errorf("spec.Name = %s, want %s", spec.Name, name)
		}
	}
	for name := range tableRegistry {
		if !constants.IsExportableTable(name) {
			t.Errorf("tabel %s punya spec tapi tidak ada di allow-list", name)
		}
	}
	if _, ok := LookupTable("pg_shadow"); ok {
		t.Error("tabel di luar allow-list harus ditolak")
	}
}

// ── Import ──

func importPayload(table string, records ...map[string]interface{}) map[string][]map[string]interface{} {
	return map[string][]map[string]interface{}{table: records}
}

func TestImport_DisallowedTableAllFailed(t *testing.T) {
	store := newMockDBStore()
	svc := NewImportService(store)

	results, err := svc.Import(context.Background(), uuid.New(),
		importPayload("pg_shadow",
			map[string]interface{}{"usename": "hacker"},
			map[string]interface{}{"usename": "hacker2"},
		), StrategySkip)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if results[0].Failed != 2 || results[0].Success != 0 {
		t.Errorf("result = %+v", results[0])
	}
	if len(store.inserted) != 0 && len(store.upserted) != 0 {
		t.Error("store tersentuh untuk tabel terlarang")
	}
}

func TestImport_SkipStrategy(t *testing.T) {
	store := newMockDBStore()
	store.existing["events"] = map[string]bool{"ada": true}
	svc := NewImportService(store)

	results, err := svc.Import(context.Background(), uuid.New(),
		importPayload("events",
			map[string]interface{}{"event_id": "ada", "event_name": "Lama"},
			map[string]interface{}{"event_id": "baru", "event_name": "Baru"},
		), StrategySkip)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	// keduanya sukses: yang sudah ada dilewati, yang baru di-insert
	if results[0].Success != 2 || results[0].Failed != 0 {
		t.Errorf("result = %+v", results[0])
	}
	if len(store.inserted["events"]) != 1 {
		t.Fatalf("inserted = %d, want 1", len(store.inserted["events"]))
	}
	if store.inserted["events"][0]["event_id"] != "baru" {
		t.Errorf("record yang di-insert salah: %v", store.inserted["events"][0])
	}
}

func TestImport_UpdateStrategy(t *testing.T) {
	store := newMockDBStore()
	svc := NewImportService(store)

	results, err := svc.Import(context.Background(), uuid.New(),
		importPayload("events",
			map[string]interface{}{"event_id": "e1", "event_name": "Diperbarui"},
		), StrategyUpdate)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if results[0].Success != 1 {
		t.Errorf("result = %+v", results[0])
	}
	if len(store.upserted["events"]) != 1 {
		t.Errorf("upserted = %d, want 1", len(store.upserted["events"]))
	}
}

func TestImport_NoIDInserted(t *testing.T) {
	store := newMockDBStore()
	svc := NewImportService(store)

	if _, err := svc.Import(context.Background(), uuid.New(),
		importPayload("events",
			map[string]interface{}{"event_name": "Tanpa ID"},
		), StrategySkip); err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(store.inserted["events"]) != 1 {
		t.Fatalf("inserted = %d, want 1", len(store.inserted["events"]))
	}
	if _, ok := store.inserted["events"][0]["event_id"]; ok {
		t.Error("record tanpa id tidak boleh membawa kolom id")
	}
}

func TestImport_SanitizesRecord(t *testing.T) {
	store := newMockDBStore()
	svc := NewImportService(store)

	if _, err := svc.Import(context.Background(), uuid.New(),
		importPayload("users",
			map[string]interface{}{
				"user_id":         "u1",
				"user_email":      "wasit@example.com",
				"user_full_name":  "Wasit",
				"user_role":       "wasit",
				"user_password":   "hash-curian",
				"user_created_at": "2020-01-01T00:00:00Z",
				"kolom_asing":     "x",
			},
		), StrategyUpdate); err != nil {
		t.Fatalf("import: %v", err)
	}

	rec := store.upserted["users"][0]
	for _, banned := range []string{"user_password", "user_created_at", "kolom_asing"} {
		if _, ok := rec[banned]; ok {
			t.Errorf("kolom %s lolos sanitasi", banned)
		}
	}
	if rec["user_email"] != "wasit@example.com" {
		t.Errorf("kolom yang diizinkan hilang: %v", rec)
	}
}

func TestImport_ErrorsCappedAtFive(t *testing.T) {
	store := newMockDBStore()
	store.failTables["events"] = true
	svc := NewImportService(store)

	records := make([]map[string]interface{}, 8)
	for i := range records {
		records[i] = map[string]interface{}{"event_name": fmt.Sprintf("Event %d", i)}
	}

	results, err := svc.Import(context.Background(), uuid.New(),
		map[string][]map[string]interface{}{"events": records}, StrategySkip)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if results[0].Failed != 8 {
		t.Errorf("failed = %d, want 8", results[0].Failed)
	}
	if len(results[0].Errors) != 5 {
		t.Errorf("errors = %d, want cap 5", len(results[0].Errors))
	}
}

func TestImport_WritesAggregateAudit(t *testing.T) {
	store := newMockDBStore()
	svc := NewImportService(store)

	if _, err := svc.Import(context.Background(), uuid.New(),
		map[string][]map[string]interface{}{
			"events":         {{"event_name": "A"}},
			"kabupaten_kota": {{"kabupaten_kota_name": "Kota Bogor"}},
		}, StrategySkip); err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(store.audits) != 1 {
		t.Fatalf("audit = %d, want 1 agregat", len(store.audits))
	}
	if store.audits[0].LogAction != auditModel.ActionImportDatabase {
		t.Errorf("action = %s", store.audits[0].LogAction)
	}
}

func TestImport_UnknownStrategy(t *testing.T) {
	svc := NewImportService(newMockDBStore())
	if _, err := svc.Import(context.Background(), uuid.New(),
		importPayload("events", map[string]interface{}{"event_name": "X"}), "merge"); err == nil {
		t.Error("strategi merge harus ditolak")
	}
}
