package service

import (
	"strings"
	"testing"
)

func TestEncodeCSV_QuotesSpecialCharacters(t *testing.T) {
	records := []map[string]interface{}{
		{
			"event_id":          "e1",
			"event_name":        `Turnamen "Piala Wali Kota", Final`,
			"event_description": "baris satu\nbaris dua",
		},
	}

	out, err := EncodeCSV(records)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	text := string(out)
	if !strings.HasPrefix(text, "event_description,event_id,event_name") {
		t.Errorf("header tidak terurut: %q", text)
	}
	if !strings.Contains(text, `"Turnamen ""Piala Wali Kota"", Final"`) {
		t.Errorf("quoting koma/kutip salah: %q", text)
	}
	if !strings.Contains(text, "\"baris satu\nbaris dua\"") {
		t.Errorf("newline dalam sel tidak di-quote: %q", text)
	}
}

func TestCSV_RoundTripTypes(t *testing.T) {
	records := []map[string]interface{}{
		{
			"active": true,
			"amount": 500000.0,
			"name":   "Wasit, \"Utama\"",
			"meta":   map[string]interface{}{"kota": "Bandung"},
			"empty":  nil,
		},
	}

	encoded, err := EncodeCSV(records)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeCSV(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded = %d record", len(decoded))
	}

	rec := decoded[0]
	if rec["active"] != true {
		t.Errorf("active = %v (%T)", rec["active"], rec["active"])
	}
	if rec["amount"] != 500000.0 {
		t.Errorf("amount = %v (%T)", rec["amount"], rec["amount"])
	}
	if rec["name"] != "Wasit, \"Utama\"" {
		t.Errorf("name = %v", rec["name"])
	}
	meta, ok := rec["meta"].(map[string]interface{})
	if !ok || meta["kota"] != "Bandung" {
		t.Errorf("meta = %v (%T)", rec["meta"], rec["meta"])
	}
	if rec["empty"] != nil {
		t.Errorf("empty = %v, want nil", rec["empty"])
	}
}

func TestEncodeCSV_Empty(t *testing.T) {
	out, err := EncodeCSV(nil)
	if err != nil {
		t.Fatalf("encode kosong: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("out = %q, want kosong", out)
	}
}

func TestDecodeCSV_Empty(t *testing.T) {
	records, err := DecodeCSV([]byte("  \n"))
	if err != nil {
		t.Fatalf("decode kosong: %v", err)
	}
	if records != nil {
		t.Errorf("records = %v, want nil", records)
	}
}
