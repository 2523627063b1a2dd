package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EncodeCSV men-serialize kumpulan record ke CSV (RFC 4180, via encoding/csv
// — quoting dan escaping ditangani writer, bukan string join manual).
// Header diambil dari key record pertama, diurutkan supaya deterministik.
// Nilai bertipe objek/array di-stringify sebagai JSON dalam satu sel.
func EncodeCSV(records []map[string]interface{}) ([]byte, error) {
	if len(records) == 0 {
		return []byte{}, nil
	}

	header := make([]string, 0, len(records[0]))
	for k := range records[0] {
		header = append(header, k)
	}
	sort.Strings(header)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := make([]string, len(header))
	for _, rec := range records {
		for i, col := range header {
			cell, err := encodeCell(rec[col])
			if err != nil {
				return nil, fmt.Errorf("kolom %s: %w", col, err)
			}
			row[i] = cell
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DecodeCSV membaca CSV hasil EncodeCSV kembali jadi record bertipe:
// "true"/"false" → bool, angka → float64, sel JSON → objek/array,
// sel kosong → nil, sisanya string.
func DecodeCSV(data []byte) ([]map[string]interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, nil
	}

	header := rows[0]
	out := make([]map[string]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]interface{}, len(header))
		for i, col := range header {
			if i >= len(row) {
				continue
			}
			rec[col] = decodeCell(row[i])
		}
		out = append(out, rec)
	}
	return out, nil
}

func encodeCell(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case int:
		return strconv.Itoa(val), nil
	default:
		// objek/array bersarang → JSON dalam satu sel
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func decodeCell(cell string) interface{} {
	if cell == "" {
		return nil
	}
	switch cell {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	trimmed := strings.TrimSpace(cell)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var v interface{}
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v
		}
	}
	return cell
}
