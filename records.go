package rec2pdf

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Record is one row or object from a data file. Lookup is by field name;
// key order follows the source (CSV header order, JSON document order) so
// selector fallbacks and root-object handling stay deterministic.
type Record struct {
	keys   []string
	fields map[string]any
}

// Set stores a field. The first Set of a key fixes its position; later Sets
// only replace the value.
func (r *Record) Set(key string, value any) {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}
	if _, exists := r.fields[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = value
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Keys returns the field names in source order.
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// utf8BOM is stripped from the start of data files (common in CSV exports).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadRecords reads a CSV or JSON file into an ordered record list.
// The format is chosen by file extension (case-insensitive); anything other
// than .csv or .json fails with ErrUnsupportedFormat.
func LoadRecords(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSVRecords(path)
	case ".json":
		return loadJSONRecords(path)
	default:
		return nil, fmt.Errorf("%w: %q (want .csv or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// loadCSVRecords reads a CSV file where the first row is the header.
// Header names are whitespace-trimmed; every cell stays a string.
func loadCSVRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-selected path
	if err != nil {
		return nil, fmt.Errorf("reading data file %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	rows, err := parseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedData, path, err)
	}
	return rows, nil
}

// parseCSV turns raw CSV bytes into records keyed by header column names.
// The reader rejects ragged rows, which surfaces as ErrMalformedData.
func parseCSV(data []byte) ([]Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec Record
		for i, cell := range row {
			rec.Set(header[i], cell)
		}
		records = append(records, rec)
	}
	return records, nil
}

// loadJSONRecords reads a JSON file whose root is an array of objects.
// A root object is also accepted: its first array-valued field in document
// order becomes the record list, and an object without one becomes a
// single-record list.
func loadJSONRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-selected path
	if err != nil {
		return nil, fmt.Errorf("reading data file %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // keep numeric text exact for substitution

	root, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedData, path, err)
	}

	switch v := root.(type) {
	case []any:
		return recordsFromList(v, path)
	case Record:
		for _, key := range v.keys {
			if list, ok := v.fields[key].([]any); ok {
				return recordsFromList(list, path)
			}
		}
		return []Record{v}, nil
	default:
		return nil, fmt.Errorf("%w: %s: JSON root must be an array of objects", ErrMalformedData, path)
	}
}

// decodeValue parses one JSON value from the token stream. Objects become
// Records so document key order survives decoding; json.Decoder's map
// decoding would randomize it.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, Number, bool or null
		return tok, nil
	}

	switch delim {
	case '{':
		var rec Record
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			rec.Set(key, value)
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return rec, nil
	case '[':
		var list []any
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// recordsFromList converts a decoded JSON array into records.
func recordsFromList(list []any, path string) ([]Record, error) {
	records := make([]Record, 0, len(list))
	for i, item := range list {
		obj, ok := item.(Record)
		if !ok {
			return nil, fmt.Errorf("%w: %s: element %d is not an object", ErrMalformedData, path, i)
		}
		records = append(records, obj)
	}
	return records, nil
}

// identifierKeys are the field names recognized as a record's human-facing
// selector, in priority order. Matching is case-insensitive.
var identifierKeys = []string{
	"invoice_id", "invoiceId", "invoice-id", "invoice",
	"id", "invoice_number", "invoiceNumber", "номер",
	"номер_счета", "счет", "check_id", "checkId", "check-id",
}

// RecordIDs derives one selector string per record, preserving file order.
// The first identifier key present wins; a record without one falls back to
// its first value in source order, then to its 1-based position.
func RecordIDs(records []Record) []string {
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = recordID(rec, i)
	}
	return ids
}

// recordID resolves the selector for a single record at index idx.
func recordID(rec Record, idx int) string {
	if v, ok := lookupIdentifier(rec); ok {
		return v
	}
	if v, ok := firstValue(rec); ok {
		return v
	}
	return strconv.Itoa(idx + 1)
}

// lookupIdentifier finds the first identifier key present in the record.
func lookupIdentifier(rec Record) (string, bool) {
	for _, key := range identifierKeys {
		for _, actual := range rec.keys {
			if strings.EqualFold(actual, key) {
				if s := stringifyScalar(rec.fields[actual]); s != "" {
					return s, true
				}
			}
		}
	}
	return "", false
}

// firstValue returns the record's first non-empty scalar value in source
// order, so an id-less CSV selects by its first column.
func firstValue(rec Record) (string, bool) {
	for _, k := range rec.keys {
		if s := stringifyScalar(rec.fields[k]); s != "" {
			return s, true
		}
	}
	return "", false
}

// FindRecordByID resolves a selector produced by RecordIDs back to its
// record. Positional match against the derived IDs wins; otherwise every
// identifier key is scanned for a value match. Fails with ErrRecordNotFound.
func FindRecordByID(records []Record, id string) (Record, error) {
	for i, derived := range RecordIDs(records) {
		if derived == id {
			return records[i], nil
		}
	}

	for _, rec := range records {
		for _, key := range identifierKeys {
			for _, actual := range rec.keys {
				if strings.EqualFold(actual, key) && stringifyScalar(rec.fields[actual]) == id {
					return rec, nil
				}
			}
		}
	}

	return Record{}, fmt.Errorf("%w: %q", ErrRecordNotFound, id)
}
