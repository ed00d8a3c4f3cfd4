// Package datadriven expands tables of test inputs into independent subtests.
//
// Tables come either from a data file (LoadRecords and ForEachRecord) or from
// a list of cases declared in code (Parametrize). Each row becomes its own
// subtest, so a failing row never prevents the next one from running.
package datadriven

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Record is one row of a data file, keyed by field name.
type Record map[string]interface{}

// String returns the field as text, or "" if it is absent.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the field as an integer. Numbers and numeric strings are both
// accepted, since spreadsheet cells are always read as text.
func (r Record) Int(key string) (int, error) {
	switch v := r[key].(type) {
	case nil:
		return 0, errors.Errorf("record has no %q field", key)
	case float64:
		if v != float64(int(v)) {
			return 0, errors.Errorf("field %q is not an integer: %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		return int(n), errors.Wrapf(err, "field %q", key)
	default:
		n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(v)))
		return n, errors.Wrapf(err, "field %q", key)
	}
}

// LoadRecords reads the named collection from a data file. For a JSON file the
// collection is a top-level property holding an array of objects. For an
// .xlsx workbook it is the sheet with that name, whose first row holds the
// field names.
func LoadRecords(path, collection string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbookRecords(path, collection)
	default:
		return loadJSONRecords(path, collection)
	}
}

func loadJSONRecords(path, collection string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading test data file")
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "error parsing test data file %s", path)
	}
	raw, ok := doc[collection]
	if !ok {
		return nil, errors.Errorf("test data file %s has no %q collection", path, collection)
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrapf(err, "collection %q in %s is not a list of objects", collection, path)
	}
	return records, nil
}

func loadWorkbookRecords(path, sheet string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening test data workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading sheet %q of %s", sheet, path)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("sheet %q of %s has no header row", sheet, path)
	}
	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		record := make(Record, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
