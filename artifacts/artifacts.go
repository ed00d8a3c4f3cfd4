// Package artifacts writes diagnostic copies of API responses. Nothing in the
// harness reads them back.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pkg/errors"
)

const timestampLayout = "20060102_150405"

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SaveResponse writes data as indented JSON to
// <dir>/<name>_<YYYYMMDD_HHMMSS>.json, creating dir if necessary, and returns
// the path of the new file. If data is a json.RawMessage or []byte holding
// JSON, it is re-indented rather than encoded as a string.
func SaveResponse(dir, name string, data interface{}) (string, error) {
	return saveResponseAt(dir, name, data, time.Now())
}

func saveResponseAt(dir, name string, data interface{}, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "error creating debug directory %s", dir)
	}
	if raw, ok := data.([]byte); ok {
		data = json.RawMessage(raw)
	}
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "error encoding response for debug output")
	}
	fileName := fmt.Sprintf("%s_%s.json", FileStem(name), now.Format(timestampLayout))
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, append(content, '\n'), 0o644); err != nil {
		return "", errors.Wrapf(err, "error writing %s", path)
	}
	return path, nil
}

// FileStem turns a test name into something usable as part of a file name.
func FileStem(name string) string {
	stem := unsafeNameChars.ReplaceAllString(name, "_")
	if stem == "" || stem == "_" {
		return "response"
	}
	return stem
}
