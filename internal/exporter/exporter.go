// Package exporter serializes a finalized result set to CSV or JSON on
// disk. Writes go through a temp file in the destination directory
// followed by a rename, so a partially written table is never observable
// and an existing export survives a failed run.
package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethodata/datascout/internal/domain"
)

// Default output paths.
const (
	DefaultCSVPath  = "datasets_summary.csv"
	DefaultJSONPath = "datasets_summary.json"
)

// Header lists the CSV columns in export order.
var Header = []string{"Dataset Name", "Capture Settings", "Data Size", "Advantages", "Limitations"}

// EncodeCSV encodes the result set as CSV with a header row, one row per
// record, columns in the fixed export order.
func EncodeCSV(results domain.ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, err
	}
	for _, r := range results.Records {
		row := []string{r.Name, r.CaptureSettings, r.DataSize, r.Advantages, r.Limitations}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeJSON encodes the result set as a pretty JSON array of records.
func EncodeJSON(results domain.ResultSet) ([]byte, error) {
	return json.MarshalIndent(results.Records, "", "  ")
}

// SaveCSV writes the result set as CSV to the given path, atomically.
func SaveCSV(path string, results domain.ResultSet) error {
	data, err := EncodeCSV(results)
	if err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return writeAtomic(path, data)
}

// SaveJSON writes the result set as JSON to the given path, atomically.
func SaveJSON(path string, results domain.ResultSet) error {
	data, err := EncodeJSON(results)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return writeAtomic(path, data)
}

// writeAtomic writes data to path through a temp file and rename. The temp
// file lives in the destination directory so the rename stays on one
// filesystem.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", closeErr)
	}

	if chmodErr := os.Chmod(tmpName, 0o644); chmodErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	if renameErr := os.Rename(tmpName, path); renameErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", renameErr)
	}

	return nil
}
