package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethodata/datascout/internal/config"
	"github.com/ethodata/datascout/internal/logger"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "datascout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// No datascout.yaml exists in the package dir, so defaults apply.
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, logger.InfoLevel, cfg.Logging.Level)
	assert.Equal(t, config.FormatBoth, cfg.Export.Format)
	assert.Equal(t, "datasets_summary.csv", cfg.Export.CSVPath)
	assert.Equal(t, "datasets_summary.json", cfg.Export.JSONPath)
	assert.Positive(t, cfg.Fetch.RequestTimeout)
	assert.Positive(t, cfg.Fetch.CourtesyDelay)
	assert.Positive(t, cfg.Pipeline.WorkerCount)
	assert.Empty(t, cfg.Sources)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  encoding: json
fetch:
  request_timeout: 5s
  courtesy_delay: 250ms
pipeline:
  worker_count: 4
export:
  format: csv
  csv_path: out/table.csv
sources:
  - name: Local Mirror
    url: https://mirror.example.org/datasets
    timeout: 3s
    retry_budget: 2
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, logger.DebugLevel, cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Encoding)
	assert.Equal(t, 5*time.Second, cfg.Fetch.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Fetch.CourtesyDelay)
	assert.Equal(t, 4, cfg.Pipeline.WorkerCount)
	assert.Equal(t, config.FormatCSV, cfg.Export.Format)
	assert.Equal(t, "out/table.csv", cfg.Export.CSVPath)

	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "Local Mirror", cfg.Sources[0].Name)
	assert.Equal(t, "https://mirror.example.org/datasets", cfg.Sources[0].URL)
	assert.Equal(t, 3*time.Second, cfg.Sources[0].Timeout)
	assert.Equal(t, 2, cfg.Sources[0].RetryBudget)
}

func TestLoad_UnknownExportFormatRejected(t *testing.T) {
	path := writeConfig(t, `
export:
  format: xml
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestLoad_SourceWithoutURLRejected(t *testing.T) {
	path := writeConfig(t, `
sources:
  - name: nameless
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing URL")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  worker_count: 1
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Pipeline.WorkerCount)
	assert.Equal(t, config.FormatBoth, cfg.Export.Format)
	assert.Positive(t, cfg.Fetch.RequestTimeout)
}
