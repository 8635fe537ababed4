package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "sicoob", cfg.DefaultFormat)
	assert.True(t, cfg.PreserveFormatting)
	assert.InDelta(t, 50, cfg.MaxColWidth, 0.001)
	assert.Empty(t, cfg.Template)
	assert.Empty(t, cfg.RunLog)
}

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.DefaultFormat = "santander"
	cfg.Template = "modelo.xlsx"
	cfg.RunLog = "logs/runs.csv"
	cfg.MaxColWidth = 80

	path := filepath.Join(t.TempDir(), "extrato.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "santander", got.DefaultFormat)
	assert.Equal(t, "modelo.xlsx", got.Template)
	assert.Equal(t, "logs/runs.csv", got.RunLog)
	assert.InDelta(t, 80, got.MaxColWidth, 0.001)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extrato.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_format: santander\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "santander", cfg.DefaultFormat)
	assert.True(t, cfg.PreserveFormatting)
	assert.InDelta(t, 50, cfg.MaxColWidth, 0.001)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extrato.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_format: [broken\n"), 0o644))

	_, err := LoadOrDefault(path)
	assert.Error(t, err)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extrato.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "default_format: sicoob")
	assert.Contains(t, contents, "preserve_formatting: true")
	assert.Contains(t, contents, "max_col_width: 50")
}
