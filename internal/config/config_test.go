package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hamb0n-3/sigscan/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
plugin: secrets,endpoints
out: reports/
include:
  - "*.env"
  - "*.json"
exclude:
  - vendor
  - dist
max_file_size: 1000000
workers: 4
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sigscan.yml"), data, 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "secrets,endpoints", cfg.Plugin)
	require.Equal(t, "reports/", cfg.Out)
	require.Equal(t, []string{"*.env", "*.json"}, cfg.Include)
	require.Equal(t, []string{"vendor", "dist"}, cfg.Exclude)
	require.Equal(t, int64(1000000), cfg.MaxFileSize)
	require.Equal(t, 4, cfg.Workers)
}

func TestLoadConfigYAMLExtension(t *testing.T) {
	dir := t.TempDir()
	data := []byte("workers: 2\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sigscan.yaml"), data, 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)
}

func TestLoadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, config.Config{}, cfg)
}

func TestLoadConfigFromFilePath(t *testing.T) {
	// A file target resolves the config from its parent directory.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sigscan.yml"), []byte("plugin: all\n"), 0644))
	target := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte("hello\n"), 0644))

	cfg, err := config.Load(target)
	require.NoError(t, err)
	require.Equal(t, "all", cfg.Plugin)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	data := []byte("{{invalid yaml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sigscan.yml"), data, 0644))

	_, err := config.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing")
}

func TestLoadConfigUnknownKey(t *testing.T) {
	dir := t.TempDir()
	data := []byte("max_filesize: 100\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sigscan.yml"), data, 0644))

	_, err := config.Load(dir)
	require.Error(t, err)
}

func TestLoadConfigPrecedence(t *testing.T) {
	// .sigscan.yml takes priority over .sigscan.yaml
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sigscan.yml"), []byte("workers: 8\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sigscan.yaml"), []byte("workers: 1\n"), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Workers)
}
