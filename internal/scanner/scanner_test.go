package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hamb0n-3/sigscan/internal/scanner"
)

// mockPlugin is a simple plugin for testing the scanner orchestrator. It
// reports one finding per record containing needle.
type mockPlugin struct {
	name     string
	category string
	needle   string
}

func (m *mockPlugin) Name() string     { return m.name }
func (m *mockPlugin) Category() string { return m.category }

func (m *mockPlugin) Inspect(_ context.Context, records []scanner.Record) ([]scanner.Finding, error) {
	var findings []scanner.Finding
	for _, rec := range records {
		if strings.Contains(rec.Text, m.needle) {
			findings = append(findings, scanner.Finding{
				Secret:       m.needle,
				Context:      rec.Text,
				LineNum:      rec.LineNum,
				FileLocation: rec.Path,
				Category:     m.category,
			})
		}
	}
	return findings, nil
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestScannerOrchestrator(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt":     "needle here\n",
		"sub/b.txt": "another needle\nno match\n",
	})

	s := scanner.New(2)
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 2, result.FilesScanned)
	require.Equal(t, 0, result.FilesSkipped)
	require.Equal(t, dir, result.Target)
	require.Len(t, result.Results, 1)
	require.Equal(t, "mock", result.Results[0].Plugin)
	require.Len(t, result.Results[0].Findings, 2)
}

func TestScannerSkipsBinaryFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "needle\n"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0x00, 0x01, 0x02}, 0o644))

	s := scanner.New(1)
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 1, result.FilesScanned)
	require.Equal(t, 1, result.FilesSkipped)
	require.Len(t, result.Results[0].Findings, 1)
}

func TestScannerSingleFile(t *testing.T) {
	dir := writeTree(t, map[string]string{"only.env": "needle=value\n"})
	path := filepath.Join(dir, "only.env")

	s := scanner.New(1)
	// Discovery filters must not apply to explicit files.
	s.SetDiscovery(scanner.Discovery{IncludeGlobs: []string{"*.nomatch"}})
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, result.FilesScanned)
	require.Equal(t, path, result.Target)
	require.Len(t, result.Results[0].Findings, 1)
}

func TestScannerResultsKeepRegistrationOrder(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "needle\n"})

	s := scanner.New(1)
	s.RegisterPlugin(&mockPlugin{name: "zeta", category: "mock", needle: "needle"})
	s.RegisterPlugin(&mockPlugin{name: "alpha", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	require.Equal(t, "zeta", result.Results[0].Plugin)
	require.Equal(t, "alpha", result.Results[1].Plugin)
}

func TestScannerFindingsSortedByFileAndLine(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"z.txt": "needle\n",
		"a.txt": "first\nneedle\n",
	})

	s := scanner.New(4)
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	findings := result.Results[0].Findings
	require.Len(t, findings, 2)
	require.Equal(t, filepath.Join(dir, "a.txt"), findings[0].FileLocation)
	require.Equal(t, 2, findings[0].LineNum)
	require.Equal(t, filepath.Join(dir, "z.txt"), findings[1].FileLocation)
}

func TestScannerExcludesDirectories(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"keep.txt":          "needle\n",
		".git/config":       "needle\n",
		"node_modules/x.js": "needle\n",
	})

	s := scanner.New(1)
	s.SetDiscovery(scanner.Discovery{ExcludeDirs: []string{".git", "node_modules"}})
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 1, result.FilesScanned)
	require.Len(t, result.Results[0].Findings, 1)
}

func TestScannerIncludeGlobs(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"config.env": "needle\n",
		"notes.txt":  "needle\n",
	})

	s := scanner.New(1)
	s.SetDiscovery(scanner.Discovery{IncludeGlobs: []string{"*.env"}})
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 1, result.FilesScanned)
	require.Equal(t, filepath.Join(dir, "config.env"), result.Results[0].Findings[0].FileLocation)
}

func TestScannerMaxFileSize(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"small.txt": "needle\n",
		"large.txt": strings.Repeat("needle padding line\n", 64),
	})

	s := scanner.New(1)
	s.SetDiscovery(scanner.Discovery{MaxFileSize: 64})
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 1, result.FilesScanned)
	require.Len(t, result.Results[0].Findings, 1)
}

func TestScannerIgnoreFile(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".sigscanignore": "vendored/**\n# comment\n**/*.lock\n",
		"keep.txt":       "needle\n",
		"vendored/v.txt": "needle\n",
		"deep/pkg.lock":  "needle\n",
	})

	s := scanner.New(1)
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, result.Results[0].Findings, 1)
	require.Equal(t, filepath.Join(dir, "keep.txt"), result.Results[0].Findings[0].FileLocation)
}

func TestScannerDuration(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "content\n"})

	s := scanner.New(1)
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "zzz"})

	result, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Greater(t, result.Duration, time.Duration(0))
}

func TestScannerDeterministicAcrossRuns(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt":     "needle one\nneedle two\n",
		"b/c.txt":   "needle three\n",
		"b/d/e.txt": "needle four\nplain\nneedle five\n",
		"f.txt":     "nothing\n",
	})

	run := func() []scanner.PluginResult {
		s := scanner.New(8)
		s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "needle"})
		result, err := s.Scan(context.Background(), dir)
		require.NoError(t, err)
		return result.Results
	}

	require.Equal(t, run(), run())
}

func TestScannerProgressCallback(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt": "x\n",
		"b.txt": "y\n",
		"c.txt": "z\n",
	})

	var mu sync.Mutex
	var seen []int
	totals := map[int]bool{}
	s := scanner.New(2)
	s.SetProgress(func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, done)
		totals[total] = true
	})
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "zzz"})

	_, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, seen, 3)
	require.Equal(t, map[int]bool{3: true}, totals)
}

func TestScannerWarnCallbackOnSkippedFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "fine\n"})
	binPath := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(binPath, []byte{0x00, 0x01, 0x02}, 0o644))

	var mu sync.Mutex
	var warned []string
	s := scanner.New(2)
	s.SetWarn(func(path string) {
		mu.Lock()
		defer mu.Unlock()
		warned = append(warned, path)
	})
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "zzz"})

	_, err := s.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, []string{binPath}, warned)
}

func TestScannerMissingPath(t *testing.T) {
	s := scanner.New(1)
	_, err := s.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestScannerContextCancellation(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "content\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := scanner.New(1)
	s.RegisterPlugin(&mockPlugin{name: "mock", category: "mock", needle: "x"})

	_, err := s.Scan(ctx, dir)
	require.Error(t, err)
}
