// Package report writes scan artifacts into an output directory: per-plugin
// JSON and Markdown reports, the fixed-shape secrets.json consumed by AI
// mode, plus index.json and summary.md covering the whole run.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hamb0n-3/sigscan/internal/types"
)

// IndexEntry summarizes one plugin's output in index.json.
type IndexEntry struct {
	Plugin    string `json:"plugin"`
	Findings  int    `json:"findings"`
	Artifacts int    `json:"artifacts"`
}

// Writer writes all scan artifacts into a single directory, creating it if
// needed. Output is byte-for-byte deterministic for identical scan results.
type Writer struct {
	OutDir string
}

// New creates a Writer targeting outDir.
func New(outDir string) *Writer {
	return &Writer{OutDir: outDir}
}

// WriteAll writes every per-plugin artifact plus index.json and summary.md,
// returning the index entries in plugin order.
func (w *Writer) WriteAll(result *types.ScanResult) ([]IndexEntry, error) {
	if err := os.MkdirAll(w.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	index := make([]IndexEntry, 0, len(result.Results))
	for _, pr := range result.Results {
		artifacts, err := w.writePlugin(pr)
		if err != nil {
			return nil, err
		}
		index = append(index, IndexEntry{
			Plugin:    pr.Plugin,
			Findings:  len(pr.Findings),
			Artifacts: artifacts,
		})
	}

	if err := w.writeJSON("index.json", index); err != nil {
		return nil, err
	}
	if err := w.writeSummary(index); err != nil {
		return nil, err
	}
	return index, nil
}

// writePlugin writes the artifacts for one plugin and returns how many it
// produced. The secrets category additionally gets the fixed-shape
// secrets.json, written last so it wins if the plugin's own name collides
// with it; AI mode depends on that exact shape being present, even when
// the scan found nothing.
func (w *Writer) writePlugin(pr types.PluginResult) (int, error) {
	artifacts := 0

	findings := pr.Findings
	if findings == nil {
		findings = []types.Finding{}
	}
	if err := w.writeJSON(pr.Plugin+".json", findings); err != nil {
		return 0, err
	}
	artifacts++

	if err := w.writeFile(pr.Plugin+".md", renderMarkdown(pr)); err != nil {
		return 0, err
	}
	artifacts++

	if pr.Category == "secrets" {
		if err := w.writeJSON("secrets.json", strictSecrets(pr.Findings)); err != nil {
			return 0, err
		}
		artifacts++
	}

	return artifacts, nil
}

func (w *Writer) writeSummary(index []IndexEntry) error {
	lines := []string{"# Scan Summary", ""}
	for _, entry := range index {
		lines = append(lines,
			"## "+entry.Plugin,
			fmt.Sprintf("- findings: %d", entry.Findings),
			fmt.Sprintf("- artifacts: %d", entry.Artifacts),
			"")
	}
	return w.writeFile("summary.md", []byte(joinLines(lines)))
}

func (w *Writer) writeJSON(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return w.writeFile(name, buf.Bytes())
}

func (w *Writer) writeFile(name string, data []byte) error {
	path := filepath.Join(w.OutDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
