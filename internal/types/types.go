// Package types defines shared data structures (Record, Finding, ScanResult)
// used across parsers, patterns, scanner, and report packages to prevent
// import cycles.
package types

import (
	"encoding/json"
	"time"
)

// Record is a single parsed unit of a scanned file: a physical line for text
// files, or a flattened "path: value" line for structured formats like JSON
// and XML. LineNum is 1-based and counts records, not necessarily physical
// lines.
type Record struct {
	Path    string
	LineNum int
	Text    string
}

// Finding is a single pattern hit against a record. Secret carries the
// matched text for the secrets category and is empty otherwise; Context is
// the full record the match came from. Field order matters: it is the key
// order of the JSON artifacts.
type Finding struct {
	Secret       string         `json:"secret"`
	Context      string         `json:"context"`
	LineNum      int            `json:"line_num"`
	FileLocation string         `json:"file_location"`
	Category     string         `json:"category"`
	Meta         map[string]any `json:"meta"`
}

// PluginResult groups the findings of one pattern plugin across a scan.
type PluginResult struct {
	Plugin   string    `json:"plugin"`
	Category string    `json:"category"`
	Findings []Finding `json:"findings"`
}

// ScanResult holds the complete results of a scan, one entry per active
// plugin in activation order.
type ScanResult struct {
	Results      []PluginResult `json:"results"`
	FilesScanned int            `json:"files_scanned"`
	FilesSkipped int            `json:"files_skipped"`
	Duration     time.Duration  `json:"-"`
	Target       string         `json:"-"`
}

// TotalFindings returns the finding count summed across all plugins.
func (r *ScanResult) TotalFindings() int {
	total := 0
	for _, pr := range r.Results {
		total += len(pr.Findings)
	}
	return total
}

// MarshalJSON implements custom JSON marshaling so Duration serializes as milliseconds.
func (r ScanResult) MarshalJSON() ([]byte, error) {
	type Alias ScanResult
	return json.Marshal(struct {
		Alias
		DurationMS int64 `json:"duration_ms"`
	}{
		Alias:      Alias(r),
		DurationMS: r.Duration.Milliseconds(),
	})
}
