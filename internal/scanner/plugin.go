// Package scanner orchestrates file discovery, per-format parsing, and
// multi-plugin pattern matching for signal scanning of code and config
// trees.
package scanner

import "context"

// Plugin is the interface that all pattern plugins must implement. Inspect
// receives every record parsed from one file and is called concurrently
// from several workers.
type Plugin interface {
	Name() string
	Category() string
	Inspect(ctx context.Context, records []Record) ([]Finding, error)
}
