// Package parsers turns files into line-oriented records for pattern
// matching. Each parser claims a set of file extensions; anything unclaimed
// falls back to the plain text parser.
package parsers

import (
	"path/filepath"
	"strings"

	"github.com/hamb0n-3/sigscan/internal/types"
)

// Parser converts one file into a sequence of records. Parse returns nil
// records with a nil error for files that should be skipped silently
// (binary content, unreadable files); an empty non-nil slice means the file
// was readable but produced nothing. Implementations carry no per-call
// state and are safe for concurrent use.
type Parser interface {
	Name() string
	Extensions() []string
	Parse(path string) ([]types.Record, error)
}

var all = []Parser{
	&JSONParser{},
	&TextParser{},
	&XMLParser{},
}

var byExt = map[string]Parser{}

func init() {
	for _, p := range all {
		for _, ext := range p.Extensions() {
			byExt[ext] = p
		}
	}
}

// ForPath returns the parser registered for the path's extension, falling
// back to the text parser.
func ForPath(path string) Parser {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if p, ok := byExt[ext]; ok {
		return p
	}
	return &TextParser{}
}

// lineRecords converts raw text into one record per line, 1-based.
func lineRecords(path, content string) []types.Record {
	lines := splitLines(content)
	records := make([]types.Record, 0, len(lines))
	for i, line := range lines {
		records = append(records, types.Record{Path: path, LineNum: i + 1, Text: line})
	}
	return records
}

// splitLines splits on \n without producing a trailing empty line for
// newline-terminated content.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
