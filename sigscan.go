// Package sigscan provides a public API for scanning files and directories
// with the built-in pattern plugins.
//
// This is the library entry point. For the CLI tool, see cmd/sigscan/.
package sigscan

import (
	"context"
	"fmt"

	"github.com/hamb0n-3/sigscan/internal/patterns"
	"github.com/hamb0n-3/sigscan/internal/scanner"
	"github.com/hamb0n-3/sigscan/internal/types"
)

// Re-export core types from internal/types so consumers don't need to
// import internal packages.
type (
	Record       = types.Record
	Finding      = types.Finding
	PluginResult = types.PluginResult
	ScanResult   = types.ScanResult
)

// PluginInfo provides summary metadata about a pattern plugin.
type PluginInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Patterns    int    `json:"patterns"`
}

// Scan scans a file or directory on disk with the selected pattern plugins.
// Every built-in plugin is active unless narrowed via WithPlugins.
func Scan(ctx context.Context, path string, opts ...Option) (*ScanResult, error) {
	cfg := applyOpts(opts)
	s, err := buildScanner(cfg)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, path)
}

// Plugins returns metadata for every built-in pattern plugin.
func Plugins() ([]PluginInfo, error) {
	reg, err := patterns.Builtin()
	if err != nil {
		return nil, err
	}
	infos := make([]PluginInfo, 0, reg.Len())
	for _, p := range reg.All() {
		infos = append(infos, PluginInfo{
			Name:        p.Name(),
			Category:    p.Category(),
			Description: p.Description(),
			Patterns:    p.PatternCount(),
		})
	}
	return infos, nil
}

// --- internal helpers ---

func applyOpts(opts []Option) *scanConfig {
	cfg := &scanConfig{
		plugins:     "all",
		excludeDirs: scanner.DefaultExcludeDirs,
		maxFileSize: scanner.DefaultMaxFileSize,
	}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// buildScanner creates a fully wired Scanner with the selected plugins.
func buildScanner(cfg *scanConfig) (*scanner.Scanner, error) {
	reg, err := patterns.Builtin()
	if err != nil {
		return nil, fmt.Errorf("loading built-in plugins: %w", err)
	}
	selected := reg.Select(cfg.plugins)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no pattern plugins matched %q", cfg.plugins)
	}

	s := scanner.New(cfg.workers)
	for _, p := range selected {
		s.RegisterPlugin(p)
	}
	s.SetDiscovery(scanner.Discovery{
		IncludeGlobs: cfg.includeGlobs,
		ExcludeDirs:  cfg.excludeDirs,
		MaxFileSize:  cfg.maxFileSize,
	})
	return s, nil
}
