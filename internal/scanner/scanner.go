package scanner

import (
	"context"
	"os"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hamb0n-3/sigscan/internal/parsers"
)

// Scanner orchestrates the scanning process: it fans discovered files out to
// a worker pool, parses each file into records, and runs every registered
// plugin over those records.
type Scanner struct {
	plugins   []Plugin
	workers   int
	discovery Discovery
	progress  func(done, total int)
	warn      func(path string)
}

// New creates a new Scanner with the given number of workers.
// If workers <= 0, it defaults to runtime.NumCPU().
func New(workers int) *Scanner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scanner{
		workers: workers,
	}
}

// RegisterPlugin adds a plugin to the scanner pipeline. Registration order
// fixes the order of per-plugin results.
func (s *Scanner) RegisterPlugin(p Plugin) {
	s.plugins = append(s.plugins, p)
}

// SetDiscovery configures directory walking (include globs, pruned
// directories, file size cap).
func (s *Scanner) SetDiscovery(d Discovery) {
	s.discovery = d
}

// SetProgress installs a callback invoked after each file completes. The
// callback may be invoked concurrently from several workers.
func (s *Scanner) SetProgress(fn func(done, total int)) {
	s.progress = fn
}

// SetWarn installs a callback invoked for each skipped file (binary,
// unreadable, or unparseable). Like the progress callback it may fire
// concurrently from several workers.
func (s *Scanner) SetWarn(fn func(path string)) {
	s.warn = fn
}

// Scan performs a full scan of the given path. The path can be a directory
// (walked recursively) or a single file.
func (s *Scanner) Scan(ctx context.Context, path string) (*ScanResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	// Single-file scans bypass discovery filtering entirely: an explicit
	// file is always scanned, whatever the include globs say.
	targets := []*Target{{Path: path}}
	if info.IsDir() {
		if targets, err = s.discovery.Discover(path); err != nil {
			return nil, err
		}
	}

	result, err := s.ScanTargets(ctx, targets)
	if err != nil {
		return nil, err
	}
	result.Target = path
	return result, nil
}

// ScanTargets runs the scanner pipeline on a pre-built list of targets.
// Files that fail to parse are counted as skipped, never treated as errors;
// a scan only fails when its context is cancelled.
func (s *Scanner) ScanTargets(ctx context.Context, targets []*Target) (*ScanResult, error) {
	start := time.Now()
	total := len(targets)

	// Fan-out files to workers
	fileCh := make(chan *Target, total)
	for _, t := range targets {
		fileCh <- t
	}
	close(fileCh)

	var (
		mu       sync.Mutex
		byPlugin = make(map[string][]Finding, len(s.plugins))
		scanned  int
		skipped  int
		done     atomic.Int64
		wg       sync.WaitGroup
	)

	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for target := range fileCh {
				if ctx.Err() != nil {
					return
				}

				records, err := parsers.ForPath(target.Path).Parse(target.Path)
				if err != nil || records == nil {
					mu.Lock()
					skipped++
					mu.Unlock()
					if s.warn != nil {
						s.warn(target.Path)
					}
					s.advance(&done, total)
					continue
				}

				for _, plugin := range s.plugins {
					if ctx.Err() != nil {
						return
					}
					findings, err := plugin.Inspect(ctx, records)
					if err != nil {
						continue
					}
					if len(findings) > 0 {
						mu.Lock()
						byPlugin[plugin.Name()] = append(byPlugin[plugin.Name()], findings...)
						mu.Unlock()
					}
				}

				mu.Lock()
				scanned++
				mu.Unlock()
				s.advance(&done, total)
			}
		}()
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	results := make([]PluginResult, 0, len(s.plugins))
	for _, plugin := range s.plugins {
		findings := byPlugin[plugin.Name()]
		sortFindings(findings)
		results = append(results, PluginResult{
			Plugin:   plugin.Name(),
			Category: plugin.Category(),
			Findings: findings,
		})
	}

	return &ScanResult{
		Results:      results,
		FilesScanned: scanned,
		FilesSkipped: skipped,
		Duration:     time.Since(start),
	}, nil
}

func (s *Scanner) advance(done *atomic.Int64, total int) {
	if s.progress != nil {
		s.progress(int(done.Add(1)), total)
	}
}

// sortFindings orders findings by file, line, then matched text so repeated
// scans of the same tree produce identical artifacts. The sort is stable:
// same-line findings keep their regex evaluation order.
func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].FileLocation != findings[j].FileLocation {
			return findings[i].FileLocation < findings[j].FileLocation
		}
		if findings[i].LineNum != findings[j].LineNum {
			return findings[i].LineNum < findings[j].LineNum
		}
		return findings[i].Secret < findings[j].Secret
	})
}
