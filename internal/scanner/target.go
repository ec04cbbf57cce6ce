package scanner

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Target represents a file to be scanned.
type Target struct {
	Path string
}

// Discovery defaults shared by the CLI flags and the library facade.
var DefaultExcludeDirs = []string{
	".git", ".venv", "node_modules", "venv",
	".tox", ".mypy_cache", ".pytest_cache", "__pycache__",
}

const (
	DefaultMaxFileSize int64 = 5_000_000
	DefaultWorkers           = 8
)

// Discovery walks a directory and returns scannable targets. IncludeGlobs
// match file base names ("*" or empty matches everything); ExcludeDirs are
// directory names pruned from the walk; files larger than MaxFileSize bytes
// are dropped when the cap is positive.
type Discovery struct {
	IncludeGlobs   []string
	ExcludeDirs    []string
	MaxFileSize    int64
	IgnorePatterns []string
}

// Discover walks root and returns all targets in lexical walk order,
// respecting .sigscanignore. Inaccessible entries are skipped silently.
func (d *Discovery) Discover(root string) ([]*Target, error) {
	d.loadIgnoreFile(root)

	excluded := make(map[string]bool, len(d.ExcludeDirs))
	for _, name := range d.ExcludeDirs {
		if name != "" {
			excluded[name] = true
		}
	}

	var targets []*Target
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible files
		}
		if info.IsDir() {
			if path != root && excluded[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.includes(info.Name()) {
			return nil
		}
		if d.MaxFileSize > 0 && info.Size() > d.MaxFileSize {
			return nil
		}
		relPath, _ := filepath.Rel(root, path)
		if d.isIgnored(relPath) {
			return nil
		}
		targets = append(targets, &Target{Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return targets, nil
}

func (d *Discovery) includes(base string) bool {
	if len(d.IncludeGlobs) == 0 {
		return true
	}
	for _, glob := range d.IncludeGlobs {
		if glob == "*" {
			return true
		}
		if matched, err := filepath.Match(glob, base); err == nil && matched {
			return true
		}
	}
	return false
}

func (d *Discovery) loadIgnoreFile(root string) {
	f, err := os.Open(filepath.Join(root, ".sigscanignore"))
	if err != nil {
		return
	}
	defer f.Close()
	lines := bufio.NewScanner(f)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			d.IgnorePatterns = append(d.IgnorePatterns, line)
		}
	}
}

func (d *Discovery) isIgnored(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range d.IgnorePatterns {
		if matchGlob(pattern, relPath) {
			return true
		}
	}
	return false
}

// matchGlob supports ** globs that filepath.Match does not.
// "dir/**" matches any file under dir/ at any depth.
// "**/*.yaml" matches any .yaml file at any depth.
func matchGlob(pattern, relPath string) bool {
	// Fast path: no ** means filepath.Match is sufficient
	if !strings.Contains(pattern, "**") {
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, path.Base(relPath)); matched {
			return true
		}
		return false
	}

	// "prefix/**" → match anything under prefix/
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		if strings.HasPrefix(relPath, prefix+"/") || relPath == prefix {
			return true
		}
	}

	// "**/<glob>" → match <glob> against every path suffix
	if strings.HasPrefix(pattern, "**/") {
		suffix := strings.TrimPrefix(pattern, "**/")
		parts := strings.Split(relPath, "/")
		for i := range parts {
			candidate := strings.Join(parts[i:], "/")
			if matched, _ := filepath.Match(suffix, candidate); matched {
				return true
			}
		}
	}

	// "prefix/**/suffix" → prefix matches start, suffix matches rest
	if idx := strings.Index(pattern, "/**/"); idx >= 0 {
		prefix := pattern[:idx]
		suffix := pattern[idx+4:]
		if strings.HasPrefix(relPath, prefix+"/") {
			rest := strings.TrimPrefix(relPath, prefix+"/")
			parts := strings.Split(rest, "/")
			for i := range parts {
				candidate := strings.Join(parts[i:], "/")
				if matched, _ := filepath.Match(suffix, candidate); matched {
					return true
				}
			}
		}
	}

	return false
}
