package sigscan

// scanConfig holds the resolved configuration for a scan.
type scanConfig struct {
	plugins      string
	includeGlobs []string
	excludeDirs  []string
	maxFileSize  int64
	workers      int
}

// Option configures a scan operation.
type Option func(*scanConfig)

// WithPlugins selects pattern plugins by the same selector the CLI accepts:
// a comma-delimited name list, or "all".
func WithPlugins(selector string) Option {
	return func(c *scanConfig) {
		c.plugins = selector
	}
}

// WithInclude sets the globs file base names must match during directory
// scanning (default: everything).
func WithInclude(globs ...string) Option {
	return func(c *scanConfig) {
		c.includeGlobs = globs
	}
}

// WithExclude sets the directory names pruned during directory scanning,
// replacing the defaults.
func WithExclude(dirs ...string) Option {
	return func(c *scanConfig) {
		c.excludeDirs = dirs
	}
}

// WithMaxFileSize caps the size in bytes of files eligible for scanning.
func WithMaxFileSize(n int64) Option {
	return func(c *scanConfig) {
		c.maxFileSize = n
	}
}

// WithWorkers sets the number of concurrent workers (default: NumCPU).
func WithWorkers(n int) Option {
	return func(c *scanConfig) {
		c.workers = n
	}
}
