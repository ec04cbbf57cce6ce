// Package config loads .sigscan.yml configuration files carrying scan
// defaults: plugin selection, output directory, include/exclude filters,
// file size cap, and worker count. Explicit CLI flags always win over
// config values.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .sigscan.yml configuration file.
type Config struct {
	Plugin      string   `yaml:"plugin,omitempty"`
	Out         string   `yaml:"out,omitempty"`
	Include     []string `yaml:"include,omitempty"`
	Exclude     []string `yaml:"exclude,omitempty"`
	MaxFileSize int64    `yaml:"max_file_size,omitempty"`
	Workers     int      `yaml:"workers,omitempty"`
}

// Load reads the .sigscan.yml or .sigscan.yaml config file from the given
// path. If path is a file, its parent directory is used. If no config file
// is found, it returns a zero Config (not an error). Unknown keys are
// rejected so a typo disables nothing silently.
func Load(dir string) (Config, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for _, name := range []string{".sigscan.yml", ".sigscan.yaml"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if info.Size() > 1<<20 {
			return Config{}, fmt.Errorf("config file too large: %s (%d bytes, max 1 MB)", path, info.Size())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		var cfg Config
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return Config{}, nil
}
