package patterns

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFS loads plugin definitions from every .yaml/.yml file in fsys.
// Files may hold multiple YAML documents separated by ---.
func LoadFS(fsys fs.FS) ([]Def, error) {
	var defs []Def
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		parsed, err := parseDefs(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		defs = append(defs, parsed...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// LoadDir loads plugin definitions from a directory on disk.
func LoadDir(dir string) ([]Def, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("definitions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("definitions path %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// parseDefs decodes one or more YAML documents into definitions. Unknown
// keys are rejected so typos fail loudly instead of silently disabling a
// detector.
func parseDefs(data []byte) ([]Def, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var defs []Def
	for {
		var d Def
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}
