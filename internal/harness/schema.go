package harness

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// schemaNames maps embedded schema files to the artifacts they govern.
// Any *.json artifact not named here validates against findings.json.
var schemaNames = []string{"secrets.json", "findings.json", "index.json"}

var compiled = sync.OnceValues(func() (map[string]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	for _, name := range schemaNames {
		raw, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decoding schema %s: %w", name, err)
		}
		if err := c.AddResource(name, doc); err != nil {
			return nil, fmt.Errorf("adding schema %s: %w", name, err)
		}
	}
	schemas := make(map[string]*jsonschema.Schema, len(schemaNames))
	for _, name := range schemaNames {
		sch, err := c.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", name, err)
		}
		schemas[name] = sch
	}
	return schemas, nil
})

// ValidateArtifact checks one JSON artifact against the schema matching its
// filename: secrets.json against the strict secrets contract, index.json
// against the index contract, and every other *.json against the findings
// contract. data is the raw artifact content.
func ValidateArtifact(name string, data []byte) error {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".json") {
		return fmt.Errorf("no schema governs %s", base)
	}

	schemas, err := compiled()
	if err != nil {
		return err
	}
	key := "findings.json"
	switch base {
	case "secrets.json", "index.json":
		key = base
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ParseError{Format: "json", Raw: string(data), Err: err}
	}
	if err := schemas[key].Validate(instance); err != nil {
		return fmt.Errorf("%s does not conform to %s: %w", base, key, err)
	}
	return nil
}
