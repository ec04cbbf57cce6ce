package harness

import (
	"encoding/json"
	"fmt"
	"os"
)

// Finding is one entry read back from a findings or secrets artifact. The
// strict secrets contract writes the location key as "file location" while
// per-plugin artifacts write "file_location"; both are accepted.
type Finding struct {
	Secret   string
	Context  string
	LineNum  int
	Location string
	Category string
	Meta     map[string]any
}

func (f *Finding) UnmarshalJSON(data []byte) error {
	var aux struct {
		Secret      string         `json:"secret"`
		Context     string         `json:"context"`
		LineNum     int            `json:"line_num"`
		Location    string         `json:"file location"`
		AltLocation string         `json:"file_location"`
		Category    string         `json:"category"`
		Meta        map[string]any `json:"meta"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.Secret = aux.Secret
	f.Context = aux.Context
	f.LineNum = aux.LineNum
	f.Location = aux.Location
	if f.Location == "" {
		f.Location = aux.AltLocation
	}
	f.Category = aux.Category
	f.Meta = aux.Meta
	return nil
}

// LoadFindings reads a findings artifact from disk.
func LoadFindings(path string) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading findings: %w", err)
	}
	var findings []Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, &ParseError{Format: "json", Raw: string(data), Err: err}
	}
	return findings, nil
}
