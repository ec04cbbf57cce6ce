package ai

import (
	"encoding/json"
	"os"
)

// Secret is one entry read back from a secrets.json artifact. Fresh scans
// write the location key as "file location" (with a space); artifacts from
// older tooling use "file_location", so both are accepted. LineNum is nil
// when the artifact carries no line number.
type Secret struct {
	Secret   string
	Context  string
	LineNum  *int
	Location string
	Category string
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	var aux struct {
		Secret      string `json:"secret"`
		Context     string `json:"context"`
		LineNum     *int   `json:"line_num"`
		Location    string `json:"file location"`
		AltLocation string `json:"file_location"`
		Category    string `json:"category"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Secret = aux.Secret
	s.Context = aux.Context
	s.LineNum = aux.LineNum
	s.Location = aux.Location
	if s.Location == "" {
		s.Location = aux.AltLocation
	}
	s.Category = aux.Category
	return nil
}

// LoadSecrets reads a secrets.json artifact. A missing or malformed file
// yields an empty list: the prompt simply carries no extracted candidates.
func LoadSecrets(path string) []Secret {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var secrets []Secret
	if err := json.Unmarshal(data, &secrets); err != nil {
		return nil
	}
	return secrets
}

// loadText reads the input document, degrading to empty on any error.
func loadText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
