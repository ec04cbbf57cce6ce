// Package patterns implements the regex pattern plugins (secrets, endpoints,
// web) that inspect parsed records, plus the YAML loader and registry that
// back them.
package patterns

import "fmt"

// Def is the YAML definition of a pattern plugin. A definition needs a name
// and a category plus at least one detection source: literal regex patterns,
// credential assignment keywords, or an entropy block.
type Def struct {
	Name               string      `yaml:"name"`
	Category           string      `yaml:"category"`
	Description        string      `yaml:"description,omitempty"`
	Patterns           []string    `yaml:"patterns,omitempty"`
	AssignmentKeywords []string    `yaml:"assignment_keywords,omitempty"`
	Whitelist          []string    `yaml:"whitelist,omitempty"`
	Blacklist          []string    `yaml:"blacklist,omitempty"`
	Entropy            *EntropyDef `yaml:"entropy,omitempty"`
}

// EntropyDef tunes the high-entropy token detector.
type EntropyDef struct {
	MinLength        int     `yaml:"min_length"`
	Threshold        float64 `yaml:"threshold"`
	MaxTokensPerLine int     `yaml:"max_tokens_per_line"`
}

// Validate checks that the definition is usable.
func (d *Def) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("definition missing name")
	}
	if d.Category == "" {
		return fmt.Errorf("definition %q missing category", d.Name)
	}
	if len(d.Patterns) == 0 && len(d.AssignmentKeywords) == 0 && d.Entropy == nil {
		return fmt.Errorf("definition %q has no patterns, assignment keywords, or entropy block", d.Name)
	}
	return nil
}
