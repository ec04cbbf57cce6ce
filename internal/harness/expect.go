package harness

import (
	"fmt"
	"strings"
)

// Expect describes constraints a findings artifact must satisfy. Zero-value
// fields are unconstrained; string fields match by substring except
// Category, which matches exactly. MinCount is the number of findings that
// must satisfy every set constraint at once (0 means 1).
type Expect struct {
	Category        string
	File            string // substring of the finding's location
	SecretContains  string
	ContextContains string
	MetaKey         string // key that must be present in the finding's meta
	MinCount        int
}

// Match reports whether findings satisfy the expectation. The error names
// every constraint that was set, so a failure reads as a complete
// description of what was looked for.
func (e Expect) Match(findings []Finding) error {
	want := e.MinCount
	if want == 0 {
		want = 1
	}

	matched := 0
	for _, f := range findings {
		if e.matches(f) {
			matched++
		}
	}
	if matched < want {
		return fmt.Errorf("expected at least %d finding(s) with %s, matched %d of %d",
			want, e.describe(), matched, len(findings))
	}
	return nil
}

func (e Expect) matches(f Finding) bool {
	if e.Category != "" && f.Category != e.Category {
		return false
	}
	if e.File != "" && !strings.Contains(f.Location, e.File) {
		return false
	}
	if e.SecretContains != "" && !strings.Contains(f.Secret, e.SecretContains) {
		return false
	}
	if e.ContextContains != "" && !strings.Contains(f.Context, e.ContextContains) {
		return false
	}
	if e.MetaKey != "" {
		if _, ok := f.Meta[e.MetaKey]; !ok {
			return false
		}
	}
	return true
}

func (e Expect) describe() string {
	var parts []string
	if e.Category != "" {
		parts = append(parts, "category="+e.Category)
	}
	if e.File != "" {
		parts = append(parts, "file~"+e.File)
	}
	if e.SecretContains != "" {
		parts = append(parts, "secret~"+e.SecretContains)
	}
	if e.ContextContains != "" {
		parts = append(parts, "context~"+e.ContextContains)
	}
	if e.MetaKey != "" {
		parts = append(parts, "meta."+e.MetaKey)
	}
	if len(parts) == 0 {
		return "no constraints"
	}
	return strings.Join(parts, " ")
}
