package report

import "github.com/hamb0n-3/sigscan/internal/types"

// StrictSecret is one entry of the fixed secrets.json contract consumed by
// AI mode. The "file location" key really does contain a space; key order
// follows field order.
type StrictSecret struct {
	Secret   string `json:"secret"`
	Context  string `json:"context"`
	LineNum  int    `json:"line_num"`
	Location string `json:"file location"`
	Category string `json:"category"`
}

func strictSecrets(findings []types.Finding) []StrictSecret {
	out := make([]StrictSecret, 0, len(findings))
	for _, f := range findings {
		out = append(out, StrictSecret{
			Secret:   f.Secret,
			Context:  f.Context,
			LineNum:  f.LineNum,
			Location: f.FileLocation,
			Category: f.Category,
		})
	}
	return out
}
