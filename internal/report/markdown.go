package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hamb0n-3/sigscan/internal/types"
)

// renderMarkdown emits the human-readable <plugin>.md report. The secrets
// category labels the matched text **secret** and includes meta; other
// categories lead with the context and add a **value** line only when a
// matched value is present.
func renderMarkdown(pr types.PluginResult) []byte {
	secrets := pr.Category == "secrets"
	lines := []string{"# " + titleCase(pr.Plugin) + " Findings", ""}

	for _, f := range pr.Findings {
		lines = append(lines,
			fmt.Sprintf("- **file**: %s  ", f.FileLocation),
			fmt.Sprintf("  **line**: %d  ", f.LineNum))

		if secrets {
			lines = append(lines,
				fmt.Sprintf("  **secret**: `%s`  ", f.Secret),
				fmt.Sprintf("  **context**: `%s`  ", strings.TrimSpace(f.Context)))
			if len(f.Meta) > 0 {
				if meta, err := json.Marshal(f.Meta); err == nil {
					lines = append(lines, fmt.Sprintf("  **meta**: `%s`  ", meta))
				}
			}
		} else {
			lines = append(lines, fmt.Sprintf("  **context**: `%s`  ", strings.TrimSpace(f.Context)))
			if f.Secret != "" {
				lines = append(lines, fmt.Sprintf("  **value**: `%s`  ", f.Secret))
			}
		}

		lines = append(lines, "")
	}

	return []byte(joinLines(lines))
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
