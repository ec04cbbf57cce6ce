package ai

import (
	"fmt"
	"strconv"
	"strings"
)

// promptPreamble is the fixed analyst instruction block every prompt starts
// with. Changing it changes the prompt-preview artifact, so treat the exact
// wording as part of the output contract.
const promptPreamble = `You are a security analyst. You are given:
1) An input document (could be notes or a scan summary).
2) A list of extracted potential secrets with context.

Write a concise risk-oriented report that:
- Highlights the most critical items first.
- Groups similar issues together.
- Suggests concrete remediation actions.
- Includes a short 'Evidence' section with file paths and line numbers where relevant.

Keep it to ~600-1000 words.
`

// maxSnippets caps how many extracted candidates make it into the prompt;
// anything beyond is summarized by a single "omitted" line.
const maxSnippets = 64

// buildPrompt assembles the full model prompt: preamble, input document,
// extracted candidates, and the task instruction, joined by newlines.
func buildPrompt(userText string, secrets []Secret) string {
	sections := []string{
		promptPreamble,
		"\n--- INPUT DOCUMENT ---\n",
		userText,
		"\n--- EXTRACTED CANDIDATES (SECRETS) ---\n",
		formatSnippets(secrets),
		"\n--- TASK ---\nDraft the report now.",
	}
	return strings.Join(sections, "\n")
}

func formatSnippets(secrets []Secret) string {
	lines := make([]string, 0, len(secrets))
	for i, s := range secrets {
		if i == maxSnippets {
			break
		}
		loc := s.Location
		if loc == "" {
			loc = "unknown"
		}
		line := "?"
		if s.LineNum != nil {
			line = strconv.Itoa(*s.LineNum)
		}
		lines = append(lines, fmt.Sprintf("%d. [%s] %s:%s :: %s\n    %s",
			i+1, s.Category, loc, line, s.Secret, strings.TrimSpace(s.Context)))
	}
	if len(secrets) > maxSnippets {
		lines = append(lines, fmt.Sprintf("... %d more items omitted ...", len(secrets)-maxSnippets))
	}
	return strings.Join(lines, "\n")
}
