package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSummary = `# Scan Summary

## secrets
- findings: 2
- artifacts: 3

## endpoints
- findings: 1
- artifacts: 2
`

func TestParseMarkdownSummaryShape(t *testing.T) {
	sections := ParseMarkdown([]byte(sampleSummary))

	require.Equal(t, []string{"Scan Summary"}, Headings(sections, 1))
	require.Equal(t, []string{"secrets", "endpoints"}, Headings(sections, 2))
	require.Len(t, Headings(sections, 0), 3)

	items := ListItems(sections)
	require.Contains(t, items, "findings: 2")
	require.Contains(t, items, "artifacts: 3")
}

func TestParseMarkdownFindingBullets(t *testing.T) {
	report := "# Secrets Findings\n\n" +
		"- **file**: /tmp/app/config.env  \n" +
		"  **line**: 3  \n" +
		"  **secret**: `ghp_abc`  \n"

	sections := ParseMarkdown([]byte(report))
	items := ListItems(sections)
	require.Len(t, items, 1)

	// Emphasis markers and code ticks are stripped, hard breaks become
	// newlines.
	require.Contains(t, items[0], "file: /tmp/app/config.env")
	require.Contains(t, items[0], "line: 3")
	require.Contains(t, items[0], "secret: ghp_abc")
}

func TestParseMarkdownLineNumbers(t *testing.T) {
	sections := ParseMarkdown([]byte(sampleSummary))
	require.Equal(t, Heading, sections[0].Kind)
	require.Equal(t, 1, sections[0].Line)
	require.Equal(t, 1, sections[0].Level)

	require.Equal(t, Heading, sections[1].Kind)
	require.Equal(t, 3, sections[1].Line)
	require.Equal(t, 2, sections[1].Level)
}

func TestParseMarkdownCodeBlock(t *testing.T) {
	doc := "Intro paragraph.\n\n```go\nfmt.Println(\"x\")\n```\n"
	sections := ParseMarkdown([]byte(doc))

	require.Equal(t, Paragraph, sections[0].Kind)
	require.Equal(t, "Intro paragraph.", sections[0].Text)

	require.Equal(t, CodeBlock, sections[1].Kind)
	require.Equal(t, "go", sections[1].Language)
	require.Equal(t, "fmt.Println(\"x\")\n", sections[1].Text)
}

func TestParseMarkdownEmpty(t *testing.T) {
	require.Empty(t, ParseMarkdown(nil))
}
