package harness

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// SectionKind classifies one structural piece of a Markdown artifact.
type SectionKind int

const (
	Heading SectionKind = iota
	Paragraph
	ListItem
	CodeBlock
)

func (k SectionKind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Paragraph:
		return "paragraph"
	case ListItem:
		return "list_item"
	case CodeBlock:
		return "code_block"
	default:
		return "unknown"
	}
}

// Section is one parsed piece of a Markdown artifact. Text carries the
// rendered inline content with emphasis markers stripped, so a report line
// written as "- **file**: /a/b" surfaces as "file: /a/b".
type Section struct {
	Kind     SectionKind
	Text     string
	Line     int    // 1-based
	Level    int    // headings only
	Language string // fenced code blocks only
}

// ParseMarkdown extracts the structural sections of a Markdown document in
// source order.
func ParseMarkdown(source []byte) []Section {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var sections []Section
	collect(doc, source, &sections)
	return sections
}

// Headings returns the text of every heading at the given level, or every
// heading when level is 0.
func Headings(sections []Section, level int) []string {
	var out []string
	for _, s := range sections {
		if s.Kind != Heading {
			continue
		}
		if level == 0 || s.Level == level {
			out = append(out, s.Text)
		}
	}
	return out
}

// ListItems returns the text of every list item section.
func ListItems(sections []Section) []string {
	var out []string
	for _, s := range sections {
		if s.Kind == ListItem {
			out = append(out, s.Text)
		}
	}
	return out
}

func collect(n ast.Node, source []byte, sections *[]Section) {
	switch node := n.(type) {
	case *ast.Heading:
		*sections = append(*sections, Section{
			Kind:  Heading,
			Text:  inlineText(node, source),
			Line:  nodeLine(node, source),
			Level: node.Level,
		})
	case *ast.Paragraph:
		// Paragraphs inside list items are surfaced through the item
		// itself, not duplicated.
		if _, inItem := n.Parent().(*ast.ListItem); !inItem {
			*sections = append(*sections, Section{
				Kind: Paragraph,
				Text: inlineText(node, source),
				Line: nodeLine(node, source),
			})
		}
	case *ast.ListItem:
		*sections = append(*sections, Section{
			Kind: ListItem,
			Text: inlineText(node, source),
			Line: nodeLine(node, source),
		})
	case *ast.FencedCodeBlock:
		lang := ""
		if l := node.Language(source); l != nil {
			lang = string(l)
		}
		*sections = append(*sections, Section{
			Kind:     CodeBlock,
			Text:     blockText(node, source),
			Line:     nodeLine(node, source),
			Language: lang,
		})
	}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		collect(child, source, sections)
	}
}

// inlineText flattens a node's inline content, joining soft and hard line
// breaks with newlines.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
			continue
		}
		buf.WriteString(inlineText(child, source))
	}
	return buf.String()
}

func blockText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// nodeLine converts a node's first byte offset into a 1-based line number.
// Nodes without line segments (headings) fall back to their first text
// child's segment.
func nodeLine(n ast.Node, source []byte) int {
	offset := 0
	if n.Lines().Len() > 0 {
		offset = n.Lines().At(0).Start
	} else {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if t, ok := child.(*ast.Text); ok {
				offset = t.Segment.Start
				break
			}
		}
	}
	line := 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}
	return line
}
