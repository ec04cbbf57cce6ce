package harness

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxRawInError caps how much raw output a ParseError quotes.
const maxRawInError = 200

// ParseError reports output that does not parse in its declared format.
type ParseError struct {
	Format string
	Raw    string
	Err    error
}

func (e *ParseError) Error() string {
	raw := strings.TrimSpace(e.Raw)
	if len(raw) > maxRawInError {
		raw = raw[:maxRawInError] + "..."
	}
	return fmt.Sprintf("malformed %s output: %v: %q", e.Format, e.Err, raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseJSON decodes raw as arbitrary JSON. Malformed input is a *ParseError.
func ParseJSON(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, &ParseError{Format: "json", Raw: raw, Err: err}
	}
	return v, nil
}

// XMLNode is one element of a parsed XML document.
type XMLNode struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*XMLNode
}

// Find returns the first descendant element with the given name, depth
// first, or nil. A node matches itself.
func (n *XMLNode) Find(name string) *XMLNode {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// ParseXML decodes raw into an element tree rooted at the document element.
// Malformed input is a *ParseError.
func ParseXML(raw string) (*XMLNode, error) {
	dec := xml.NewDecoder(strings.NewReader(raw))
	root := &XMLNode{}
	stack := []*XMLNode{root}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Format: "xml", Raw: raw, Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node := &XMLNode{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				node.Attrs = make(map[string]string, len(t.Attr))
				for _, attr := range t.Attr {
					node.Attrs[attr.Name.Local] = attr.Value
				}
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			current := stack[len(stack)-1]
			current.Text += string(t)
		}
	}

	if len(root.Children) == 0 {
		return nil, &ParseError{Format: "xml", Raw: raw, Err: fmt.Errorf("no document element")}
	}
	return root.Children[0], nil
}
