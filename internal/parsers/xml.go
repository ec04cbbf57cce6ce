package parsers

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hamb0n-3/sigscan/internal/types"
)

// XMLParser emits one record per element that carries text, keyed by its
// element path ("/config/database/password: hunter2"), in document order.
// Only text before an element's first child counts; tail text is ignored.
// Malformed documents fall back to raw line records.
type XMLParser struct{}

func (p *XMLParser) Name() string { return "xml" }

func (p *XMLParser) Extensions() []string { return []string{"xml"} }

func (p *XMLParser) Parse(path string) ([]types.Record, error) {
	content, ok := ReadTextSafely(path)
	if !ok {
		return nil, nil
	}
	flat, err := flattenXML(content)
	if err != nil {
		return lineRecords(path, content), nil
	}
	records := make([]types.Record, 0, len(flat))
	for i, line := range flat {
		records = append(records, types.Record{Path: path, LineNum: i + 1, Text: line})
	}
	return records, nil
}

type xmlFrame struct {
	path    string
	text    strings.Builder
	emitted bool
}

// flattenXML streams the document, flushing each element's leading text
// when its first child opens or the element closes, whichever comes first.
// Any parse error discards partial output so a broken document falls back
// cleanly.
func flattenXML(content string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var out []string
	var stack []*xmlFrame
	rootClosed := false

	flush := func(f *xmlFrame) {
		if f.emitted {
			return
		}
		f.emitted = true
		if text := strings.TrimSpace(f.text.String()); text != "" {
			out = append(out, f.path+": "+text)
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) != 0 {
				return nil, fmt.Errorf("unexpected end of document")
			}
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && rootClosed {
				return nil, fmt.Errorf("multiple root elements")
			}
			parentPath := ""
			if n := len(stack); n > 0 {
				flush(stack[n-1])
				parentPath = stack[n-1].path
			}
			stack = append(stack, &xmlFrame{path: parentPath + "/" + t.Name.Local})
		case xml.EndElement:
			n := len(stack)
			flush(stack[n-1])
			stack = stack[:n-1]
			if len(stack) == 0 {
				rootClosed = true
			}
		case xml.CharData:
			if n := len(stack); n > 0 && !stack[n-1].emitted {
				stack[n-1].text.Write(t)
			}
		}
	}
	return out, nil
}
