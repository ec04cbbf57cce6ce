package parsers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hamb0n-3/sigscan/internal/types"
)

// JSONParser flattens JSON documents into "dot.path: value" records so the
// pattern plugins see structured values as single lines. Object keys keep
// document order and array elements use their index as a path segment
// ("endpoints.0: https://..."). Malformed documents fall back to raw line
// records.
type JSONParser struct{}

func (p *JSONParser) Name() string { return "json" }

func (p *JSONParser) Extensions() []string { return []string{"json"} }

func (p *JSONParser) Parse(path string) ([]types.Record, error) {
	content, ok := ReadTextSafely(path)
	if !ok {
		return nil, nil
	}
	flat, err := flattenJSON(content)
	if err != nil {
		return lineRecords(path, content), nil
	}
	records := make([]types.Record, 0, len(flat))
	for i, line := range flat {
		records = append(records, types.Record{Path: path, LineNum: i + 1, Text: line})
	}
	return records, nil
}

// flattenJSON walks the document with a token decoder rather than
// unmarshalling into a map, so the emitted lines follow document order and
// repeated runs produce identical records.
func flattenJSON(content string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()

	var out []string
	if err := flattenValue(dec, nil, &out); err != nil {
		return nil, err
	}
	// Trailing garbage after the document is as malformed as bad syntax.
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing content")
	}
	return out, nil
}

func flattenValue(dec *json.Decoder, path []string, out *[]string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return err
				}
				key, _ := keyTok.(string)
				if err := flattenValue(dec, append(path, key), out); err != nil {
					return err
				}
			}
			_, err := dec.Token() // closing '}'
			return err
		case '[':
			for i := 0; dec.More(); i++ {
				if err := flattenValue(dec, append(path, strconv.Itoa(i)), out); err != nil {
					return err
				}
			}
			_, err := dec.Token() // closing ']'
			return err
		}
		return fmt.Errorf("unexpected delimiter %v", t)
	default:
		*out = append(*out, strings.Join(path, ".")+": "+scalarString(tok))
		return nil
	}
}

func scalarString(tok json.Token) string {
	switch v := tok.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}
