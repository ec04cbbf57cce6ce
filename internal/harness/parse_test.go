package harness

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	v, err := ParseJSON(`[{"plugin": "secrets", "findings": 2, "artifacts": 3}]`)
	require.NoError(t, err)

	list, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	entry := list[0].(map[string]any)
	require.Equal(t, "secrets", entry["plugin"])
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON(`{"plugin": `)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "json", perr.Format)
}

func TestParseXML(t *testing.T) {
	raw := `<config>
  <database host="db.example.org">
    <password>XmlPass123!</password>
  </database>
</config>`

	root, err := ParseXML(raw)
	require.NoError(t, err)
	require.Equal(t, "config", root.Name)

	db := root.Find("database")
	require.NotNil(t, db)
	require.Equal(t, "db.example.org", db.Attrs["host"])

	pw := root.Find("password")
	require.NotNil(t, pw)
	require.Equal(t, "XmlPass123!", pw.Text)

	require.Nil(t, root.Find("absent"))
}

func TestParseXMLMalformed(t *testing.T) {
	_, err := ParseXML(`<config><open></config>`)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "xml", perr.Format)
}

func TestParseXMLEmpty(t *testing.T) {
	_, err := ParseXML("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no document element")
}

func TestParseErrorTruncatesRaw(t *testing.T) {
	raw := strings.Repeat("x", 500)
	_, err := ParseJSON(raw)
	require.Error(t, err)
	require.Less(t, len(err.Error()), 350)
	require.Contains(t, err.Error(), "...")
}
