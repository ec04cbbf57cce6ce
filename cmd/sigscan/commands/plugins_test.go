package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPluginsTable(t *testing.T) {
	resetScanFlags()
	buf := new(bytes.Buffer)

	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"plugins"})
	defer rootCmd.SetArgs(nil)
	defer rootCmd.SetOut(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "CATEGORY")
	require.Contains(t, out, "secrets")
	require.Contains(t, out, "endpoints")
	require.Contains(t, out, "web")
	require.Contains(t, out, "plugins loaded")
}

func TestPluginsJSON(t *testing.T) {
	resetScanFlags()
	buf := new(bytes.Buffer)

	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"plugins", "--format", "json"})
	defer rootCmd.SetArgs(nil)
	defer rootCmd.SetOut(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	var infos []pluginInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 3)
	for _, info := range infos {
		require.NotEmpty(t, info.Name)
		require.NotEmpty(t, info.Category)
		require.Positive(t, info.Patterns)
	}
}
