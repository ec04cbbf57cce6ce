package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamb0n-3/sigscan/internal/scanner"
)

// resetScanFlags restores flag variables and their Changed state between
// tests. Cobra keeps both across Execute calls in the same process.
func resetScanFlags() {
	flagPlugin = "secrets"
	flagOut = "./scan_output"
	flagVerbose = false
	flagWorkers = scanner.DefaultWorkers
	flagInclude = "*"
	flagExclude = strings.Join(scanner.DefaultExcludeDirs, ",")
	flagMaxFileSize = scanner.DefaultMaxFileSize
	flagNoProgress = false
	flagChanged = false
	flagFormat = "table"

	for _, name := range []string{"plugin", "out", "verbose"} {
		rootCmd.PersistentFlags().Lookup(name).Changed = false
	}
	for _, name := range []string{"workers", "include", "exclude", "max-file-size", "no-progress", "changed"} {
		dirCmd.Flags().Lookup(name).Changed = false
	}
	pluginsCmd.Flags().Lookup("format").Changed = false
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
