package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Scan a single file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	targetPath := args[0]
	loadScanConfig(cmd, targetPath)

	selected, err := selectPlugins()
	if err != nil {
		return err
	}

	// One file, one worker. Discovery filters do not apply to an
	// explicitly named file.
	s := buildScanner(1, selected)

	ctx, cancel := contextWithInterrupt()
	defer cancel()

	result, err := s.Scan(ctx, targetPath)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	return writeReports(result)
}
