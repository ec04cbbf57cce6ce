package commands

import (
	"github.com/spf13/cobra"
)

var (
	flagPlugin  string
	flagOut     string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sigscan",
	Short: "Recursive file scanner with pluggable pattern analyzers and AI mode",
	Long:  `Sigscan walks directories or single files, parses each file by format, and runs pattern plugins over the parsed records to surface secrets, network endpoints, and web artifacts. Reports are written as JSON and Markdown.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPlugin, "plugin", "secrets", "Comma-delimited pattern plugins to activate (e.g. 'secrets,endpoints') or 'all'")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "./scan_output", "Output directory for report artifacts")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Per-file warnings and scan statistics on stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
