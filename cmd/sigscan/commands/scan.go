package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hamb0n-3/sigscan/internal/config"
	"github.com/hamb0n-3/sigscan/internal/patterns"
	"github.com/hamb0n-3/sigscan/internal/report"
	"github.com/hamb0n-3/sigscan/internal/scanner"
)

// loadScanConfig merges .sigscan.yml values into the flag variables.
// Explicitly set flags always win; config fills in the rest.
func loadScanConfig(cmd *cobra.Command, targetPath string) {
	cfg, err := config.Load(targetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if !cmd.Flags().Changed("plugin") && cfg.Plugin != "" {
		flagPlugin = cfg.Plugin
	}
	if !cmd.Flags().Changed("out") && cfg.Out != "" {
		flagOut = cfg.Out
	}
	if !cmd.Flags().Changed("include") && len(cfg.Include) > 0 {
		flagInclude = strings.Join(cfg.Include, ",")
	}
	if !cmd.Flags().Changed("exclude") && len(cfg.Exclude) > 0 {
		flagExclude = strings.Join(cfg.Exclude, ",")
	}
	if !cmd.Flags().Changed("max-file-size") && cfg.MaxFileSize > 0 {
		flagMaxFileSize = cfg.MaxFileSize
	}
	if !cmd.Flags().Changed("workers") && cfg.Workers > 0 {
		flagWorkers = cfg.Workers
	}
}

// selectPlugins resolves --plugin against the built-in registry. An empty
// selection is reported on stderr and returned as an error so the process
// exits 2 before any artifact is written.
func selectPlugins() ([]*patterns.Plugin, error) {
	reg, err := patterns.Builtin()
	if err != nil {
		return nil, fmt.Errorf("loading built-in plugins: %w", err)
	}
	selected := reg.Select(flagPlugin)
	if len(selected) == 0 {
		fmt.Fprintln(os.Stderr, "No pattern plugins selected. Exiting.")
		return nil, fmt.Errorf("no pattern plugins matched %q", flagPlugin)
	}
	return selected, nil
}

func buildScanner(workers int, selected []*patterns.Plugin) *scanner.Scanner {
	s := scanner.New(workers)
	for _, p := range selected {
		s.RegisterPlugin(p)
	}
	if flagVerbose {
		s.SetWarn(func(path string) {
			fmt.Fprintf(os.Stderr, "warning: skipped %s\n", path)
		})
	}
	return s
}

func contextWithInterrupt() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}

func writeReports(result *scanner.ScanResult) error {
	if _, err := report.New(flagOut).WriteAll(result); err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "scanned %d file(s), skipped %d, %d finding(s) in %s\n",
			result.FilesScanned, result.FilesSkipped, result.TotalFindings(),
			result.Duration.Round(time.Millisecond))
	}
	return nil
}

// splitList splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
