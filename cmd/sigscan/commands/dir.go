package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamb0n-3/sigscan/internal/progress"
	"github.com/hamb0n-3/sigscan/internal/scanner"
)

var (
	flagWorkers     int
	flagInclude     string
	flagExclude     string
	flagMaxFileSize int64
	flagNoProgress  bool
	flagChanged     bool
)

var dirCmd = &cobra.Command{
	Use:   "dir <path>",
	Short: "Scan a directory recursively",
	Args:  cobra.ExactArgs(1),
	RunE:  runDir,
}

func init() {
	dirCmd.Flags().IntVar(&flagWorkers, "workers", scanner.DefaultWorkers, "Number of worker goroutines for scanning")
	dirCmd.Flags().StringVar(&flagInclude, "include", "*", "Glob(s) to include, comma-separated, matched against file base names")
	dirCmd.Flags().StringVar(&flagExclude, "exclude", strings.Join(scanner.DefaultExcludeDirs, ","), "Dir names to exclude, comma-separated")
	dirCmd.Flags().Int64Var(&flagMaxFileSize, "max-file-size", scanner.DefaultMaxFileSize, "Max file size in bytes to parse (default 5MB)")
	dirCmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "Disable the progress display during directory scans")
	dirCmd.Flags().BoolVar(&flagChanged, "changed", false, "Only scan git-changed files (staged, unstaged, untracked)")
	rootCmd.AddCommand(dirCmd)
}

func runDir(cmd *cobra.Command, args []string) error {
	targetPath := args[0]
	loadScanConfig(cmd, targetPath)

	selected, err := selectPlugins()
	if err != nil {
		return err
	}

	s := buildScanner(flagWorkers, selected)
	s.SetDiscovery(scanner.Discovery{
		IncludeGlobs: splitList(flagInclude),
		ExcludeDirs:  splitList(flagExclude),
		MaxFileSize:  flagMaxFileSize,
	})

	var counter *progress.Counter
	if !flagNoProgress {
		counter = progress.NewCounter(os.Stderr, "Scanning files")
		counter.Start()
		s.SetProgress(counter.Advance)
	}

	ctx, cancel := contextWithInterrupt()
	defer cancel()

	result, err := executeScan(ctx, s, targetPath)
	if counter != nil {
		counter.Stop()
	}
	if err != nil {
		return err
	}

	return writeReports(result)
}

func executeScan(ctx context.Context, s *scanner.Scanner, targetPath string) (*scanner.ScanResult, error) {
	if flagChanged {
		return scanChangedFiles(ctx, s, targetPath)
	}
	result, err := s.Scan(ctx, targetPath)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return result, nil
}

func scanChangedFiles(ctx context.Context, s *scanner.Scanner, targetPath string) (*scanner.ScanResult, error) {
	changed, err := scanner.GitChangedFiles(targetPath)
	if err != nil {
		return nil, fmt.Errorf("listing changed files: %w", err)
	}
	var targets []*scanner.Target
	for _, relPath := range changed {
		absPath := filepath.Join(targetPath, relPath)
		if _, err := os.Stat(absPath); err != nil {
			continue
		}
		targets = append(targets, &scanner.Target{Path: absPath})
	}
	result, err := s.ScanTargets(ctx, targets)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.Target = targetPath
	return result, nil
}
