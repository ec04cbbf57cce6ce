package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hamb0n-3/sigscan/internal/patterns"
)

var flagFormat string

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List built-in pattern plugins",
	RunE:  runPlugins,
}

func init() {
	pluginsCmd.Flags().StringVar(&flagFormat, "format", "table", "Output format (table, json)")
	rootCmd.AddCommand(pluginsCmd)
}

type pluginInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Patterns int    `json:"patterns"`
}

func runPlugins(cmd *cobra.Command, args []string) error {
	reg, err := patterns.Builtin()
	if err != nil {
		return fmt.Errorf("loading built-in plugins: %w", err)
	}

	w := cmd.OutOrStdout()

	if strings.ToLower(flagFormat) == "json" {
		infos := make([]pluginInfo, 0, reg.Len())
		for _, p := range reg.All() {
			infos = append(infos, pluginInfo{
				Name:     p.Name(),
				Category: p.Category(),
				Patterns: p.PatternCount(),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tCATEGORY\tPATTERNS\tDESCRIPTION\n")
	fmt.Fprintf(tw, "----\t--------\t--------\t-----------\n")
	for _, p := range reg.All() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.Name(), p.Category(), p.PatternCount(), p.Description())
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d plugins loaded\n", reg.Len())

	return nil
}
