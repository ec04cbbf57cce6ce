package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamb0n-3/sigscan/internal/ai"
)

var (
	flagInputFile   string
	flagOutputFile  string
	flagSecretsFile string
	flagModelBin    string
	flagModelPath   string
	flagMaxTokens   int
	flagTemperature float64
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Generate an AI risk report from a document and extracted secrets",
	Long:  `Builds an analyst prompt from an input document and the secrets.json of a previous scan, then runs it through an external llama.cpp-style model binary. Without a usable model the prompt preview is written instead, so the command always produces a report.`,
	RunE:  runAI,
}

func init() {
	aiCmd.Flags().StringVar(&flagInputFile, "input-file", "", "Input text/markdown file to augment with context")
	aiCmd.Flags().StringVar(&flagOutputFile, "output-file", "", "Where to write the AI-generated report/summary")
	aiCmd.Flags().StringVar(&flagSecretsFile, "secrets-file", "./scan_output/secrets.json", "Path to secrets.json (default: ./scan_output/secrets.json)")
	aiCmd.Flags().StringVar(&flagModelBin, "model-bin", "", "llama.cpp-style CLI binary to run inference with (resolved via PATH)")
	aiCmd.Flags().StringVar(&flagModelPath, "model-path", "", "Path to GGUF model file")
	aiCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 768, "Max new tokens to generate")
	aiCmd.Flags().Float64Var(&flagTemperature, "temperature", 0.2, "Sampling temperature")
	_ = aiCmd.MarkFlagRequired("input-file")
	_ = aiCmd.MarkFlagRequired("output-file")
	rootCmd.AddCommand(aiCmd)
}

func runAI(cmd *cobra.Command, args []string) error {
	ctx, cancel := contextWithInterrupt()
	defer cancel()

	note, err := ai.Run(ctx, ai.Options{
		InputFile:   flagInputFile,
		OutputFile:  flagOutputFile,
		SecretsFile: flagSecretsFile,
		ModelBin:    flagModelBin,
		ModelPath:   flagModelPath,
		MaxTokens:   flagMaxTokens,
		Temperature: flagTemperature,
	})
	if note != "" {
		fmt.Fprintln(os.Stderr, note)
	}
	if err != nil {
		return fmt.Errorf("ai mode: %w", err)
	}
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "report written to %s\n", flagOutputFile)
	}
	return nil
}
