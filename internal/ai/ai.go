// Package ai builds a security-analyst prompt from an input document plus
// previously extracted secrets and runs it through an external llama.cpp
// style model binary. When no usable model is configured it degrades to
// writing a prompt preview instead of failing.
package ai

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// previewLimit caps how much of the prompt the fallback report includes.
const previewLimit = 4000

// maxModelError caps subprocess stderr quoted in error messages.
const maxModelError = 512

// Options configures one AI report run.
type Options struct {
	InputFile   string // notes or scan summary document
	OutputFile  string // where the report (or prompt preview) is written
	SecretsFile string // secrets.json artifact from a prior scan
	ModelBin    string // llama.cpp-style CLI binary, resolved via PATH
	ModelPath   string // GGUF model file
	MaxTokens   int
	Temperature float64
}

// Run generates the report into opts.OutputFile. A missing model binary or
// model file is not an error: Run writes a prompt preview instead and
// returns a non-empty note describing the degradation. A model subprocess
// that starts but fails is an error.
func Run(ctx context.Context, opts Options) (string, error) {
	userText := loadText(opts.InputFile)
	secrets := LoadSecrets(opts.SecretsFile)
	prompt := buildPrompt(userText, secrets)

	bin := resolveBin(opts.ModelBin)
	if bin == "" {
		header := "Model binary not available. Pass --model-bin pointing to a llama.cpp CLI to enable AI mode."
		if err := writePreview(opts.OutputFile, header, prompt); err != nil {
			return "", err
		}
		return "model binary not available; wrote prompt preview instead.", nil
	}

	if !fileExists(opts.ModelPath) {
		header := "Model path not provided or not found. Please pass --model-path pointing to a GGUF model."
		if err := writePreview(opts.OutputFile, header, prompt); err != nil {
			return "", err
		}
		return "Missing --model-path; wrote prompt preview instead.", nil
	}

	report, err := runModel(ctx, bin, opts, prompt)
	if err != nil {
		return "", err
	}
	return "", writeReport(opts.OutputFile, strings.TrimSpace(report))
}

// resolveBin resolves the configured model binary via PATH, returning ""
// when none is configured or it cannot be found.
func resolveBin(bin string) string {
	if bin == "" {
		return ""
	}
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return ""
	}
	return resolved
}

func runModel(ctx context.Context, bin string, opts Options, prompt string) (string, error) {
	args := []string{
		"-m", opts.ModelPath,
		"-p", prompt,
		"-n", strconv.Itoa(opts.MaxTokens),
		"--temp", strconv.FormatFloat(opts.Temperature, 'f', -1, 64),
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("model %s: %w: %s", filepath.Base(bin), err, trimModelOutput(stderr.String()))
	}
	return stdout.String(), nil
}

func trimModelOutput(out string) string {
	clean := strings.TrimSpace(out)
	if clean == "" {
		return "no output"
	}
	if len(clean) > maxModelError {
		return clean[:maxModelError] + "..."
	}
	return clean
}

func writePreview(path, header, prompt string) error {
	preview := prompt
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	return writeReport(path, header+"\n\nPrompt preview:\n\n"+preview)
}

func writeReport(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
