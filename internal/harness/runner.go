// Package harness drives a sigscan binary as a subprocess and validates
// what it produces: captured stdout/stderr/exit codes, parsed JSON, Markdown
// and XML output, JSON Schema conformance of artifacts, and structured
// expectations over findings.
package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single invocation when Runner.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// Runner invokes one CLI binary. Invocations are independent: Runner holds
// no state between runs and is safe to share across tests.
type Runner struct {
	Bin     string        // path to the binary under test
	Dir     string        // working directory, "" inherits the caller's
	Env     []string      // extra KEY=VALUE entries appended to os.Environ
	Timeout time.Duration // per-invocation bound, DefaultTimeout when zero
}

// Invocation is one completed run of the binary.
type Invocation struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Run executes the binary with args and captures the outcome. A non-zero
// exit code is data, not an error; callers assert on ExitCode. An error
// means the process could not be started or did not finish in time.
func (r *Runner) Run(ctx context.Context, args ...string) (*Invocation, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Bin, args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), r.Env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s %s: timed out after %s", r.Bin, strings.Join(args, " "), timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s %s: %w", r.Bin, strings.Join(args, " "), err)
		}
		return &Invocation{
			Args:     args,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: exitErr.ExitCode(),
			Duration: elapsed,
		}, nil
	}
	return &Invocation{
		Args:     args,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: elapsed,
	}, nil
}
