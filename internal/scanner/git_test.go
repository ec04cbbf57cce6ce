package scanner_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamb0n-3/sigscan/internal/scanner"
)

func skipIfNoGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not on PATH")
	}
}

func TestGitChangedFilesModifiedAndUntracked(t *testing.T) {
	skipIfNoGit(t)

	dir := t.TempDir()

	// Init repo and create initial commit
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=dev",
			"GIT_AUTHOR_EMAIL=dev@localhost",
			"GIT_COMMITTER_NAME=dev",
			"GIT_COMMITTER_EMAIL=dev@localhost",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	run("init")
	run("config", "user.email", "dev@localhost")
	run("config", "user.name", "dev")

	// Create and commit initial file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "committed.md"), []byte("ok"), 0o644))
	run("add", "committed.md")
	run("commit", "-m", "init")

	// Modify tracked file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "committed.md"), []byte("changed"), 0o644))

	// Add untracked file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("new"), 0o644))

	files, err := scanner.GitChangedFiles(dir)
	require.NoError(t, err)
	require.Contains(t, files, "committed.md")
	require.Contains(t, files, "untracked.txt")
}

func TestGitChangedFilesNotARepo(t *testing.T) {
	skipIfNoGit(t)

	dir := t.TempDir()
	files, err := scanner.GitChangedFiles(dir)
	require.NoError(t, err)
	require.Empty(t, files)
}
