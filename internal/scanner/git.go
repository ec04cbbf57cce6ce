package scanner

import (
	"os/exec"
	"strings"
)

// GitChangedFiles returns files that have been modified, staged, or are
// untracked in the git repository rooted at root, as paths relative to
// root. If git is unavailable or root is not a git repository the function
// returns an empty slice and no error.
func GitChangedFiles(root string) ([]string, error) {
	// Check that git is available
	if _, err := exec.LookPath("git"); err != nil {
		return nil, nil
	}

	// Check we're inside a git repo
	if _, err := runGit(root, "rev-parse", "--git-dir"); err != nil {
		return nil, nil
	}

	seen := make(map[string]bool)
	var files []string

	// Tracked changes (staged + unstaged). Falls back to --cached for
	// repos without any commits yet.
	out, err := runGit(root, "diff", "--name-only", "HEAD")
	if err != nil {
		out, err = runGit(root, "diff", "--name-only", "--cached")
		if err != nil {
			return nil, nil
		}
	}
	for _, f := range splitGitOutput(out) {
		if f != "" && !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}

	// Untracked files
	out, err = runGit(root, "ls-files", "--others", "--exclude-standard")
	if err == nil {
		for _, f := range splitGitOutput(out) {
			if f != "" && !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	return files, nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func splitGitOutput(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
