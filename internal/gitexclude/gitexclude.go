// Package gitexclude maintains a project's `.git/info/exclude` so that a
// newly created Project-scope settings directory never ends up tracked by
// source control (spec.md §4.6, made concrete by SPEC_FULL.md §4.13).
package gitexclude

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

const excludedEntry = ".pi/"

// EnsureExcluded adds ".pi/" to projectRoot's local git exclude list
// unless an existing pattern already covers it. Failures (missing .git,
// permission denied) are returned for the caller to log and swallow —
// this side effect is explicitly non-fatal per spec.md §4.6.
func EnsureExcluded(projectRoot string) error {
	gitDir, err := resolveGitDir(projectRoot)
	if err != nil {
		return err
	}

	excludePath := filepath.Join(gitDir, "info", "exclude")
	existing, err := os.ReadFile(excludePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if alreadyCovered(string(existing)) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(excludePath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(excludePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}
	_, err = f.WriteString(excludedEntry + "\n")
	return err
}

// alreadyCovered uses go-gitignore to parse the existing exclude patterns
// and check whether any of them already matches ".pi/" — a broader
// pattern like ".pi", "/", or "*" should not be duplicated.
func alreadyCovered(existing string) bool {
	lines := strings.Split(existing, "\n")
	matcher := gitignore.CompileIgnoreLines(lines...)
	return matcher.MatchesPath(excludedEntry) || matcher.MatchesPath(".pi")
}

// resolveGitDir finds the real `.git` metadata directory for projectRoot,
// following a `gitdir: <path>` pointer file for worktrees.
func resolveGitDir(projectRoot string) (string, error) {
	gitPath := filepath.Join(projectRoot, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return gitPath, nil
	}

	data, err := os.ReadFile(gitPath)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(data))
	target := strings.TrimPrefix(line, "gitdir:")
	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(projectRoot, target)
	}
	return filepath.Clean(target), nil
}
