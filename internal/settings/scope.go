package settings

import (
	"os"
	"path/filepath"
	"strings"
)

// Scope identifies which settings file backs a session: Project (tied to a
// source-control root) or Global (user home).
type Scope int

const (
	Project Scope = iota
	Global
)

func (s Scope) String() string {
	if s == Project {
		return "project"
	}
	return "global"
}

// ScopeProbe is the collaborator that tells the settings store whether a
// directory sits inside a source-control project, and if so, its root.
// Production code uses GitScopeProbe; tests inject a fake so the core is
// testable without a real git checkout.
type ScopeProbe interface {
	IsGitRepo(dir string) (root string, ok bool)
}

// GitScopeProbe walks up from a directory looking for a `.git` entry,
// resolving the worktree case where `.git` is a pointer file containing
// `gitdir: <path>` rather than the repository metadata directory itself.
type GitScopeProbe struct{}

func (GitScopeProbe) IsGitRepo(dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		gitPath := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			if info.IsDir() || isWorktreePointerFile(gitPath) {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isWorktreePointerFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(string(data)), "gitdir:")
}

// Path returns the settings file path for the given scope.
func (s Scope) Path(projectRoot string) (string, error) {
	if s == Project {
		return filepath.Join(projectRoot, ".pi", "settings.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pi", "agent", "settings.json"), nil
}

// Resolve implements spec.md §4.6 scope selection. A probe error or a
// failure to resolve $HOME both collapse to Global, per the
// ScopeDetectionFailure error kind (spec.md §7): "collaborator scope probe
// throws → default to Global."
func Resolve(cwd string, probe ScopeProbe) (scope Scope, path string) {
	if probe == nil {
		probe = GitScopeProbe{}
	}
	if root, ok := safeIsGitRepo(probe, cwd); ok {
		p, err := Project.Path(root)
		if err == nil {
			return Project, p
		}
	}
	p, err := Global.Path("")
	if err != nil {
		return Global, ""
	}
	return Global, p
}

func safeIsGitRepo(probe ScopeProbe, dir string) (root string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			root, ok = "", false
		}
	}()
	return probe.IsGitRepo(dir)
}
