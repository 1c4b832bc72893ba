// Package pathpolicy implements the protected-path policy (C5): whether a
// file write targets a protected name/prefix, and whether it stays within
// the project root.
package pathpolicy

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vrslev/pi-guard/internal/autonomy"
)

// Verdict is the outcome of evaluating a write path.
type Verdict int

const (
	Allow Verdict = iota
	AllowWithProjectCheck
	Prompt
	PromptProtected
)

func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case AllowWithProjectCheck:
		return "allow-with-project-check"
	case Prompt:
		return "prompt"
	case PromptProtected:
		return "prompt-protected"
	default:
		return "unknown"
	}
}

// ProtectedNames is the constant protected path set (spec.md §3), matched
// as substrings of the tilde-expanded path, which is not otherwise cleaned
// before matching (DESIGN.md Open Question 3).
var ProtectedNames = []string{
	".env", ".env.local", ".env.production",
	".git/", "node_modules/",
	"package-lock.json", "yarn.lock", "pnpm-lock.yaml",
}

// Decide implements spec.md §4.5.
func Decide(path, cwd string, level autonomy.Level) Verdict {
	expanded := expandTilde(path)

	if isProtected(expanded) {
		if level.Caps().AllowArbitrary {
			return Allow
		}
		return PromptProtected
	}

	within := isWithinProject(expanded, cwd)
	if level.Caps().AllowWritesInProject && within {
		return Allow
	}
	return Prompt
}

func isProtected(path string) bool {
	for _, name := range ProtectedNames {
		if strings.Contains(path, name) {
			return true
		}
	}
	return false
}

func isWithinProject(path, cwd string) bool {
	if cwd == "" {
		return false
	}
	absPath := path
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(cwd, absPath)
	}
	absPath = filepath.Clean(absPath)
	absCwd := filepath.Clean(cwd)
	return absPath == absCwd || strings.HasPrefix(absPath, absCwd+string(filepath.Separator))
}

func expandTilde(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
