// Package classify implements the command classifier (C3): it folds a
// tokenized shell command into a required autonomy level plus a dangerous
// flag, using the static tables in internal/autonomy.
package classify

import (
	"strings"

	"github.com/vrslev/pi-guard/internal/autonomy"
	"github.com/vrslev/pi-guard/internal/shellword"
)

// Classification is the verdict for one command: the minimum level at
// which it auto-allows, and whether it forces a prompt regardless of level
// (except Bypassed).
type Classification struct {
	Level     autonomy.Level
	Dangerous bool
}

const forkBombFingerprint = ":(){ :|:& };:"

// Classify implements spec.md §4.3. It is pure: same input always yields
// the same output, with no side effects.
func Classify(command string) Classification {
	if isForkBomb(command) {
		return Classification{Level: autonomy.High, Dangerous: true}
	}

	parse, err := shellword.Tokenize(command)
	if shellword.HasTricks(command, err) {
		return Classification{Level: autonomy.High}
	}

	floor := autonomy.Minimal
	if parse.WritesFiles {
		floor = autonomy.Low
	}

	result := Classification{Level: floor}
	for _, seg := range parse.Segments {
		lvl, dangerous := classifySegment(seg)
		result.Level = autonomy.Max(result.Level, lvl)
		result.Dangerous = result.Dangerous || dangerous
	}

	// Pipeline upgrade rule (spec.md §4.3 step 5): piping into a shell
	// interpreter is always High, regardless of what precedes it.
	for i, op := range parse.Operators {
		if op != shellword.OpPipe {
			continue
		}
		next := i + 1
		if next >= len(parse.Segments) {
			continue
		}
		if autonomy.Has(autonomy.PipelineUpgradeShells, parse.Segments[next].Program()) {
			result.Level = autonomy.High
		}
	}

	return result
}

// isForkBomb checks the classic `:(){ :|:& };:` fingerprint against the raw
// command text rather than tokenized segments: the syntax is a shell
// function definition whose body is itself full of segment-separator
// characters, so it never survives being split into segments intact.
func isForkBomb(raw string) bool {
	return strings.Contains(collapseWhitespace(raw), collapseWhitespace(forkBombFingerprint))
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func classifySegment(seg shellword.Segment) (autonomy.Level, bool) {
	cmd := seg.Program()
	args := seg.Args()

	if cmd == "" {
		return autonomy.High, false
	}
	if autonomy.Has(autonomy.ShellExecutionCommands, cmd) {
		return autonomy.High, false
	}
	if isDangerous(cmd, args) {
		return autonomy.High, true
	}
	if isMinimal(cmd, args) {
		return autonomy.Minimal, false
	}
	if isMedium(cmd, args) {
		return autonomy.Medium, false
	}
	if isHigh(cmd, args) {
		return autonomy.High, false
	}
	// Unknown command: conservative by design.
	return autonomy.High, false
}

func hasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" || a == "-V" {
			return true
		}
	}
	return false
}
