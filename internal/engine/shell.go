package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vrslev/pi-guard/internal/autonomy"
	"github.com/vrslev/pi-guard/internal/classify"
	"github.com/vrslev/pi-guard/internal/decisionlog"
	"github.com/vrslev/pi-guard/internal/schedule"
)

// chainChars are shellword's operator characters plus the backtick: the
// hardcoded shortcut list (spec.md §4.8 step 3) only applies to a bare
// command, never to one chained with another via these characters or
// carrying a `$(…)`/backtick command substitution.
const chainChars = "|&;`"

func containsChainCharacter(cmd string) bool {
	return strings.ContainsAny(cmd, chainChars) || strings.Contains(cmd, "$(")
}

func firstWord(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// EvaluateCommand implements the shell-command half of the Decision Engine
// (spec.md §4.8): hardcoded shortcut, classification, the dangerous-command
// session-memory gate, and the auto-allow ladder with escalation prompt.
func (e *Engine) EvaluateCommand(ctx context.Context, command string, now time.Time) Verdict {
	e.mu.Lock()
	defer e.mu.Unlock()

	trimmed := strings.TrimSpace(command)
	level := schedule.EffectiveLevel(e.rec.Level, e.window, now)

	if !containsChainCharacter(trimmed) && autonomy.Has(autonomy.ShortcutCommands, firstWord(trimmed)) {
		e.log("shell", trimmed, true, decisionlog.SourceShortcut, "always-allowed command")
		return allow("always-allowed command")
	}

	result := classify.Classify(trimmed)

	if result.Dangerous && level.Caps().BlockDeny {
		if e.mem.IsRememberedDeny(trimmed) {
			e.log("shell", trimmed, false, decisionlog.SourceDangerousPrompt, "previously blocked this session")
			return block("previously blocked this session")
		}
		if !e.hasUI() {
			e.log("shell", trimmed, false, decisionlog.SourceDangerousPrompt, "dangerous command, no UI available")
			return block("dangerous command requires confirmation, no UI available")
		}
		choice, ok := e.selectUI(ctx, "⚠ dangerous command: "+trimmed, []string{"Allow once", "Always block", "Block"})
		if !ok {
			e.log("shell", trimmed, false, decisionlog.SourceDangerousPrompt, "dismissed")
			return block("blocked (prompt dismissed)")
		}
		switch choice {
		case "Allow once":
			e.log("shell", trimmed, true, decisionlog.SourceDangerousPrompt, "allowed once")
			return allow("allowed once despite dangerous command")
		case "Always block":
			e.mem.RememberDeny(trimmed)
			e.log("shell", trimmed, false, decisionlog.SourceDangerousPrompt, "always block (session)")
			return block("blocked for the rest of this session")
		default:
			e.log("shell", trimmed, false, decisionlog.SourceDangerousPrompt, "blocked")
			return block("blocked by user")
		}
	}

	caps := level.Caps()
	switch {
	case caps.AllowArbitrary:
		e.log("shell", trimmed, true, decisionlog.SourceClassifier, "level grants arbitrary commands")
		return allow("level grants arbitrary commands")
	case caps.AllowDevOps && result.Level <= autonomy.Medium:
		e.log("shell", trimmed, true, decisionlog.SourceClassifier, "classified at or below medium")
		return allow("classified at or below medium")
	case caps.AllowReadOnly && result.Level <= autonomy.Minimal:
		e.log("shell", trimmed, true, decisionlog.SourceClassifier, "classified as minimal")
		return allow("classified as minimal")
	}

	if !e.hasUI() {
		e.log("shell", trimmed, false, decisionlog.SourceClassifier, "no UI available")
		return block("requires confirmation, no UI available")
	}

	options := []string{"Allow once"}
	escalateOption := ""
	if result.Level > level {
		escalateOption = fmt.Sprintf("Allow all (%s)", titleCase(result.Level.String()))
		options = append(options, escalateOption)
	}
	options = append(options, "Block")

	choice, ok := e.selectUI(ctx, trimmed, options)
	if !ok {
		e.log("shell", trimmed, false, decisionlog.SourceClassifier, "dismissed")
		return block("blocked (prompt dismissed)")
	}
	switch {
	case choice == "Allow once":
		e.log("shell", trimmed, true, decisionlog.SourceClassifier, "allowed once")
		return allow("allowed once")
	case escalateOption != "" && choice == escalateOption:
		e.escalate(ctx, result.Level)
		e.log("shell", trimmed, true, decisionlog.SourceClassifier, "escalated and allowed")
		return allow("escalated and allowed")
	default:
		e.log("shell", trimmed, false, decisionlog.SourceClassifier, "blocked")
		return block("blocked by user")
	}
}

func (e *Engine) hasUI() bool {
	return e.oracle != nil
}

func (e *Engine) selectUI(ctx context.Context, title string, options []string) (string, bool) {
	return e.oracle.Select(ctx, title, options)
}
