package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/vrslev/pi-guard/internal/autonomy"
	"github.com/vrslev/pi-guard/internal/decisionlog"
	"github.com/vrslev/pi-guard/internal/pathpolicy"
	"github.com/vrslev/pi-guard/internal/schedule"
)

// EvaluateWrite implements the file write/edit half of the Decision Engine
// (spec.md §4.5, §4.8): protected paths escalate straight to High; writes
// outside the project, or below a level that grants in-project writes,
// fall onto the same allow-once/escalate/block prompt as shell commands.
func (e *Engine) EvaluateWrite(ctx context.Context, path string, now time.Time) Verdict {
	e.mu.Lock()
	defer e.mu.Unlock()

	level := schedule.EffectiveLevel(e.rec.Level, e.window, now)
	verdict := pathpolicy.Decide(path, e.cwd, level)

	switch verdict {
	case pathpolicy.Allow:
		e.log("write", path, true, decisionlog.SourcePathPolicy, "write allowed")
		return allow("write allowed")

	case pathpolicy.PromptProtected:
		if !e.hasUI() {
			e.log("write", path, false, decisionlog.SourcePathPolicy, "protected path, no UI available")
			return block("protected path requires confirmation, no UI available")
		}
		escalateOption := fmt.Sprintf("Allow all (%s)", titleCase(autonomy.High.String()))
		choice, ok := e.selectUI(ctx, "⚠ protected path: "+path, []string{"Allow once", escalateOption, "Block"})
		if !ok {
			e.log("write", path, false, decisionlog.SourcePathPolicy, "dismissed")
			return block("blocked (prompt dismissed)")
		}
		switch choice {
		case "Allow once":
			e.log("write", path, true, decisionlog.SourcePathPolicy, "allowed once (protected)")
			return allow("allowed once (protected path)")
		case escalateOption:
			e.escalate(ctx, autonomy.High)
			e.log("write", path, true, decisionlog.SourcePathPolicy, "escalated to high and allowed")
			return allow("escalated to high and allowed")
		default:
			e.log("write", path, false, decisionlog.SourcePathPolicy, "blocked")
			return block("blocked by user")
		}

	default: // pathpolicy.Prompt, pathpolicy.AllowWithProjectCheck
		if !e.hasUI() {
			e.log("write", path, false, decisionlog.SourcePathPolicy, "no UI available")
			return block("requires confirmation, no UI available")
		}
		target := minimalLevelGranting(func(c autonomy.Capabilities) bool { return c.AllowWritesInProject })
		options := []string{"Allow once"}
		escalateOption := ""
		if target > level {
			escalateOption = fmt.Sprintf("Allow all (%s)", titleCase(target.String()))
			options = append(options, escalateOption)
		}
		options = append(options, "Block")

		choice, ok := e.selectUI(ctx, path, options)
		if !ok {
			e.log("write", path, false, decisionlog.SourcePathPolicy, "dismissed")
			return block("blocked (prompt dismissed)")
		}
		switch {
		case choice == "Allow once":
			e.log("write", path, true, decisionlog.SourcePathPolicy, "allowed once")
			return allow("allowed once")
		case escalateOption != "" && choice == escalateOption:
			e.escalate(ctx, target)
			e.log("write", path, true, decisionlog.SourcePathPolicy, "escalated and allowed")
			return allow("escalated and allowed")
		default:
			e.log("write", path, false, decisionlog.SourcePathPolicy, "blocked")
			return block("blocked by user")
		}
	}
}
