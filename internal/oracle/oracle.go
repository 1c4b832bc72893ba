// Package oracle provides the ChoiceOracle capability the Decision Engine
// (C8) uses for its UI suspension points: selecting among prompt options
// and surfacing notifications. Production code uses Interactive; tests use
// Scripted.
package oracle

import "context"

// Severity classifies a notification (spec.md §6 UI oracle contract).
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// ChoiceOracle is the UI capability injected into the Decision Engine.
// Select returns ok=false when the user dismisses the prompt without
// choosing — the engine treats that as Block (spec.md §5 cancellation).
type ChoiceOracle interface {
	Select(ctx context.Context, title string, options []string) (choice string, ok bool)
	Notify(ctx context.Context, message string, severity Severity)
}

// HasUI reports whether an oracle is usable as a real UI. A nil oracle
// means "no UI available" (spec.md §4.8 step 5, §7 NoUI).
func HasUI(o ChoiceOracle) bool {
	return o != nil
}
