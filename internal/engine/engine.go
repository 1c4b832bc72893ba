// Package engine implements the Decision Engine (C8): it orchestrates the
// classifier, level lattice, protected-path policy, settings store, and
// session memory, plus UI prompts, into allow/block verdicts.
package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vrslev/pi-guard/internal/autonomy"
	"github.com/vrslev/pi-guard/internal/decisionlog"
	"github.com/vrslev/pi-guard/internal/gitexclude"
	"github.com/vrslev/pi-guard/internal/oracle"
	"github.com/vrslev/pi-guard/internal/schedule"
	"github.com/vrslev/pi-guard/internal/session"
	"github.com/vrslev/pi-guard/internal/settings"
)

// Verdict is the Decision Engine's only output shape (spec.md §4.8): every
// error kind collapses into one of these two before it leaves the engine.
type Verdict struct {
	Allowed bool
	Reason  string
}

func allow(reason string) Verdict { return Verdict{Allowed: true, Reason: reason} }
func block(reason string) Verdict { return Verdict{Allowed: false, Reason: reason} }

// Engine owns the settings record and session memory exclusively; callers
// must serialise access the way internal/gateservice's single
// connection-at-a-time daemon does (spec.md §5).
type Engine struct {
	mu sync.Mutex

	cwd          string
	scope        settings.Scope
	settingsPath string
	rec          settings.Record

	mem    *session.Memory
	oracle oracle.ChoiceOracle
	window schedule.Window
	logger *decisionlog.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithWindow configures a cron-windowed autonomy ceiling (SPEC_FULL.md §4.9).
func WithWindow(w schedule.Window) Option {
	return func(e *Engine) { e.window = w }
}

// WithLogger attaches a decision logger (SPEC_FULL.md §4.10).
func WithLogger(l *decisionlog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New performs session_start (spec.md §4.8 state machine): it resolves
// scope, loads (or bootstraps) the settings record, and — if no settings
// exist yet and a UI is available — runs the first-run level prompt.
func New(cwd string, probe settings.ScopeProbe, ui oracle.ChoiceOracle, opts ...Option) (*Engine, error) {
	scope, path := settings.Resolve(cwd, probe)
	rec, found, err := settings.Load(path)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cwd:          cwd,
		scope:        scope,
		settingsPath: path,
		rec:          rec,
		mem:          session.New(),
		oracle:       ui,
	}
	for _, opt := range opts {
		opt(e)
	}

	if !found {
		e.bootstrap()
	}

	return e, nil
}

// bootstrap implements the Uninitialised/Loading/PromptInitial transitions.
func (e *Engine) bootstrap() {
	if e.scope == settings.Project {
		root := filepath.Dir(filepath.Dir(e.settingsPath))
		if err := gitexclude.EnsureExcluded(root); err != nil {
			e.notify(context.Background(), "could not update .git/info/exclude: "+err.Error(), oracle.Warning)
		}
	}

	if !oracle.HasUI(e.oracle) {
		// Loading -> Active(level=High): already the default from settings.Load.
		return
	}

	options := make([]string, 0, 5)
	for lvl := autonomy.Minimal; lvl <= autonomy.Bypassed; lvl++ {
		options = append(options, titleCase(lvl.String()))
	}
	choice, ok := e.oracle.Select(context.Background(), "Choose an autonomy level", options)
	if !ok {
		// PromptInitial -> Active(level=High), not persisted.
		return
	}
	lvl, err := autonomy.ParseLevel(choice)
	if err != nil {
		return
	}
	e.rec = e.rec.Set(lvl)
	e.persist()
}

// persist saves the current record, swallowing failures per the
// PersistFailure error kind (spec.md §7): in-memory state still updated,
// the failure only logged at warning level.
func (e *Engine) persist() {
	if err := e.rec.Save(e.settingsPath); err != nil {
		e.notify(context.Background(), "failed to persist settings: "+err.Error(), oracle.Warning)
	}
}

func (e *Engine) escalate(ctx context.Context, lvl autonomy.Level) {
	e.rec = e.rec.Escalate(lvl)
	e.persist()
	e.notify(ctx, fmt.Sprintf("autonomy escalated to %s (%s, persisted)", titleCase(lvl.String()), e.scope), oracle.Info)
}

func (e *Engine) notify(ctx context.Context, message string, severity oracle.Severity) {
	if !oracle.HasUI(e.oracle) {
		return
	}
	e.oracle.Notify(ctx, message, severity)
}

func (e *Engine) log(toolName, input string, allowed bool, source decisionlog.Source, reason string) {
	if e.logger == nil {
		return
	}
	e.logger.Log(toolName, input, e.cwd, allowed, source, reason)
}

// Level returns the engine's current effective autonomy level, ignoring
// any schedule window (use EvaluateCommand/EvaluateWrite for the
// window-capped effective level used in a decision).
func (e *Engine) Level() autonomy.Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec.Level
}

// SetLevel persists an explicit level, bypassing the auto-allow ladder
// entirely. (The `pi-guard level set` CLI command does the same on the
// settings file directly, without an Engine.)
func (e *Engine) SetLevel(lvl autonomy.Level) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec = e.rec.Set(lvl)
	e.persist()
}

// Scope reports which settings scope backs this engine.
func (e *Engine) Scope() settings.Scope { return e.scope }

// SettingsPath returns the settings file backing this engine, for a
// watcher to subscribe to (SPEC_FULL.md §4.11).
func (e *Engine) SettingsPath() string { return e.settingsPath }

// ReloadSettings re-reads the settings file from disk and swaps it in,
// under the same mutex that serializes every decision — this is the
// "atomic swap, never interleaves with an in-flight decision" guarantee
// from SPEC_FULL.md §5, implemented with the mutex the engine already
// holds rather than a separate atomic pointer. A read failure (e.g. a
// partial write observed mid-save) is logged and the previous in-memory
// record is kept.
func (e *Engine) ReloadSettings() {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, _, err := settings.Load(e.settingsPath)
	if err != nil {
		e.notify(context.Background(), "settings reload failed, keeping previous record: "+err.Error(), oracle.Warning)
		return
	}
	e.rec = rec
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// minimalLevelGranting returns the lowest level whose capabilities satisfy
// pred, or Bypassed if none below it do.
func minimalLevelGranting(pred func(autonomy.Capabilities) bool) autonomy.Level {
	for lvl := autonomy.Minimal; lvl <= autonomy.Bypassed; lvl++ {
		if pred(lvl.Caps()) {
			return lvl
		}
	}
	return autonomy.Bypassed
}
