package oracle

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

var (
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Interactive drives prompts on the controlling terminal via
// charmbracelet/huh, backed by term.IsTerminal/go-isatty to decide has_ui
// before ever attempting a prompt.
type Interactive struct{}

// IsTTY reports whether stdin and stdout are both attached to a terminal.
// When false, the Decision Engine must treat the session as having no UI
// (spec.md §4.8 step 5, §7 NoUI).
func IsTTY() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// New returns an Interactive oracle, or nil if the process has no usable
// TTY — a nil ChoiceOracle is HasUI's "no UI available" signal.
func New() ChoiceOracle {
	if !IsTTY() {
		return nil
	}
	return Interactive{}
}

func (Interactive) Select(ctx context.Context, title string, options []string) (string, bool) {
	var choice string
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huhOptions...).
				Value(&choice),
		),
	).WithContext(ctx)

	if err := form.Run(); err != nil {
		return "", false
	}
	if choice == "" {
		return "", false
	}
	return choice, true
}

func (Interactive) Notify(ctx context.Context, message string, severity Severity) {
	var rendered string
	switch severity {
	case Warning:
		rendered = warningStyle.Render("⚠ " + message)
	case Error:
		rendered = errorStyle.Render("✖ " + message)
	default:
		rendered = infoStyle.Render(message)
	}
	fmt.Fprintln(os.Stderr, rendered)
}
