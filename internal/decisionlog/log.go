// Package decisionlog implements the rotating, structured decision log
// that generalizes the teacher's single-file decisions.log append
// (plugin/src/log.go) into one JSON object per line, with rotation and a
// per-session correlation ID.
package decisionlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// maxInputLen truncates long tool inputs before logging, matching the
// teacher's 200-character cap.
const maxInputLen = 200

// Source identifies which layer of the decision engine produced a verdict.
type Source string

const (
	SourceShortcut        Source = "shortcut"
	SourceDangerousPrompt Source = "dangerous-prompt"
	SourceClassifier      Source = "classifier"
	SourcePathPolicy      Source = "path-policy"
	SourceWindowCeiling   Source = "window-ceiling"
)

// Entry is one decision record.
type Entry struct {
	Time          time.Time `json:"time"`
	CorrelationID string    `json:"correlationId"`
	ToolName      string    `json:"toolName"`
	ToolInput     string    `json:"toolInput"`
	WorkDir       string    `json:"workDir"`
	Allowed       bool      `json:"allowed"`
	Source        Source    `json:"source"`
	Reason        string    `json:"reason"`
}

// Logger writes decision entries to a rotating file.
type Logger struct {
	correlationID string
	writer        *lumberjack.Logger
}

// defaultLogPath mirrors the teacher's $HOME/.config/<app>/decisions.log
// layout, under this project's own directory name.
func defaultLogPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "pi-guard", "decisions.log")
}

// New opens the rotating decision log at its default path, tagging every
// entry written through the returned Logger with a fresh correlation ID
// for this process's lifetime. Rotation policy is grounded on
// alantheprice-ledit/pkg/utils/logger.go's lumberjack.Logger settings.
func New() *Logger {
	return NewAt(defaultLogPath())
}

// NewAt opens the rotating decision log at an explicit path (used by
// tests and by callers overriding the default location).
func NewAt(path string) *Logger {
	return &Logger{
		correlationID: uuid.NewString(),
		writer: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    15,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		},
	}
}

// Log appends one decision entry. Marshal and write failures are swallowed
// silently: decision logging is an observability side effect, never a
// source of a PersistFailure-style propagated error.
func (l *Logger) Log(toolName, toolInput, workDir string, allowed bool, source Source, reason string) {
	if l == nil {
		return
	}
	if len(toolInput) > maxInputLen {
		toolInput = toolInput[:maxInputLen] + "..."
	}
	entry := Entry{
		Time:          time.Now(),
		CorrelationID: l.correlationID,
		ToolName:      toolName,
		ToolInput:     toolInput,
		WorkDir:       workDir,
		Allowed:       allowed,
		Source:        source,
		Reason:        reason,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = l.writer.Write(data)
}

// Close flushes and closes the underlying rotating writer.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	return l.writer.Close()
}
