package decisionlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogWritesOneJSONEntryPerLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decisions.log")
	logger := NewAt(path)
	defer logger.Close()

	logger.Log("Bash", "rm -rf build", "/workspace", true, SourceClassifier, "required level high")
	logger.Log("Bash", "git push", "/workspace", false, SourceDangerousPrompt, "blocked by user")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), data)
	}
	var entry Entry
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if entry.ToolName != "Bash" || entry.Source != SourceClassifier {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.CorrelationID == "" {
		t.Error("expected a non-empty correlation ID")
	}
}

func TestLogTruncatesLongInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decisions.log")
	logger := NewAt(path)
	defer logger.Close()

	long := strings.Repeat("x", 500)
	logger.Log("Bash", long, "/workspace", true, SourceClassifier, "")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entry Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatal(err)
	}
	if len(entry.ToolInput) != maxInputLen+len("...") {
		t.Errorf("got truncated length %d, want %d", len(entry.ToolInput), maxInputLen+len("..."))
	}
}

func TestLogNilLoggerIsNoop(t *testing.T) {
	var logger *Logger
	logger.Log("Bash", "ls", "/workspace", true, SourceShortcut, "")
	if err := logger.Close(); err != nil {
		t.Errorf("Close on nil logger should be a no-op, got %v", err)
	}
}
