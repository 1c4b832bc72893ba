package oracle

import (
	"context"
	"testing"
)

func TestScriptedSelectDrainsQueue(t *testing.T) {
	s := &Scripted{Answers: []string{"Allow once", "Block"}}

	choice, ok := s.Select(context.Background(), "proceed?", []string{"Allow once", "Block"})
	if !ok || choice != "Allow once" {
		t.Fatalf("got (%q, %v), want (Allow once, true)", choice, ok)
	}

	choice, ok = s.Select(context.Background(), "proceed?", []string{"Allow once", "Block"})
	if !ok || choice != "Block" {
		t.Fatalf("got (%q, %v), want (Block, true)", choice, ok)
	}

	_, ok = s.Select(context.Background(), "proceed?", []string{"Allow once", "Block"})
	if ok {
		t.Fatal("expected ok=false once the queue is exhausted")
	}
}

func TestScriptedNotifyRecordsCalls(t *testing.T) {
	s := &Scripted{}
	s.Notify(context.Background(), "escalated to high", Warning)
	if len(s.Notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(s.Notifications))
	}
	if s.Notifications[0].Severity != Warning {
		t.Errorf("severity = %v, want Warning", s.Notifications[0].Severity)
	}
}

func TestHasUI(t *testing.T) {
	if HasUI(nil) {
		t.Error("HasUI(nil) should be false")
	}
	if !HasUI(&Scripted{}) {
		t.Error("HasUI(scripted) should be true")
	}
}
