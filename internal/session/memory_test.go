package session

import "testing"

func TestMemoryRememberAndClear(t *testing.T) {
	m := New()
	if m.IsRememberedDeny("rm -rf /") {
		t.Fatal("fresh memory should not remember anything")
	}
	m.RememberDeny("rm -rf /")
	if !m.IsRememberedDeny("rm -rf /") {
		t.Fatal("expected remembered deny")
	}
	m.Clear()
	if m.IsRememberedDeny("rm -rf /") {
		t.Fatal("clear should forget remembered denies")
	}
}
