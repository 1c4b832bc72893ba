// Package session implements the per-session memory of commands the user
// chose to always block (C7). It holds no persistent state.
package session

import "sync"

// Memory is a mutex-guarded set of denied command strings, safe for
// concurrent use the way the engine's other shared state is (see
// daemon's single-goroutine-per-connection discipline in
// internal/gateservice, which is what actually serialises mutations here).
type Memory struct {
	mu     sync.Mutex
	denied map[string]struct{}
}

// New returns an empty session memory.
func New() *Memory {
	return &Memory{denied: make(map[string]struct{})}
}

// RememberDeny records that cmd should always be blocked for the rest of
// the session.
func (m *Memory) RememberDeny(cmd string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[cmd] = struct{}{}
}

// IsRememberedDeny reports whether cmd was previously marked always-block.
func (m *Memory) IsRememberedDeny(cmd string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.denied[cmd]
	return ok
}

// Clear empties the session memory.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied = make(map[string]struct{})
}
