package session

import (
	"sync"
	"time"
)

// Manager is an in-memory registry of sessions keyed by ID. Hosts
// that serve more than one seat pair keep one session per pair here;
// sessions never share engines.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create builds a new session and registers it.
func (m *Manager) Create() (*Session, error) {
	s, err := New()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

// Get looks up a session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// PruneFinished drops sessions whose game ended at least olderThan
// ago and returns how many were removed. Sessions restarted for a
// rematch no longer count as finished and are kept.
func (m *Manager) PruneFinished(olderThan time.Duration) int {
	cutoff := time.Now().Add(-olderThan)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.finishedBefore(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
