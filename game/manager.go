package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Manager is a registry of sessions for embedders hosting many games at
// once. The manager owns the only synchronization in this module: it
// guards the map, while each session stays single-owner.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session under a generated ID.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := NewSession(uuid.New().String())
	m.sessions[s.ID] = s
	return s
}

// CreateWithID registers a new session under the caller's ID.
func (m *Manager) CreateWithID(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; exists {
		return nil, fmt.Errorf("session %q already exists", id)
	}
	s := NewSession(id)
	m.sessions[id] = s
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.sessions[id]
	if !exists {
		return nil, fmt.Errorf("session %q not found", id)
	}
	return s, nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}
