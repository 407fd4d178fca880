package devconsole

import (
	"sync"
)

// Settings is the boundary to an external configuration collaborator.
// Persistence format is out of this module's scope; consumers see only an
// opaque key-value store.
type Settings interface {
	// Get returns the value stored under key, or fallback when absent.
	Get(key string, fallback any) any
	// Set stores value under key.
	Set(key string, value any)
}

// MapSettings is an in-memory Settings implementation, safe for concurrent
// use. Suitable as a default collaborator and for tests.
type MapSettings struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMapSettings creates an empty in-memory settings store.
func NewMapSettings() *MapSettings {
	return &MapSettings{
		values: make(map[string]any),
	}
}

// Get implements Settings.
func (s *MapSettings) Get(key string, fallback any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.values[key]; ok {
		return value
	}

	return fallback
}

// Set implements Settings.
func (s *MapSettings) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}
