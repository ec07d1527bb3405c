package storage

import "sync"

// Memory is a map-backed Adapter. It is the default when no database path is
// configured and the double every store test runs against.
type Memory struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemory returns an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{entries: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// SetMulti applies the whole batch under one lock acquisition.
func (m *Memory) SetMulti(entries map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, value := range entries {
		m.entries[key] = value
	}
}

// Corrupt overwrites a key with a payload that will not decode. Test hook.
func (m *Memory) Corrupt(key string) {
	m.Set(key, "{not json")
}
