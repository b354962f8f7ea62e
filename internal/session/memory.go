package session

import "sync"

// MemoryStore is an in-process ProgressStore. Used for SSH sessions
// running without a database and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// Load returns the stored record for a player, or nil if absent.
func (m *MemoryStore) Load(player string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[player]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Save stores the record, replacing any previous one for the player.
func (m *MemoryStore) Save(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.Player] = rec
	return nil
}
