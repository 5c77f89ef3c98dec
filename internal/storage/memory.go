package storage

// Memory is a map-backed Adapter used by tests and available wherever a
// throwaway ledger is useful.
type Memory struct {
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	value, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.blobs[key] = stored
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.blobs, key)
	return nil
}
