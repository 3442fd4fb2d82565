package persist

import (
	"sync"
)

type memoryRow struct {
	version int
	data    []byte
}

// Memory 内存版 BlobStore，供测试和无持久化场景使用
type Memory struct {
	mu   sync.Mutex
	rows map[string]memoryRow
}

func NewMemory() *Memory {
	return &Memory{rows: make(map[string]memoryRow)}
}

func (m *Memory) Load(name string) ([]byte, int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[name]
	if !ok {
		return nil, 0, false, nil
	}
	data := make([]byte, len(row.data))
	copy(data, row.data)
	return data, row.version, true, nil
}

func (m *Memory) Save(name string, version int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.rows[name] = memoryRow{version: version, data: stored}
	return nil
}
