package clipboard

import "sync"

// Memory is an in-process clipboard. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	m.writes++
	return nil
}

// Writes reports how many times WriteText was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
