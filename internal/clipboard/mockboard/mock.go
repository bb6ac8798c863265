// Package mockboard provides a mock clipboard implementation for testing.
package mockboard

// MockClipboard implements clipboard.Clipboard for testing
type MockClipboard struct {
	data   []byte
	writes int
}

// New creates a new MockClipboard instance
func New() *MockClipboard {
	return &MockClipboard{}
}

// Read implements clipboard.Clipboard.Read for MockClipboard
func (m *MockClipboard) Read() ([]byte, error) {
	return append([]byte(nil), m.data...), nil
}

// Write implements clipboard.Clipboard.Write for MockClipboard
func (m *MockClipboard) Write(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.writes++
	return nil
}

// IsSupported always returns true for the mock clipboard
func (m *MockClipboard) IsSupported() bool {
	return true
}

// Data returns the current clipboard data (for testing)
func (m *MockClipboard) Data() []byte {
	return m.data
}

// Writes returns how many times Write was called (for testing)
func (m *MockClipboard) Writes() int {
	return m.writes
}
