// Package clipboard abstracts the platform clipboard behind a small
// interface so the browser can inject and capture content without caring
// which mechanism backs it.
package clipboard

// Clipboard reads and writes the platform clipboard.
type Clipboard interface {
	// Read returns the current clipboard content.
	Read() ([]byte, error)

	// Write replaces the clipboard content.
	Write(data []byte) error

	// IsSupported reports whether clipboard operations work on this system.
	IsSupported() bool
}
