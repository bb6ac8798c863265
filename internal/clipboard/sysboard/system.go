// Package sysboard implements clipboard operations using platform-specific
// commands. On macOS it uses pbcopy/pbpaste, on Linux it uses xclip with
// xsel as a fallback.
package sysboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
)

// SystemClipboard implements clipboard.Clipboard using system commands
type SystemClipboard struct{}

// New creates a new SystemClipboard instance
func New() *SystemClipboard {
	return &SystemClipboard{}
}

// IsSupported returns true if clipboard operations are supported on this system
func (s *SystemClipboard) IsSupported() bool {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("pbcopy"); err != nil {
			return false
		}
		if _, err := exec.LookPath("pbpaste"); err != nil {
			return false
		}
		return true
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return true
		}
		return false
	default:
		return false
	}
}

// Read implements clipboard.Clipboard.Read for SystemClipboard
func (s *SystemClipboard) Read() ([]byte, error) {
	switch runtime.GOOS {
	case "darwin":
		return readWithCommand("pbpaste")
	case "linux":
		return readLinux()
	default:
		return nil, fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// Write implements clipboard.Clipboard.Write for SystemClipboard
func (s *SystemClipboard) Write(data []byte) error {
	switch runtime.GOOS {
	case "darwin":
		return writeWithCommand(data, "pbcopy")
	case "linux":
		return writeLinux(data)
	default:
		return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// readLinux reads from clipboard on Linux using xclip or xsel
func readLinux() ([]byte, error) {
	// Try xclip first
	if data, err := readWithCommand("xclip", "-selection", "clipboard", "-o"); err == nil {
		return data, nil
	}

	// Fall back to xsel
	data, err := readWithCommand("xsel", "--clipboard", "--output")
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard (tried xclip and xsel): %w", err)
	}

	return data, nil
}

// writeLinux writes to clipboard on Linux using xclip or xsel
func writeLinux(data []byte) error {
	// Try xclip first
	if err := writeWithCommand(data, "xclip", "-selection", "clipboard"); err == nil {
		return nil
	}

	// Fall back to xsel
	if err := writeWithCommand(data, "xsel", "--clipboard", "--input"); err != nil {
		return fmt.Errorf("failed to write clipboard (tried xclip and xsel): %w", err)
	}

	return nil
}

// readWithCommand executes a command and returns its output
func readWithCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// writeWithCommand executes a command with data as stdin
func writeWithCommand(data []byte, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewReader(data)

	return cmd.Run()
}
