// Package appfs resolves the filesystem locations clipstack uses: the
// configuration directory, the config file and the history database.
package appfs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	ConfigDir      = ".config/clipstack"
	ConfigFileName = "config.yaml"
	DBFileName     = "clipstack.db"
)

// Paths holds the resolved application directories and files.
type Paths struct {
	root string
}

// New resolves paths under ~/.config/clipstack and ensures the directory
// exists.
func New() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewWithRoot(filepath.Join(homeDir, ConfigDir))
}

// NewWithRoot resolves paths under a custom root directory (for testing
// or explicit overrides) and ensures it exists.
func NewWithRoot(root string) (*Paths, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &Paths{root: root}, nil
}

// Root returns the configuration directory path.
func (p *Paths) Root() string {
	return p.root
}

// ConfigPath returns the config file path.
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.root, ConfigFileName)
}

// DBPath returns the history database path. A non-empty override wins:
// absolute overrides are used directly, relative ones resolve under the
// configuration directory.
func (p *Paths) DBPath(override string) string {
	switch {
	case override == "":
		return filepath.Join(p.root, DBFileName)
	case filepath.IsAbs(override):
		return override
	default:
		return filepath.Join(p.root, override)
	}
}
