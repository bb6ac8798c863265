package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the clipstack configuration
type Config struct {
	HistoryLimit  int    `yaml:"history_limit"`
	DBLocation    string `yaml:"db_location,omitempty"`
	PromoteCopies bool   `yaml:"promote_copies"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		HistoryLimit:  255,
		PromoteCopies: true,
	}
}

// Manager manages configuration persistence
type Manager struct {
	configPath string
}

// NewManager creates a configuration manager rooted at the default path
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "clipstack")
	configPath := filepath.Join(configDir, "config.yaml")

	return &Manager{
		configPath: configPath,
	}, nil
}

// NewManagerWithPath creates a config manager with custom config path
func NewManagerWithPath(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
	}
}

// Load reads the configuration from file, or returns default if file doesn't exist
func (cm *Manager) Load() (*Config, error) {
	if _, err := os.Stat(cm.configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cm.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to file
func (cm *Manager) Save(config *Config) error {
	if err := cm.validate(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Keys lists the configuration keys Update, Get and List understand, in
// display order.
var Keys = []string{"history-limit", "promote-copies", "db-location"}

// validate checks configuration bounds
func (cm *Manager) validate(config *Config) error {
	if config.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be greater than 0")
	}

	if config.HistoryLimit > 1000 {
		return fmt.Errorf("history_limit cannot exceed 1000 items")
	}

	return nil
}

// Path returns the path to the config file
func (cm *Manager) Path() string {
	return cm.configPath
}

// Update modifies a specific configuration value
func (cm *Manager) Update(key, value string) error {
	config, err := cm.Load()
	if err != nil {
		return err
	}

	switch key {
	case "history-limit":
		var historyLimit int
		if _, err := fmt.Sscanf(value, "%d", &historyLimit); err != nil {
			return fmt.Errorf("invalid integer value for history-limit: %s", value)
		}
		config.HistoryLimit = historyLimit
	case "promote-copies":
		switch value {
		case "true":
			config.PromoteCopies = true
		case "false":
			config.PromoteCopies = false
		default:
			return fmt.Errorf("invalid boolean value for promote-copies: %s (must be 'true' or 'false')", value)
		}
	case "db-location":
		config.DBLocation = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return cm.Save(config)
}

// Get returns the value for a specific configuration key
func (cm *Manager) Get(key string) (string, error) {
	config, err := cm.Load()
	if err != nil {
		return "", err
	}

	switch key {
	case "history-limit":
		return fmt.Sprintf("%d", config.HistoryLimit), nil
	case "promote-copies":
		return fmt.Sprintf("%t", config.PromoteCopies), nil
	case "db-location":
		if config.DBLocation == "" {
			return "[default]", nil
		}
		return config.DBLocation, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// List returns all configuration keys and values
func (cm *Manager) List() (map[string]string, error) {
	config, err := cm.Load()
	if err != nil {
		return nil, err
	}

	result := map[string]string{
		"history-limit":  fmt.Sprintf("%d", config.HistoryLimit),
		"promote-copies": fmt.Sprintf("%t", config.PromoteCopies),
		"db-location":    config.DBLocation,
	}

	if result["db-location"] == "" {
		result["db-location"] = "[default]"
	}

	return result, nil
}
