package cli

import (
	"fmt"
)

// Args represents the top-level command structure
type Args struct {
	Add    *AddCmd    `arg:"subcommand:add" help:"Add content to the history"`
	List   *ListCmd   `arg:"subcommand:list" help:"Print history entries"`
	Clear  *ClearCmd  `arg:"subcommand:clear" help:"Delete all history entries"`
	Config *ConfigCmd `arg:"subcommand:config" help:"Manage configuration"`

	DBPath *string `arg:"--db-path,env:CLIPSTACK_DB_PATH" help:"Path to history database file"`
}

// AddCmd represents the 'clipstack add' command (inserts at the front)
type AddCmd struct {
	Files     []string `arg:"positional" help:"Files to read from (optional)"`
	Clipboard bool     `arg:"-c,--clipboard" help:"Read from clipboard"`
}

// ListCmd represents the 'clipstack list' command
type ListCmd struct {
	Limit int     `arg:"-n,--limit" default:"0" help:"Print at most this many entries (0=all)"`
	Row   *int    `arg:"positional" help:"Print only this row's full content"`
	Match *string `arg:"-m,--match" help:"Only print entries matching this pattern"`
}

// ClearCmd represents the 'clipstack clear' command
type ClearCmd struct {
	Force bool `arg:"-f,--force" help:"Skip confirmation prompt"`
}

// ConfigCmd represents the 'clipstack config' command
type ConfigCmd struct {
	Get  *ConfigGetCmd  `arg:"subcommand:get" help:"Get a configuration value"`
	Set  *ConfigSetCmd  `arg:"subcommand:set" help:"Set a configuration value"`
	List *ConfigListCmd `arg:"subcommand:list" help:"List all configuration values"`
}

// ConfigGetCmd represents the 'clipstack config get' command
type ConfigGetCmd struct {
	Key string `arg:"positional,required" help:"Configuration key"`
}

// ConfigSetCmd represents the 'clipstack config set' command
type ConfigSetCmd struct {
	Key   string `arg:"positional,required" help:"Configuration key"`
	Value string `arg:"positional,required" help:"Configuration value"`
}

// ConfigListCmd represents the 'clipstack config list' command
type ConfigListCmd struct{}

// Description returns the program description
func (Args) Description() string {
	return "clipstack - Searchable, reorderable clipboard history"
}

// Version returns the program version
func (Args) Version() string {
	return "clipstack 0.1.0"
}

// Epilogue returns additional help text
func (Args) Epilogue() string {
	return `Examples:
  # Add entries
  echo "hello" | clipstack add      # Add from stdin
  clipstack add notes.txt           # Add from file
  clipstack add -c                  # Add current clipboard content

  # Inspect history
  clipstack                         # Interactive browser
  clipstack list                    # Print previews, newest first
  clipstack list 0                  # Print the newest entry in full
  clipstack list -m 'err.*timeout'  # Only matching entries

  # Configuration
  clipstack config set history-limit 500
  clipstack config list`
}

// Validate performs validation on the parsed arguments
func (args *Args) Validate() error {
	if args.Add != nil {
		return args.Add.Validate()
	}
	if args.List != nil {
		return args.List.Validate()
	}
	return nil
}

// Validate validates add command arguments
func (a *AddCmd) Validate() error {
	if len(a.Files) > 0 && a.Clipboard {
		return fmt.Errorf("cannot specify both files and clipboard input")
	}
	return nil
}

// Validate validates list command arguments
func (l *ListCmd) Validate() error {
	if l.Row != nil && *l.Row < 0 {
		return fmt.Errorf("row must be non-negative")
	}
	if l.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	return nil
}
