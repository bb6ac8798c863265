// Package cli wires the command-line surface: parsing per args.go,
// constructing the browser over its store and clipboard, and dispatching
// subcommands.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/yiblet/clipstack/internal/appfs"
	"github.com/yiblet/clipstack/internal/browser"
	"github.com/yiblet/clipstack/internal/clipboard"
	"github.com/yiblet/clipstack/internal/clipboard/sysboard"
	"github.com/yiblet/clipstack/internal/config"
	"github.com/yiblet/clipstack/internal/store/dbstore"
	"github.com/yiblet/clipstack/internal/tui"
)

// CLI handles the command-line interface
type CLI struct {
	browser   *browser.Browser
	configMgr *config.Manager
	clipboard clipboard.Clipboard

	out io.Writer
	in  io.Reader
}

// New creates a new CLI instance
func New() (*CLI, error) {
	return NewWithArgs(nil)
}

// NewWithArgs creates a CLI instance, resolving the database path with
// precedence: flag > env var (via go-arg) > config file > default.
func NewWithArgs(args *Args) (*CLI, error) {
	paths, err := appfs.New()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}

	configMgr := config.NewManagerWithPath(paths.ConfigPath())
	cfg, err := configMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbOverride := cfg.DBLocation
	if args != nil && args.DBPath != nil {
		dbOverride = *args.DBPath
	}
	dbPath := paths.DBPath(dbOverride)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqliteStore, err := dbstore.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database store: %w", err)
	}

	clip := sysboard.New()

	b, err := browser.NewWithOptions(sqliteStore, clip, browser.Options{
		Limit:         cfg.HistoryLimit,
		PromoteCopies: cfg.PromoteCopies,
	})
	if err != nil {
		sqliteStore.Close()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}

	return &CLI{
		browser:   b,
		configMgr: configMgr,
		clipboard: clip,
		out:       os.Stdout,
		in:        os.Stdin,
	}, nil
}

// newWithComponents wires a CLI over pre-built components, for tests.
func newWithComponents(b *browser.Browser, configMgr *config.Manager, clip clipboard.Clipboard, out io.Writer, in io.Reader) *CLI {
	return &CLI{
		browser:   b,
		configMgr: configMgr,
		clipboard: clip,
		out:       out,
		in:        in,
	}
}

// Close releases the CLI's resources
func (c *CLI) Close() error {
	return c.browser.Close()
}

// Execute runs the CLI command based on parsed arguments
func (c *CLI) Execute(args *Args) error {
	if err := args.Validate(); err != nil {
		return err
	}

	switch {
	case args.Add != nil:
		return c.executeAdd(args.Add)
	case args.List != nil:
		return c.executeList(args.List)
	case args.Clear != nil:
		return c.executeClear(args.Clear)
	case args.Config != nil:
		return c.executeConfig(args.Config)
	default:
		return c.launchTUI()
	}
}

// executeAdd handles the 'clipstack add' command
func (c *CLI) executeAdd(cmd *AddCmd) error {
	switch {
	case cmd.Clipboard:
		data, err := c.clipboard.Read()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		if len(data) == 0 {
			return fmt.Errorf("clipboard is empty")
		}
		if err := c.browser.Add(string(data)); err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}
		fmt.Fprintf(c.out, "Added: %s\n", browser.GeneratePreview(string(data)))
		return nil

	case len(cmd.Files) > 0:
		// Add in reverse so the first named file ends up at the front.
		for i := len(cmd.Files) - 1; i >= 0; i-- {
			filename := cmd.Files[i]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("failed to read file %s: %w", filename, err)
			}
			if err := c.browser.Add(string(data)); err != nil {
				return fmt.Errorf("failed to add entry from %s: %w", filename, err)
			}
		}
		for _, filename := range cmd.Files {
			fmt.Fprintf(c.out, "Added from %s\n", filename)
		}
		return nil

	default:
		data, err := io.ReadAll(c.in)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(data) == 0 {
			return fmt.Errorf("no input provided")
		}
		if err := c.browser.Add(string(data)); err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}
		fmt.Fprintf(c.out, "Added: %s\n", browser.GeneratePreview(string(data)))
		return nil
	}
}

// executeList handles the 'clipstack list' command
func (c *CLI) executeList(cmd *ListCmd) error {
	m := c.browser.Model()

	if cmd.Row != nil {
		text, image, ok := m.Raw(*cmd.Row)
		if !ok {
			return fmt.Errorf("no entry at row %d", *cmd.Row)
		}
		if image != nil {
			_, err := c.out.Write(image)
			return err
		}
		_, err := io.WriteString(c.out, text)
		return err
	}

	if cmd.Match != nil {
		re, err := regexp.Compile(*cmd.Match)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
		m.SetSearch(re)
		defer m.SetSearch(nil)
	}

	printed := 0
	for row := 0; row < m.RowCount(); row++ {
		if m.IsFiltered(row) {
			continue
		}
		if cmd.Limit > 0 && printed >= cmd.Limit {
			break
		}
		fmt.Fprintf(c.out, "%d. %s\n", row, c.browser.Preview(row))
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(c.out, "History is empty.")
	}
	return nil
}

// executeClear handles the 'clipstack clear' command
func (c *CLI) executeClear(cmd *ClearCmd) error {
	count := c.browser.Model().RowCount()
	if count == 0 {
		fmt.Fprintln(c.out, "History is already empty.")
		return nil
	}

	if !cmd.Force {
		fmt.Fprintf(c.out, "This will delete %d entries from history. Continue? [y/N]: ", count)
		var response string
		fmt.Fscanln(c.in, &response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(c.out, "Aborted.")
			return nil
		}
	}

	if err := c.browser.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintf(c.out, "Deleted %d entries.\n", count)
	return nil
}

// executeConfig handles the 'clipstack config' command
func (c *CLI) executeConfig(cmd *ConfigCmd) error {
	switch {
	case cmd.Get != nil:
		value, err := c.configMgr.Get(cmd.Get.Key)
		if err != nil {
			return fmt.Errorf("failed to get config value: %w", err)
		}
		fmt.Fprintln(c.out, value)
		return nil
	case cmd.Set != nil:
		if err := c.configMgr.Update(cmd.Set.Key, cmd.Set.Value); err != nil {
			return fmt.Errorf("failed to set config value: %w", err)
		}
		fmt.Fprintf(c.out, "Set %s = %s\n", cmd.Set.Key, cmd.Set.Value)
		return nil
	case cmd.List != nil:
		values, err := c.configMgr.List()
		if err != nil {
			return fmt.Errorf("failed to list config values: %w", err)
		}
		fmt.Fprintln(c.out, "Current configuration:")
		for _, key := range config.Keys {
			fmt.Fprintf(c.out, "  %s = %s\n", key, values[key])
		}
		return nil
	default:
		return fmt.Errorf("no config subcommand specified")
	}
}

// launchTUI starts the interactive browser
func (c *CLI) launchTUI() error {
	if c.browser.Model().RowCount() == 0 {
		fmt.Fprintln(c.out, "History is empty!")
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "To add entries:")
		fmt.Fprintln(c.out, `  echo "Hello World" | clipstack add`)
		fmt.Fprintln(c.out, "  clipstack add filename.txt")
		fmt.Fprintln(c.out, "  clipstack add -c  # from clipboard")
		return nil
	}
	return tui.Run(c.browser)
}
