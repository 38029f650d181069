// Package cli implements the mazegen command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Maze
// parameters come from an optional TOML file and are overridden by flags.
//
// # Commands
//
//   - generate:   carve a maze and print it, optionally with its longest
//     path or a distance map
//   - algorithms: list the available generators
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is reported by --version. It is set at build time via ldflags.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mazegen",
		Short:        "mazegen carves and analyzes grid mazes",
		Long:         `mazegen builds perfect mazes on rectangular grids with Binary Tree, Sidewinder, Aldous-Broder or Wilson's algorithm, and reports their longest paths.`,
		Version:      Version,
		SilenceUsage: true,
	}

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.algorithmsCommand())

	return root
}
