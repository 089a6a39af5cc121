// Package cli implements the nocap command-line interface.
//
// nocap wraps Poetry so that adding or updating dependencies does not leave
// upper-bound caps in pyproject.toml. The CLI is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
//   - add: poetry add, remove caps, relock
//   - fix: remove caps from the existing manifest, relock
//   - update: remove caps, poetry update, remove caps again, relock
//   - config: show the effective settings
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes every rewritten line. Status lines are written to stderr so
// that `nocap fix --dry-run` output on stdout can be redirected.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nocap/internal/config"
	"github.com/matzehuels/nocap/pkg/buildinfo"
	"github.com/matzehuels/nocap/pkg/pipeline"
	"github.com/matzehuels/nocap/pkg/poetry"
	"github.com/matzehuels/nocap/pkg/pyproject"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "nocap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	// Global flag values. Empty means "use Config".
	manifest string
	poetry   string

	// newPoetry builds the Poetry runner for a binary; tests replace it.
	newPoetry func(binary string) poetry.Runner
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		newPoetry: func(binary string) poetry.Runner {
			return &poetry.Exec{Binary: binary}
		},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Poetry add and update without upper bound caps",
		Long: `nocap runs Poetry and then rewrites the caret (^) constraints it writes to
pyproject.toml as unbounded minimums (>=), or as exact pins with --pin.

Only [tool.poetry*] sections are rewritten and the python constraint is
always left alone.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.manifest, "manifest", "m", "", "path to pyproject.toml (default \"pyproject.toml\")")
	root.PersistentFlags().StringVar(&c.poetry, "poetry", "", "poetry executable (default \"poetry\")")

	// Register all subcommands
	root.AddCommand(c.addCommand())
	root.AddCommand(c.fixCommand())
	root.AddCommand(c.updateCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and environment, then applies flags.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.manifest != "" {
		cfg.Manifest = c.manifest
	}
	if c.poetry != "" {
		cfg.Poetry = c.poetry
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "manifest", cfg.Manifest, "poetry", cfg.Poetry, "pin", cfg.Pin)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for the configured manifest.
func (c *CLI) newRunner(cmd *cobra.Command) *pipeline.Runner {
	r := pipeline.NewRunner(
		pyproject.NewManifest(c.Config.Manifest),
		c.newPoetry(c.Config.Poetry),
		c.Logger,
	)
	r.Stdout = cmd.OutOrStdout()
	return r
}

// pinFlag resolves --pin against the configured default.
func (c *CLI) pinFlag(cmd *cobra.Command, pin bool) bool {
	if cmd.Flags().Changed("pin") {
		return pin
	}
	return c.Config.Pin
}
