// SPDX-License-Identifier: MIT
//
// Package cli implements the railnet command-line interface: four
// independent stage commands (build-network, merge, snap, route), each
// reading its input file(s), running one pipeline stage, and writing
// its output artifact (spec.md §6). Every command supports --verbose
// for debug-level logging via charmbracelet/log, grounded on
// matzehuels-stacktower/internal/cli's CLI-struct pattern.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
)

// Log levels exported for main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

const appName = "railnet"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a logger writing to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the root cobra command with every subcommand
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "railnet builds and queries a historical railway network graph",
		Long:         `railnet is a four-stage batch pipeline: build-network assembles a graph from source polylines, merge stitches in additional operator datasets, snap maps settlements onto the graph, and route computes shortest-path distances between settlement pairs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.buildNetworkCommand())
	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.routeCommand())

	return root
}

// defaultProjection returns the CLI's concrete Forward/Inverse
// collaborator (a spherical Lambert Conformal Conic centered on
// Saskatchewan) that every stage command resolves its config.Config
// around — the pipeline itself never constructs one (spec.md §1).
func defaultProjection() geo.Projection {
	p := newSKLambertConformalConic()
	return geo.Projection{Forward: p.forward, Inverse: p.inverse}
}

// baseConfigOptions are the config.Option values every stage command
// applies before its own flag-derived overrides, so every stage shares
// one projection and one set of tolerance defaults unless a flag says
// otherwise.
func baseConfigOptions() []config.Option {
	return []config.Option{config.WithProjection(defaultProjection())}
}
