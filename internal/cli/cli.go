// Package cli implements the bioplot command-line interface.
//
// The root command takes one configuration document, runs the plot
// generator and reports the outcome as a single JSON line: on stdout when
// the plot was written, on stderr when it was not. Everything else the
// process prints (logs, debug traces) goes to stderr ahead of the envelope.
//
// # Commands
//
//   - bioplot <config>: generate the plot described by the configuration
//   - types: list the supported plot types and their defaults
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context and read back with loggerFromContext.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bioplot/pkg/buildinfo"
	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/observability"
)

const appName = "bioplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// usageLine is printed on stderr when the argument count is wrong.
const usageLine = "Usage: " + appName + " [flags] <config>"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a CLI writing envelopes to stdout and logs to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName + " <config>",
		Short: "Bioplot renders publication-ready bioinformatics plots",
		Long: `Bioplot renders volcano, scatter, UMAP, heatmap, box and bar plots from a
configuration document and a parameters document. Each run writes a preview
PNG, a high-resolution PNG, an SVG and a PDF, then prints a JSON result line.`,
		Version:       buildinfo.Version,
		Args:          configArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			observability.SetPipelineHooks(newLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd.Context(), args[0])
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.typesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Run executes the command tree with args and returns the process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	root := c.RootCommand()
	root.SetArgs(args)
	return c.ExitCode(root.ExecuteContext(ctx))
}

// ExitCode maps the error returned by the root command to an exit code,
// printing it first unless an envelope already reported it.
func (c *CLI) ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		c.Logger.Warn("interrupted")
		return ExitInterrupted
	case stderrors.Is(err, errReported):
		return ExitFailure
	case errors.Is(err, errors.ErrCodeUsage):
		fmt.Fprintln(c.Stderr, usageLine)
		return ExitFailure
	}
	fmt.Fprintln(c.Stderr, errors.UserMessage(err))
	return ExitFailure
}

// configArg requires exactly one positional argument.
func configArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrCodeUsage, "expected 1 argument, got %d", len(args))
	}
	return nil
}
