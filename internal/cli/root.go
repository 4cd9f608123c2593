package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"eca/internal/core"
	"eca/internal/sims/elementary"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // optional YAML options file
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the eca CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "eca",
		Short:         "Elementary cellular automata",
		Long:          "Render, inspect and classify Wolfram elementary cellular automaton rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "YAML options file")

	cmd.AddCommand(NewPrintCommand(opts))
	cmd.AddCommand(NewPreviewCommand(opts))
	cmd.AddCommand(NewCensusCommand(opts))

	return cmd
}

// newLogger returns a slog logger writing diagnostics to w when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// simConfig is the elementary config resolved from an options file. Keys
// records which options the file set explicitly.
type simConfig struct {
	elementary.Config
	Keys map[string]string
}

// Has reports whether the options file set key.
func (c simConfig) Has(key string) bool {
	_, ok := c.Keys[key]
	return ok
}

// loadSimConfig resolves the elementary config from the options file, if any.
func loadSimConfig(opts *RootOptions) (simConfig, error) {
	if opts.Config == "" {
		return simConfig{Config: elementary.DefaultConfig()}, nil
	}
	f, err := core.LoadOptions(opts.Config)
	if err != nil {
		return simConfig{}, WrapExitError(ExitCommandError, "load config", err)
	}
	if f.Sim != "" && f.Sim != "elementary" {
		return simConfig{}, NewExitError(ExitCommandError, fmt.Sprintf("config %s is for sim %q", opts.Config, f.Sim))
	}
	keys := f.StringMap()
	return simConfig{Config: elementary.FromMap(keys), Keys: keys}, nil
}
