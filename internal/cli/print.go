package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"eca/internal/render"
	"eca/internal/rule"
)

// PrintOptions holds flags for the print command.
type PrintOptions struct {
	Width int
	Rows  int
	Rule  string
	Live  string
	Dead  string
	Color bool
	PNG   string
	Scale int
}

// PrintResult is the JSON payload of the print command.
type PrintResult struct {
	Rule  int      `json:"rule"`
	Width int      `json:"width"`
	Rows  []string `json:"rows,omitempty"`
	PNG   string   `json:"png,omitempty"`
}

// NewPrintCommand creates the print command.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PrintOptions{}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the history of a rule from the single-cell seed",
		Example: `  eca print --rule 30 --width 79 --rows 40
  eca print --rule 110 --width 400 --rows 400 --png rule110.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 79, "cells per generation")
	cmd.Flags().IntVarP(&opts.Rows, "rows", "n", 40, "generations to render")
	cmd.Flags().StringVarP(&opts.Rule, "rule", "r", "30", "rule number (decimal, 0b or 0x)")
	cmd.Flags().StringVar(&opts.Live, "live", "█", "glyph for live cells")
	cmd.Flags().StringVar(&opts.Dead, "dead", " ", "glyph for dead cells")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "colour live cells with ANSI escapes")
	cmd.Flags().StringVar(&opts.PNG, "png", "", "write a PNG to this path instead of text")
	cmd.Flags().IntVar(&opts.Scale, "scale", 1, "pixels per cell for --png")

	return cmd
}

func runPrint(cmd *cobra.Command, rootOpts *RootOptions, opts *PrintOptions) error {
	out := newFormatter(cmd, rootOpts)
	logger := newLogger(cmd.ErrOrStderr(), rootOpts.Verbose)

	cfg, err := loadSimConfig(rootOpts)
	if err != nil {
		return err
	}
	if rootOpts.Config != "" {
		if !cmd.Flags().Changed("width") {
			opts.Width = cfg.Width
		}
		if !cmd.Flags().Changed("rows") {
			opts.Rows = cfg.Height
		}
		if !cmd.Flags().Changed("rule") {
			opts.Rule = cfg.Rule.String()
		}
	}

	r, err := rule.ParseString(opts.Rule)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --rule", err)
	}
	if opts.Rows <= 0 {
		return NewExitError(ExitCommandError, "--rows must be positive")
	}
	engine, err := rule.NewEngine(opts.Width, int(r))
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --width", err)
	}

	logger.Debug("rendering", "rule", int(r), "width", opts.Width, "rows", opts.Rows)
	rows := engine.Render(opts.Rows)

	if opts.PNG != "" {
		if err := writePNG(opts.PNG, rows, opts.Scale); err != nil {
			return WrapExitError(ExitFailure, "write png", err)
		}
		logger.Debug("wrote png", "path", opts.PNG)
		return out.Success(PrintResult{Rule: int(r), Width: opts.Width, PNG: opts.PNG}, func(w io.Writer) error {
			_, err := io.WriteString(w, "wrote "+opts.PNG+"\n")
			return err
		})
	}

	result := PrintResult{Rule: int(r), Width: opts.Width, Rows: make([]string, len(rows))}
	for i, row := range rows {
		result.Rows[i] = bitString(row)
	}
	painter := &render.TextPainter{Live: opts.Live, Dead: opts.Dead, Color: opts.Color}
	return out.Success(result, func(w io.Writer) error {
		return painter.Paint(w, rows)
	})
}

func writePNG(path string, rows [][]uint8, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	cells, w, h := render.Flatten(rows)
	if err := render.WritePNG(f, cells, w, h, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func bitString(row []uint8) string {
	var b strings.Builder
	b.Grow(len(row))
	for _, c := range row {
		if c != 0 {
			b.WriteByte('1')
			continue
		}
		b.WriteByte('0')
	}
	return b.String()
}
