package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"eca/internal/census"
	"eca/internal/rule"
)

// CensusOptions holds flags for the census command.
type CensusOptions struct {
	Rules   string
	Width   int
	Steps   int
	Workers int
}

// CensusResult is the JSON payload of the census command.
type CensusResult struct {
	Width   int                  `json:"width"`
	Steps   int                  `json:"steps"`
	Summary map[census.Class]int `json:"summary"`
	Results []census.Result      `json:"results"`
}

// NewCensusCommand creates the census command.
func NewCensusCommand(rootOpts *RootOptions) *cobra.Command {
	defaults := census.DefaultOptions()
	opts := &CensusOptions{Rules: "0-255", Width: defaults.Width, Steps: defaults.Steps, Workers: defaults.Workers}

	cmd := &cobra.Command{
		Use:   "census",
		Short: "Classify rules by running them from the single-cell seed",
		Long: `Classify rules by running them from the single-cell seed.

With --config, the options file's w and rule values stand in for --width
and --rules unless those flags are given.`,
		Example: `  eca census
  eca census --rules 30,90,110 --width 128 --steps 1024
  eca census --config scene.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCensus(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Rules, "rules", opts.Rules, "rules to evaluate, e.g. 0-255 or 30,90,110")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", opts.Width, "cells per generation")
	cmd.Flags().IntVar(&opts.Steps, "steps", opts.Steps, "generation budget per rule")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "parallel evaluations")

	return cmd
}

func runCensus(cmd *cobra.Command, rootOpts *RootOptions, opts *CensusOptions) error {
	out := newFormatter(cmd, rootOpts)
	logger := newLogger(cmd.ErrOrStderr(), rootOpts.Verbose)

	cfg, err := loadSimConfig(rootOpts)
	if err != nil {
		return err
	}
	if cfg.Has("w") && !cmd.Flags().Changed("width") {
		opts.Width = cfg.Width
	}
	if cfg.Has("rule") && !cmd.Flags().Changed("rules") {
		opts.Rules = cfg.Rule.String()
	}

	rules, err := ParseRuleSet(opts.Rules)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --rules", err)
	}

	start := time.Now()
	results, err := census.Run(cmd.Context(), rules, census.Options{
		Width:   opts.Width,
		Steps:   opts.Steps,
		Workers: opts.Workers,
	})
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return WrapExitError(ExitFailure, "census interrupted", err)
	case err != nil:
		return WrapExitError(ExitCommandError, "census", err)
	}
	logger.Debug("census finished", "rules", len(rules), "elapsed", time.Since(start).Round(time.Millisecond))

	payload := CensusResult{Width: opts.Width, Steps: opts.Steps, Summary: census.Summary(results), Results: results}
	return out.Success(payload, func(w io.Writer) error {
		return writeCensus(w, payload)
	})
}

func writeCensus(w io.Writer, res CensusResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tCLASS\tTRANSIENT\tPERIOD\tPEAK\tDENSITY\tMIRROR\tCOMPLEMENT")
	for _, r := range res.Results {
		transient, period := "-", "-"
		if r.Class != census.ClassComplex {
			transient = strconv.Itoa(r.Transient)
			period = strconv.Itoa(r.Period)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%.3f\t%d\t%d\n",
			r.Rule, r.Class, transient, period, r.PeakLive, r.Density, r.Mirror, r.Complement)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d uniform, %d periodic, %d complex (width %d, %d steps)\n",
		res.Summary[census.ClassUniform], res.Summary[census.ClassPeriodic], res.Summary[census.ClassComplex],
		res.Width, res.Steps)
	return err
}

// ParseRuleSet parses a comma separated list of rules and inclusive ranges.
// Duplicates are dropped; order follows first appearance.
func ParseRuleSet(list string) ([]rule.Rule, error) {
	var out []rule.Rule
	seen := map[rule.Rule]bool{}
	add := func(r rule.Rule) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			r, err := rule.ParseString(part)
			if err != nil {
				return nil, err
			}
			add(r)
			continue
		}
		from, err := rule.ParseString(lo)
		if err != nil {
			return nil, err
		}
		to, err := rule.ParseString(hi)
		if err != nil {
			return nil, err
		}
		if from > to {
			return nil, fmt.Errorf("range %q is descending: %w", part, rule.ErrInvalidArgument)
		}
		for n := int(from); n <= int(to); n++ {
			add(rule.Rule(n))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no rules in %q: %w", list, rule.ErrInvalidArgument)
	}
	return out, nil
}
