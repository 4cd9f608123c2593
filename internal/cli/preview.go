package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"eca/internal/rule"
)

// TransitionView is one neighbourhood of the preview.
type TransitionView struct {
	Neighbourhood string `json:"neighbourhood"`
	Next          uint8  `json:"next"`
}

// PreviewResult is the JSON payload of the preview command.
type PreviewResult struct {
	Rule        int              `json:"rule"`
	Binary      string           `json:"binary"`
	Mirror      int              `json:"mirror"`
	Complement  int              `json:"complement"`
	Transitions []TransitionView `json:"transitions"`
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [rule]",
		Short: "Show a rule's neighbourhood lookup table",
		Long: `Show a rule's neighbourhood lookup table.

Without an argument the rule comes from the --config options file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := previewRule(rootOpts, args)
			if err != nil {
				return err
			}
			return newFormatter(cmd, rootOpts).Success(buildPreview(r), func(w io.Writer) error {
				return writePreview(w, r)
			})
		},
	}
}

func previewRule(rootOpts *RootOptions, args []string) (rule.Rule, error) {
	cfg, err := loadSimConfig(rootOpts)
	if err != nil {
		return 0, err
	}
	if len(args) == 0 {
		if !cfg.Has("rule") {
			return 0, NewExitError(ExitCommandError, "rule required: pass it as an argument or set rule in --config")
		}
		return cfg.Rule, nil
	}
	r, err := rule.ParseString(args[0])
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid rule", err)
	}
	return r, nil
}

func buildPreview(r rule.Rule) PreviewResult {
	res := PreviewResult{
		Rule:       int(r),
		Binary:     r.Binary(),
		Mirror:     int(r.Mirror()),
		Complement: int(r.Complement()),
	}
	for _, t := range r.Table() {
		res.Transitions = append(res.Transitions, TransitionView{
			Neighbourhood: fmt.Sprintf("%d%d%d", t.Left, t.Center, t.Right),
			Next:          t.Next,
		})
	}
	return res
}

func writePreview(w io.Writer, r rule.Rule) error {
	var top, bottom []string
	for _, t := range r.Table() {
		top = append(top, fmt.Sprintf("%d%d%d", t.Left, t.Center, t.Right))
		bottom = append(bottom, fmt.Sprintf(" %d ", t.Next))
	}
	_, err := fmt.Fprintf(w, "rule %d (%s)\n%s\n%s\nmirror %d, complement %d\n",
		r, r.Binary(), strings.Join(top, " "), strings.Join(bottom, " "), r.Mirror(), r.Complement())
	return err
}
