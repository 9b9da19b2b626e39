package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/tally/grammar"
	"github.com/dhamidi/tally/report"
	"github.com/dhamidi/tally/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var top int
	var outputFormat string
	var colorMode string
	var strict bool

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Print the largest group total and the sum of the largest totals",
		Long: `Reads lines of decimal numbers separated into groups by blank lines,
sums every group and prints the largest total and the sum of the --top largest.
With no file, or with "-", the input configured in --config or stdin is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.cfg
			flags := cmd.Flags()
			if flags.Changed("top") {
				cfg.Top = top
			}
			if flags.Changed("format") {
				cfg.Format = outputFormat
			}
			if flags.Changed("color") {
				cfg.Color = colorMode
			}
			if flags.Changed("strict") {
				cfg.Strict = strict
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			path := cfg.Input
			if len(args) == 1 {
				path = args[0]
			}

			in, err := source.Open(path)
			if err != nil {
				return err
			}

			res, err := grammar.Parse(in.Data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", in.Name, err)
			}
			if cfg.Strict && !res.Complete() {
				return fmt.Errorf("parse %s: %s: unparsed input %q", in.Name, res.Trailing.Start(), preview(res.Trailing.Text()))
			}

			summary, err := report.Summarize(in.Name, res.Totals, cfg.Top)
			if err != nil {
				return fmt.Errorf("summarize %s: %w", in.Name, err)
			}
			summary.Trailing = res.Trailing.Len()

			out := cmd.OutOrStdout()
			enc, err := report.NewEncoder(cfg.Format, out, useColor(cfg.Color, out))
			if err != nil {
				return err
			}
			if err := enc.Encode(summary); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 3, "how many of the largest totals to add up")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, yaml)")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "color output (auto, always, never)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when input remains after the last group")

	return cmd
}

// useColor decides whether text output gets ANSI colors.
// auto enables them only for a terminal and honors NO_COLOR.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func preview(s string) string {
	const limit = 20
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
