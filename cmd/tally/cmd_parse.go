package main

import (
	"fmt"

	"github.com/dhamidi/tally/grammar"
	"github.com/dhamidi/tally/source"
	"github.com/spf13/cobra"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Dump the raw result tree and the unparsed rest of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.Input
			if len(args) == 1 {
				path = args[0]
			}

			in, err := source.Open(path)
			if err != nil {
				return err
			}

			o := grammar.Evaluate(in.Data)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "matched: %t\n", o.Matched)
			fmt.Fprintf(out, "consumed: %d of %d bytes\n", o.Remaining.Begin, len(in.Data))
			fmt.Fprint(out, o.Value.Tree())
			if !o.Remaining.Empty() {
				pos := o.Remaining.Start()
				pos.Filename = in.Name
				fmt.Fprintf(out, "rest at %s: %q\n", pos, o.Remaining.Text())
			}

			if check {
				if err := grammar.CrossCheck(in.Data); err != nil {
					return err
				}
				fmt.Fprintln(out, "ebnf: ok")
			}

			if !o.Matched {
				return fmt.Errorf("parse %s: %w", in.Name, grammar.ErrShape)
			}
			if _, ok := o.Value.Numbers(); !ok {
				_, err := grammar.Parse(in.Data)
				return fmt.Errorf("parse %s: %w", in.Name, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "also match the input against the EBNF description and compare")

	return cmd
}
