package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/integer"
)

func parseOperands(args []string) ([]integer.Int, error) {
	xs := make([]integer.Int, 0, len(args))

	for _, arg := range args {
		x, err := integer.Parse(arg)
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	return xs, nil
}

// operandCmd returns a command whose positional arguments are all integers.
// Flag parsing is disabled so that negative operands are not mistaken for
// shorthand flags.
func operandCmd(use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, xs []integer.Int) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Args:               args,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseOperands(args)
			if err != nil {
				return err
			}

			return run(cmd, xs)
		},
	}
}

func foldCmd(use, short string, fn func(a, b integer.Int) integer.Int) *cobra.Command {
	return operandCmd(use+" A B [C...]", short, cobra.MinimumNArgs(2), func(cmd *cobra.Command, xs []integer.Int) error {
		r := xs[0]
		for _, x := range xs[1:] {
			r = fn(r, x)
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), r)

		return err
	})
}

func addCmd() *cobra.Command {
	return foldCmd("add", "Print the sum of the operands", integer.Int.Add)
}

func mulCmd() *cobra.Command {
	return foldCmd("mul", "Print the product of the operands", integer.Int.Mul)
}

func subCmd() *cobra.Command {
	return operandCmd("sub A B", "Print A-B", cobra.ExactArgs(2), func(cmd *cobra.Command, xs []integer.Int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), xs[0].Sub(xs[1]))

		return err
	})
}

func negCmd() *cobra.Command {
	return operandCmd("neg A", "Print -A", cobra.ExactArgs(1), func(cmd *cobra.Command, xs []integer.Int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), xs[0].Neg())

		return err
	})
}

func cmpCmd() *cobra.Command {
	return operandCmd("cmp A B", "Print -1, 0 or 1 as A is less than, equal to or greater than B", cobra.ExactArgs(2), func(cmd *cobra.Command, xs []integer.Int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), xs[0].Cmp(xs[1]))

		return err
	})
}
