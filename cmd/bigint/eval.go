package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/integer"
)

func apply(a integer.Int, op string, b integer.Int) (string, error) {
	switch op {
	case "+":
		return a.Add(b).String(), nil
	case "-":
		return a.Sub(b).String(), nil
	case "*":
		return a.Mul(b).String(), nil
	case "<":
		return strconv.FormatBool(a.Less(b)), nil
	case "==":
		return strconv.FormatBool(a.Equal(b)), nil
	}

	return "", fmt.Errorf("unknown operator %q", op)
}

// eval reads "A OP B" triples from r until it is exhausted and writes one
// result per line to w. It returns the number of expressions evaluated.
func eval(r io.Reader, w io.Writer) (int, error) {
	// fmt.Fscan needs an io.RuneScanner to avoid losing a rune between calls.
	br := bufio.NewReader(r)
	count := 0

	for {
		var a, b integer.Int
		var op string

		n, err := fmt.Fscan(br, &a, &op, &b)
		if n == 0 && errors.Is(err, io.ErrUnexpectedEOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("expression %d: %w", count+1, err)
		}

		result, err := apply(a, op, b)
		if err != nil {
			return count, fmt.Errorf("expression %d: %w", count+1, err)
		}

		_, err = fmt.Fprintln(w, result)
		if err != nil {
			return count, err
		}

		count++
	}
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Evaluate whitespace separated A OP B expressions from stdin",
		Long: `eval reads expressions of the form "A OP B" from stdin and prints one
result per line. OP is one of + - * < ==.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := eval(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
			if err != nil {
				return err
			}

			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "evaluated %d expressions\n", count)
			}

			return nil
		},
	}
}
