package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/integer"
)

func factorial(n int64) integer.Int {
	f := integer.New(1)
	for k := int64(2); k <= n; k++ {
		f = f.Mul(integer.New(k))
	}

	return f
}

func factCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fact N",
		Short: "Print N factorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			if n < 0 {
				return fmt.Errorf("factorial of negative number %d", n)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), factorial(n))

			return err
		},
	}
}
