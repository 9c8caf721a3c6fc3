package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errorColor = color.New(color.FgRed, color.Bold)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bigint",
		Short: "Arbitrary precision integer calculator",
		Long: `bigint adds, subtracts, multiplies and compares decimal integers of any size.

Negative operands are written as-is (bigint add -5 3). Global flags go
before the subcommand (bigint --color=off mul 2 3).`,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyColor(cmd)
		},
	}

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	rootCmd.AddCommand(
		addCmd(),
		subCmd(),
		mulCmd(),
		negCmd(),
		cmpCmd(),
		factCmd(),
		evalCmd(),
	)

	return rootCmd
}

// applyColor configures color output from the --color flag.
func applyColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}

	switch strings.ToLower(mode) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("invalid --color value %q (want auto|on|off)", mode)
	}

	return nil
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("error:"), err)
}

// main builds the command tree and executes it. Any error is printed to
// stderr and the process exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
