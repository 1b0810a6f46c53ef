package main

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"dandiya/internal/diagfmt"
	"dandiya/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.dy",
	Short: "Tokenize a dandiya source file",
	Long:  `Tokenize prints every token of a .dy file with its position and the trivia in front of it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return errors.Wrap(err, "failed to get format flag")
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	if err := driver.CheckSourcePath(args[0]); err != nil {
		return err
	}

	timer := newTimer(cmd)
	defer printTimings(cmd, timer)
	result, err := driver.Tokenize(args[0], timer)
	if err != nil {
		return err
	}

	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Runs, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Runs, result.Tokens)
}

// checkFormat accepts one of allowed, defaulting to pretty|json.
func checkFormat(format string, allowed ...string) error {
	if len(allowed) == 0 {
		allowed = []string{"pretty", "json"}
	}
	if slices.Contains(allowed, format) {
		return nil
	}
	return errors.Newf("unknown format %q (expected %s)", format, strings.Join(allowed, "|"))
}
