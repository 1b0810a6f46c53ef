package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"dandiya/internal/diagfmt"
	"dandiya/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.dy",
	Short: "Parse a dandiya source file and print its declarations",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
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
	result, err := driver.Parse(args[0], timer)
	if err != nil {
		return err
	}

	if format == "json" {
		return diagfmt.FormatASTJSON(cmd.OutOrStdout(), result.Unit, result.File.Name())
	}
	return diagfmt.FormatASTPretty(cmd.OutOrStdout(), result.Unit, result.File.Name())
}
