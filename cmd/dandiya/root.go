package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"dandiya/internal/diagfmt"
	"dandiya/internal/driver"
	"dandiya/internal/emit"
	"dandiya/internal/observ"
)

func init() {
	rootCmd.Flags().StringP("emit", "e", "", "type of output to generate (ast|c|rust)")
}

// runRoot is the single-file shortcut: dandiya api.dy --emit c.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	what, err := cmd.Flags().GetString("emit")
	if err != nil {
		return err
	}
	if strings.TrimSpace(what) == "" {
		return errors.New("--emit is required (ast|c|rust)")
	}
	return emitFile(cmd, cmd.OutOrStdout(), args[0], what)
}

func emitFile(cmd *cobra.Command, out io.Writer, path, what string) error {
	if err := driver.CheckSourcePath(path); err != nil {
		return err
	}
	timer := newTimer(cmd)
	defer printTimings(cmd, timer)

	if strings.EqualFold(strings.TrimSpace(what), "ast") {
		res, err := driver.Parse(path, timer)
		if err != nil {
			return err
		}
		return diagfmt.FormatASTPretty(out, res.Unit, res.File.Name())
	}
	lang, err := emit.ParseLanguage(what)
	if err != nil {
		return errors.Wrap(err, "--emit")
	}
	text, err := driver.Compile(path, lang, emit.DefaultOptions(), timer)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

func newTimer(cmd *cobra.Command) *observ.Timer {
	if !flagBool(cmd, "timings") {
		return nil
	}
	return observ.NewTimer()
}

func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if timer == nil {
		return
	}
	_, _ = io.WriteString(cmd.ErrOrStderr(), timer.Summary())
}
