package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"dandiya/internal/driver"
	"dandiya/internal/emit"
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags] file.dy",
	Short: "Generate a C header or Rust bindings for one file",
	Long: `Emit renders a .dy file for one target language. The include guard of a
C header is derived from the source name unless --guard is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringP("lang", "l", "c", "target language (c|rust)")
	emitCmd.Flags().Bool("no-forward", false, "do not generate unversioned wrappers for the latest function versions")
	emitCmd.Flags().Bool("export", false, "mark C prototypes with "+emit.ExportMacro)
	emitCmd.Flags().String("guard", "", "C include guard macro")
	emitCmd.Flags().Bool("no-trivia", false, "drop comments and blank lines of the source")
	emitCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func runEmit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := driver.CheckSourcePath(path); err != nil {
		return err
	}
	langName, err := cmd.Flags().GetString("lang")
	if err != nil {
		return err
	}
	lang, err := emit.ParseLanguage(langName)
	if err != nil {
		return errors.Wrap(err, "--lang")
	}
	opts, err := emitOptionsFromFlags(cmd, path)
	if err != nil {
		return err
	}

	timer := newTimer(cmd)
	defer printTimings(cmd, timer)
	text, err := driver.Compile(path, lang, opts, timer)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" || output == "-" {
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	return driver.WriteOutput(output, text)
}

func emitOptionsFromFlags(cmd *cobra.Command, path string) (emit.Options, error) {
	opts := emit.DefaultOptions()
	opts.ForwardLatestVersionAPI = !flagBool(cmd, "no-forward")
	opts.ExportSymbols = flagBool(cmd, "export")
	opts.PreserveTrivia = !flagBool(cmd, "no-trivia")
	guard, err := cmd.Flags().GetString("guard")
	if err != nil {
		return opts, err
	}
	if guard == "" {
		guard = emit.GuardName(path)
	}
	opts.HeaderGuard = guard
	return opts, nil
}
