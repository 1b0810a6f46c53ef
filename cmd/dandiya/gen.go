package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"dandiya/internal/buildpipeline"
	"dandiya/internal/diag"
	"dandiya/internal/diagfmt"
	"dandiya/internal/driver"
	"dandiya/internal/emit"
	"dandiya/internal/project"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags] [dir]",
	Short: "Generate bindings for every .dy file of a project",
	Long: `Gen compiles every .dy file below the sources directory in parallel and
writes one output per target language, mirroring the source layout.

Settings come from the nearest dandiya.toml above [dir]; flags override them.
Without a manifest the sources are read from [dir] and outputs are written
next to them unless --out is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntP("jobs", "j", 0, "max parallel jobs (0 = GOMAXPROCS)")
	genCmd.Flags().String("out", "", "output directory")
	genCmd.Flags().StringSlice("lang", nil, "target languages (c,rust)")
	genCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	genCmd.Flags().Bool("no-cache", false, "disable the on-disk cache")
	genCmd.Flags().Bool("no-forward", false, "do not generate unversioned wrappers for the latest function versions")
	genCmd.Flags().Bool("export", false, "mark C prototypes with "+emit.ExportMacro)
	genCmd.Flags().Bool("clear-cache", false, "drop every cached artifact before generating")
	genCmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json)")
	genCmd.Flags().String("path-mode", "auto", "diagnostic paths (auto|absolute|relative|basename)")
	genCmd.Flags().Bool("show-code", false, "append the diagnostic code to each message")
	genCmd.Flags().Int("max-diagnostics", 0, "stop collecting diagnostics after N (0 = unlimited)")
}

// diagOutput is how gen reports per-file diagnostics.
type diagOutput struct {
	format   string
	pathMode diagfmt.PathMode
	showCode bool
	max      int
}

func readDiagOutput(cmd *cobra.Command) (diagOutput, error) {
	var out diagOutput
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return out, err
	}
	if err := checkFormat(format, "pretty", "short", "json"); err != nil {
		return out, err
	}
	out.format = format
	mode, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return out, err
	}
	if out.pathMode, err = diagfmt.ParsePathMode(mode); err != nil {
		return out, errors.Wrap(err, "--path-mode")
	}
	out.showCode = flagBool(cmd, "show-code")
	if out.max, err = cmd.Flags().GetInt("max-diagnostics"); err != nil {
		return out, err
	}
	return out, nil
}

// write renders bag: pretty and short go to stderr, json to stdout.
func (o diagOutput) write(cmd *cobra.Command, bag *diag.Bag) error {
	stderr := cmd.ErrOrStderr()
	switch o.format {
	case "json":
		return diagfmt.JSON(cmd.OutOrStdout(), bag, diagfmt.JSONOpts{PathMode: o.pathMode})
	case "short":
		if bag.Len() == 0 {
			return nil
		}
		_, err := fmt.Fprintln(stderr, diag.FormatShortDiagnostics(bag.Items()))
		return err
	default:
		return diagfmt.Pretty(stderr, bag, diagfmt.PrettyOpts{
			Color:    useColor(cmd, stderr),
			PathMode: o.pathMode,
			ShowCode: o.showCode,
		})
	}
}

// genPlan is the resolved configuration of one gen invocation.
type genPlan struct {
	sources string
	out     string
	langs   []emit.Language
	opts    emit.Options
}

func resolveGenPlan(cmd *cobra.Command, startDir string) (genPlan, error) {
	plan := genPlan{sources: startDir, out: startDir, langs: emit.Languages, opts: emit.DefaultOptions()}

	manifest, err := project.Load(startDir)
	switch {
	case err == nil:
		plan.sources = manifest.SourcesDir()
		plan.out = manifest.OutDir()
		plan.langs = manifest.Languages()
		plan.opts = manifest.EmitOptions()
	case errors.Is(err, project.ErrNoManifest):
	default:
		return plan, err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		if plan.out, err = flags.GetString("out"); err != nil {
			return plan, err
		}
	}
	if flags.Changed("lang") {
		names, err := flags.GetStringSlice("lang")
		if err != nil {
			return plan, err
		}
		plan.langs = plan.langs[:0:0]
		for _, name := range names {
			lang, err := emit.ParseLanguage(name)
			if err != nil {
				return plan, errors.Wrap(err, "--lang")
			}
			plan.langs = append(plan.langs, lang)
		}
	}
	if flags.Changed("no-forward") {
		plan.opts.ForwardLatestVersionAPI = !flagBool(cmd, "no-forward")
	}
	if flags.Changed("export") {
		plan.opts.ExportSymbols = flagBool(cmd, "export")
	}
	return plan, nil
}

func runGen(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}
	plan, err := resolveGenPlan(cmd, startDir)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	diagOut, err := readDiagOutput(cmd)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !flagBool(cmd, "no-cache") || flagBool(cmd, "clear-cache") {
		if cache, err = driver.OpenDiskCache("dandiya"); err != nil {
			driver.Logger().Sugar().Warnf("cache disabled: %v", err)
			cache = nil
		}
	}
	if flagBool(cmd, "clear-cache") {
		if err := cache.DropAll(); err != nil {
			return errors.Wrap(err, "failed to clear cache")
		}
		driver.Logger().Debug("cache cleared")
	}
	if flagBool(cmd, "no-cache") {
		cache = nil
	}

	timer := newTimer(cmd)
	bag := diag.NewBag(diagOut.max)
	req := driver.GenerateRequest{
		Dir:       plan.sources,
		OutDir:    plan.out,
		Languages: plan.langs,
		Options:   plan.opts,
		Jobs:      jobs,
		Cache:     cache,
		Timer:     timer,
		Reporter:  &diag.BagReporter{Bag: bag},
	}

	quiet := flagBool(cmd, "quiet")
	var res *driver.GenerateResult
	if !quiet && shouldUseTUI(mode) {
		files, listErr := driver.ListSources(plan.sources)
		if listErr != nil {
			return listErr
		}
		title := fmt.Sprintf("generating %s", plan.sources)
		res, err = runGenWithUI(contextOf(cmd), title, buildpipeline.DisplayNames(relNames(plan.sources, files), ""), req)
	} else {
		res, err = driver.GenerateDir(contextOf(cmd), req)
	}
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	bag.Sort()
	if err := diagOut.write(cmd, bag); err != nil {
		return err
	}
	failed := res.Failed()
	for _, f := range failed {
		if _, ok := driver.AsDiagnostic(f.Err); !ok {
			reportError(cmd, f.Err)
		}
	}
	if !quiet && diagOut.format != "json" {
		printGenSummary(cmd.OutOrStdout(), res, plan.out)
	}
	if timer != nil {
		printStageTimings(stderr, res.Timings)
		printTimings(cmd, timer)
	}
	if len(failed) == 0 && !bag.HasErrors() {
		return nil
	}
	if summary := diagfmt.Summary(bag); summary != "" {
		fmt.Fprintf(stderr, "%s; %d of %d files failed\n", summary, len(failed), len(res.Files))
	} else {
		fmt.Fprintf(stderr, "%d of %d files failed\n", len(failed), len(res.Files))
	}
	return errors.Mark(errors.Newf("%d files failed", len(failed)), errReported)
}

func printGenSummary(out io.Writer, res *driver.GenerateResult, outDir string) {
	var outputs, cached int
	for _, f := range res.Files {
		if f.Err != nil {
			continue
		}
		outputs += len(f.Outputs)
		if f.Cached {
			cached++
		}
	}
	fmt.Fprintf(out, "generated %d %s from %d %s into %s",
		outputs, plural(outputs, "file"), len(res.Files), plural(len(res.Files), "source"), outDir)
	if cached > 0 {
		fmt.Fprintf(out, " (%d cached)", cached)
	}
	fmt.Fprintln(out)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func relNames(base string, files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(base, f)
		if err != nil {
			rel = f
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
