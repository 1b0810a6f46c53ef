package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dandiya/internal/diag"
	"dandiya/internal/diagfmt"
	"dandiya/internal/driver"
	"dandiya/internal/prof"
	"dandiya/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "dandiya [file.dy] --emit ast|c|rust",
	Short: "API generator keeping C and Rust bindings ABI stable across versions",
	Long: `dandiya reads versioned API definitions (.dy) and generates a C header
and Rust FFI bindings. Every function version keeps its own exported symbol,
so old binaries keep linking while new code calls the latest version.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupGlobals,
	RunE:              runRoot,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Bool("verbose", false, "log compiler activity to stderr")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to file")
	rootCmd.PersistentFlags().String("trace-out", "", "write a runtime trace to file")
}

// profiling is started by setupGlobals and stopped once the command returns.
var profiling *prof.Session

// main executes the root command and exits with status 1 on any failure.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	if stopErr := profiling.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	profiling = nil
	if err != nil {
		reportError(rootCmd, err)
		return 1
	}
	return 0
}

func setupGlobals(cmd *cobra.Command, _ []string) error {
	if _, err := readColorMode(cmd); err != nil {
		return err
	}
	if err := startProfiling(cmd); err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	if !verbose {
		driver.SetLogger(nil)
		return nil
	}
	logger, err := driver.NewVerboseLogger()
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	driver.SetLogger(logger)
	return nil
}

func startProfiling(cmd *cobra.Command) error {
	var opts prof.Options
	for name, dst := range map[string]*string{"cpuprofile": &opts.CPU, "memprofile": &opts.Mem, "trace-out": &opts.Trace} {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if !opts.Enabled() {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return err
	}
	profiling = session
	return nil
}

// reportError prints err to the command's stderr. Compilation failures use
// the positional diagnostic rendering.
func reportError(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	if d, ok := driver.AsDiagnostic(err); ok {
		_ = diagfmt.PrettyDiagnostic(out, d, diagfmt.PrettyOpts{Color: useColor(cmd, out)})
		return
	}
	if errors.Is(err, errReported) {
		return
	}
	if code := driver.CodeOf(err); code != diag.UnknownCode {
		fmt.Fprintf(out, "error[%s]: %v\n", code.ID(), err)
		return
	}
	fmt.Fprintf(out, "error: %v\n", err)
}

// errReported marks failures whose details were already printed.
var errReported = errors.New("failures already reported")

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(cmd *cobra.Command) (colorMode, error) {
	value, err := cmd.Flags().GetString("color")
	if err != nil {
		return "", err
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	default:
		return "", errors.Newf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// useColor resolves --color for w; auto means w is a terminal.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	mode, err := readColorMode(cmd)
	if err != nil {
		return false
	}
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	return err == nil && v
}
