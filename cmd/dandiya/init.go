package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"dandiya/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new dandiya project",
	Long: `Initialize a new dandiya project by creating a manifest (dandiya.toml) and
a sample definition (api/api.dy). If [path|name] is omitted, initializes the
current directory. A non-existing name creates the directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const sampleAPI = `// Sample API. Run "dandiya gen" to produce gen/api.h and gen/api.rs.

struct point {
    x: i32,
    y: i32,
}

opaque canvas;

const MAX_POINTS = 64;

fn(v1) draw(c: *canvas, p: *point, n: u32);
`

func runInit(cmd *cobra.Command, args []string) error {
	target, err := resolveInitTarget(args)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(err, "failed to stat %q", target)
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory %q", target)
		}
	} else if !st.IsDir() {
		return errors.Newf("%q is not a directory", target)
	}

	cfg := project.DefaultConfig(project.ProjectName(target))
	if _, err := project.Write(target, cfg); err != nil {
		return err
	}

	samplePath := filepath.Join(target, filepath.FromSlash(cfg.Gen.Sources), "api.dy")
	createdSample := false
	if _, err := os.Stat(samplePath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(samplePath), 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", filepath.Dir(samplePath))
		}
		if err := os.WriteFile(samplePath, []byte(sampleAPI), 0o600); err != nil {
			return errors.Wrapf(err, "failed to write %s", samplePath)
		}
		createdSample = true
	}

	if flagBool(cmd, "quiet") {
		return nil
	}
	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, target); err == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized dandiya project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	sampleRel := filepath.ToSlash(filepath.Join(cfg.Gen.Sources, "api.dy"))
	if createdSample {
		fmt.Fprintf(out, "  - %s\n", sampleRel)
	} else {
		fmt.Fprintf(out, "  - %s (existing)\n", sampleRel)
	}
	return nil
}

func resolveInitTarget(args []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}
	if len(args) == 0 || args[0] == "." {
		return wd, nil
	}
	if filepath.IsAbs(args[0]) {
		return args[0], nil
	}
	return filepath.Join(wd, args[0]), nil
}
