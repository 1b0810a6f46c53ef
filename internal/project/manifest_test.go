package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"dandiya/internal/emit"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "mylib"

[gen]
sources = "idl"
out = "out/gen"
languages = ["rust", "c", "rs"]

[emit]
forward_latest = false
export_symbols = true
`)
	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Config.Package.Name != "mylib" {
		t.Fatalf("name = %q", m.Config.Package.Name)
	}
	if got := m.SourcesDir(); got != filepath.Join(m.Root, "idl") {
		t.Fatalf("sources = %q", got)
	}
	if got := m.OutDir(); got != filepath.Join(m.Root, "out", "gen") {
		t.Fatalf("out = %q", got)
	}
	langs := m.Languages()
	if len(langs) != 2 || langs[0] != emit.Rust || langs[1] != emit.C {
		t.Fatalf("languages = %v", langs)
	}
	opts := m.EmitOptions()
	if opts.ForwardLatestVersionAPI || !opts.ExportSymbols {
		t.Fatalf("emit options = %+v", opts)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"x\"\n")
	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Config.Emit.ForwardLatest {
		t.Fatal("forward_latest should default to true")
	}
	if got := m.Languages(); len(got) != 2 {
		t.Fatalf("languages = %v", got)
	}
	if got := m.SourcesDir(); got != filepath.Join(m.Root, "api") {
		t.Fatalf("sources = %q", got)
	}
}

func TestLoadFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"x\"\n")
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	m, err := Load(sub)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(dir)
	if m.Root != want {
		t.Fatalf("root = %q, want %q", m.Root, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no package", "[gen]\nout = \"x\"\n", "missing [package]"},
		{"no name", "[package]\n", "missing [package].name"},
		{"blank name", "[package]\nname = \"  \"\n", "missing [package].name"},
		{"bad toml", "[package\n", "failed to parse TOML"},
		{"bad language", "[package]\nname = \"x\"\n[gen]\nlanguages = [\"go\"]\n", "unknown language"},
		{"empty languages", "[package]\nname = \"x\"\n[gen]\nlanguages = []\n", "at least one language"},
		{"unknown key", "[package]\nname = \"x\"\nversion = 3\n", "unknown key package.version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeManifest(t, dir, tt.body)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidManifest) {
				t.Fatalf("error %v is not marked invalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNoManifest) {
		t.Fatalf("want ErrNoManifest, got %v", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, DefaultConfig(ProjectName(dir)))
	if err != nil {
		t.Fatal(err)
	}
	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("written manifest does not load: %v", err)
	}
	if m.Config.Package.Name != filepath.Base(dir) {
		t.Fatalf("name = %q", m.Config.Package.Name)
	}
	if _, err := Write(dir, DefaultConfig("again")); err == nil {
		t.Fatal("second Write should refuse to overwrite")
	}
}

func TestCombine(t *testing.T) {
	a, b := StringDigest("a"), StringDigest("b")
	if Combine(a, b) == Combine(b, a) {
		t.Fatal("Combine must depend on order")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Fatal("Combine must be deterministic")
	}
	if Combine(a) == a {
		t.Fatal("Combine must rehash")
	}
}
