package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"dandiya/internal/source"
)

func TestFileLine(t *testing.T) {
	f := source.NewFile("api.dy", []byte("struct A {}\n// c\nfn(v1) f();"))
	cases := map[uint32]string{
		0: "",
		1: "struct A {}",
		2: "// c",
		3: "fn(v1) f();",
		4: "",
	}
	for line, want := range cases {
		if got := f.Line(line); got != want {
			t.Errorf("Line(%d) = %q, want %q", line, got, want)
		}
	}
	if f.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", f.LineCount())
	}
}

func TestFileName(t *testing.T) {
	if got := source.NewFile("", nil).Name(); got != source.AnonymousName {
		t.Fatalf("anonymous name = %q", got)
	}
	if got := source.NewFile("dir/../api.dy", nil).Name(); got != "api.dy" {
		t.Fatalf("name = %q, want api.dy", got)
	}
}

func TestFileResolve(t *testing.T) {
	f := source.NewFile("x.dy", []byte("a\nbc"))
	if lc := f.Resolve(3); lc.Line != 2 || lc.Col != 2 {
		t.Fatalf("Resolve(3) = %+v", lc)
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.dy")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFopaque a;\r\nopaque b;\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := source.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(f.Content) != "opaque a;\nopaque b;\n" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 || f.Flags&source.FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b", f.Flags)
	}
	if f.Flags&source.FileVirtual != 0 {
		t.Fatalf("loaded file must not be virtual")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := source.Load(filepath.Join(t.TempDir(), "nope.dy")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
