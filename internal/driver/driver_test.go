package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"dandiya/internal/diag"
	"dandiya/internal/emit"
	"dandiya/internal/observ"
	"dandiya/internal/project"
	"dandiya/internal/token"
)

func writeSource(t *testing.T, dir, rel, body string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckSourcePath(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"api.dy", true},
		{"dir/x.dy", true},
		{"api.txt", false},
		{"api.dyy", false},
		{"dy", false},
	}
	for _, tt := range tests {
		err := CheckSourcePath(tt.path)
		if (err == nil) != tt.ok {
			t.Errorf("CheckSourcePath(%q) = %v", tt.path, err)
		}
		if err != nil && !errors.Is(err, ErrNotIDL) {
			t.Errorf("CheckSourcePath(%q) is not ErrNotIDL", tt.path)
		}
		if err != nil && err.Error() != "expected a .dy file, found '"+tt.path+"'" {
			t.Errorf("message = %q", err.Error())
		}
	}
}

func TestTokenizeAndParse(t *testing.T) {
	path := writeSource(t, t.TempDir(), "api.dy", "// api\nfn(v1) f(a: u8);\n")
	timer := observ.NewTimer()

	tr, err := Tokenize(path, timer)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Tokens[len(tr.Tokens)-1].Kind; got != token.EOF {
		t.Fatalf("last token = %s", got)
	}
	if len(tr.Runs) != len(tr.Tokens) {
		t.Fatalf("runs and tokens differ: %d vs %d", len(tr.Runs), len(tr.Tokens))
	}

	pr, err := Parse(path, timer)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := pr.Unit.Lookup("f_v1"); !ok {
		t.Fatal("f_v1 not registered")
	}
	if len(timer.Report().Phases) != 4 {
		t.Fatalf("phases = %+v", timer.Report().Phases)
	}
}

func TestCompile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "api.dy", "fn(v1) f(a: u8) -> u64;\nfn(v2) f();\n")
	out, err := Compile(path, emit.Rust, emit.DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "pub fn f() {\n    unsafe { f_v2() }\n}\n") {
		t.Fatalf("missing forwarding wrapper:\n%s", out)
	}
}

func TestCompileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeSource(t, dir, "bad.dy", "struct A {}\nstruct A {}\n")

	_, err := Compile(bad, emit.C, emit.DefaultOptions(), nil)
	d, ok := AsDiagnostic(err)
	if !ok {
		t.Fatalf("want a diagnostic, got %v", err)
	}
	if d.Code != diag.SemaDuplicateSymbol || d.Pos.Line != 2 {
		t.Fatalf("diagnostic = %+v", d)
	}
	if CodeOf(err) != diag.SemaDuplicateSymbol {
		t.Fatalf("CodeOf = %v", CodeOf(err))
	}

	_, err = Compile(filepath.Join(dir, "missing.dy"), emit.C, emit.DefaultOptions(), nil)
	if !errors.Is(err, ErrLoad) || CodeOf(err) != diag.IOLoadFileError {
		t.Fatalf("want load error, got %v", err)
	}
	if _, ok := AsDiagnostic(err); ok {
		t.Fatal("load failure must not look like a diagnostic")
	}

	latin1 := writeSource(t, dir, "latin1.dy", "// caf\xe9\n")
	_, err = Compile(latin1, emit.C, emit.DefaultOptions(), nil)
	if !errors.Is(err, ErrNotUTF8) || !errors.Is(err, ErrLoad) {
		t.Fatalf("want UTF-8 error, got %v", err)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want diag.Code
	}{
		{nil, diag.UnknownCode},
		{errors.New("x"), diag.UnknownCode},
		{writeError(errors.New("disk full"), "out.h"), diag.IOWriteFileError},
		{errors.Wrap(project.ErrNoManifest, "gen"), diag.ProjInvalidManifest},
		{CheckSourcePath("a.txt"), diag.IOLoadFileError},
	}
	for _, tt := range tests {
		if got := CodeOf(tt.err); got != tt.want {
			t.Errorf("CodeOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
