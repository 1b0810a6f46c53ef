package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dandiya/internal/parser"
)

const astSample = "struct S { x: *u8 }\nfn(v1) f(a: u32) -> u64;\nfn(v2) f();\n"

func TestFormatASTPretty(t *testing.T) {
	unit, err := parser.ParseString(astSample, "api.dy")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, unit, "api.dy"); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Unit api.dy (3 decls)",
		"├─ [0] struct S @1:1",
		"│  └─ x: *u8",
		"├─ [1] fn f v1 @2:1",
		"│  ├─ Args",
		"│  │  └─ a: u32",
		"│  └─ Ret u64",
		"├─ [2] fn f v2 @3:1",
		"└─ Versions",
		"   └─ f: v1, v2 (latest v2)",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("tree mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatASTJSON(t *testing.T) {
	unit, err := parser.ParseString(astSample+"const N = 7;\n// tail\n", "api.dy")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, unit, "api.dy"); err != nil {
		t.Fatal(err)
	}
	var out UnitOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Source != "api.dy" || len(out.Decls) != 4 {
		t.Fatalf("unexpected unit: %+v", out)
	}
	fn := out.Decls[1]
	if fn.Symbol != "f_v1" || fn.Version != "v1" || fn.Ret != "u64" || len(fn.Args) != 1 {
		t.Fatalf("fn = %+v", fn)
	}
	if c := out.Decls[3]; c.Value == nil || *c.Value != 7 {
		t.Fatalf("const = %+v", c)
	}
	if len(out.Versions) != 1 || out.Versions[0].Latest != "v2" {
		t.Fatalf("versions = %+v", out.Versions)
	}
	if !strings.Contains(out.Trailing, "// tail") {
		t.Fatalf("trailing = %q", out.Trailing)
	}
}

func TestFormatASTNil(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, nil, ""); err == nil {
		t.Fatal("expected error for nil unit")
	}
}
