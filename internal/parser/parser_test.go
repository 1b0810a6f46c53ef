package parser_test

import (
	"testing"

	"dandiya/internal/ast"
	"dandiya/internal/diag"
)

func TestParseAccepts(t *testing.T) {
	cases := map[string]string{
		"one fn": "fn (v1) _blah67 ( ) ; ",
		"two fns": `
      fn (v1) _blah67 ( ) ;
      fn (v2) _blah67 ( ) ;
      fn (v234) _foo23_gh ( ) ;
    `,
		"fn with args": `
      fn (v1) _blah67 ( blah: u64 ) ;
      fn (v2) _blah67 ( gh: u32 ) ;
      fn (v234) _foo23_gh ( ab :  i8 , xy : i16) ;
    `,
		"fn with args and ret": `
      fn (v1) _blah67 ( blah: u64 ) -> u8;
      fn (v2) _blah67 ( gh: u32 ) -> u32;
      fn (v234) _foo23_gh ( ab :  i8 , xy : i16)->i64;
    `,
		"fn with pointers": `
      fn (v1) _blah67 ( blah: u64 ) -> *u8;
      fn (v2) _blah67 ( gh: u32 ) -> u32;
      fn (v234) _foo23_gh ( ab :  i8 , xy : * i16)->*i64;
    `,
		"empty struct": "struct A {}",
		"struct": `
      struct Foobar {
        foo: u8,
        bar: i32,
        baz: u16,
      }
     `,
		"struct with pointer": `
      struct Foobar {
        foo: u8,
        bar: *i32,
        baz: u16,
      }
     `,
		"struct with array": `
      struct Foobar {
        foo: u8,
        bar: i32,
        baz: u16,
        arr: [u64; 42],
      }
     `,
		"pointer return":     "fn(v1) foo() -> *u64;",
		"array of pointers":  "struct S { baz: [**u8; 8] }",
		"opaque and const":   "opaque handle; const MAX = 18446744073709551615;",
		"forward reference":  "struct A { b: *B } struct B { a: *A }",
		"unknown reference":  "fn(v1) f(x: *Nowhere);",
		"trailing comma arg": "fn(v1) f(a: u8,);",
		"comments only":      "// nothing here\n/* at all */\n",
		"empty":              "",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			mustParse(t, src)
		})
	}
}

func TestParseRejectsInvalidTypes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"complex field", `
      struct Baz {
        ptr: *u8,
      }
      struct Foobar {
        foo: u8,
        arr: [u64; 42],
        complex: **[*[*Baz; 2]; 42],
      }
     `, diag.SynInvalidType},
		{"pointer to array", "struct S { a: *[u8; 2] }", diag.SynInvalidType},
		{"nested array", "struct S { a: [[u8; 2]; 2] }", diag.SynInvalidType},
		{"array of pointer to array", "fn(v1) f(a: [*[u8; 2]; 2]);", diag.SynInvalidType},
		{"array return", "fn(v1) foo() -> [u64; 67];", diag.SynInvalidReturn},
		{"pointer to array return", "fn(v1) foo() -> *[u64; 67];", diag.SynInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mustFail(t, tc.src, tc.code)
		})
	}
}

func TestParseDuplicateSymbols(t *testing.T) {
	de := mustFail(t, "struct A {} struct A {}", diag.SemaDuplicateSymbol)
	if de.Diagnostic.Message != "duplicate symbol 'A'" {
		t.Fatalf("message = %q", de.Diagnostic.Message)
	}
	mustFail(t, "opaque h; const h = 1;", diag.SemaDuplicateSymbol)
	mustFail(t, "const f_v1 = 1; fn(v1) f();", diag.SemaDuplicateSymbol)
}

func TestParseDuplicateVersion(t *testing.T) {
	de := mustFail(t, "fn(v1) f();\nfn(v1) f(a: u8) -> u8;", diag.SemaDuplicateVersion)
	if de.Diagnostic.Message != "duplicate version v1 of 'f'" {
		t.Fatalf("message = %q", de.Diagnostic.Message)
	}
	if de.Diagnostic.Pos.Line != 2 || de.Diagnostic.Pos.Col != 8 {
		t.Fatalf("pos = %d:%d", de.Diagnostic.Pos.Line, de.Diagnostic.Pos.Col)
	}
	mustFail(t, "fn(v1) f(); fn(v01) f();", diag.SemaDuplicateVersion)
}

func TestParseVersionsTrackLatest(t *testing.T) {
	u := mustParse(t, "fn(v2) do_thing(); fn(v1) do_thing(a: u8); fn(v10) other();")
	latest, ok := u.LatestVersion("do_thing")
	if !ok || latest != 2 {
		t.Fatalf("latest do_thing = %v, %v", latest, ok)
	}
	latest, ok = u.LatestVersion("other")
	if !ok || latest != 10 {
		t.Fatalf("latest other = %v, %v", latest, ok)
	}
	if _, ok := u.Lookup("do_thing_v1"); !ok {
		t.Fatalf("do_thing_v1 missing")
	}
}

func TestParseBadVersion(t *testing.T) {
	for _, src := range []string{"fn(version1) f();", "fn(v) f();", "fn(v1x) f();", "fn(v18446744073709551616) f();"} {
		mustFail(t, src, diag.SynBadVersion)
	}
	mustFail(t, "fn(1) f();", diag.SynUnexpectedToken)
}

func TestParseUnexpectedToken(t *testing.T) {
	cases := []struct {
		src  string
		msg  string
		line uint32
		col  uint32
	}{
		{"opaque a", "expected ';', found end of file", 1, 9},
		{"struct S { a: u8 b: u8 }", "expected ',' or '}', found identifier 'b'", 1, 18},
		{"enum X;", "expected 'fn', 'struct', 'opaque' or 'const', found identifier 'enum'", 1, 1},
		{"fn(1) f();", "expected version identifier, found integer 1", 1, 4},
		{"const X = y;", "expected unsigned integer, found identifier 'y'", 1, 11},
		{"struct S { a: ; }", "expected type, found ';'", 1, 15},
		{"fn(v1) f()\n  -> u8", "expected ';', found end of file", 2, 8},
		{"struct S { a: [u8 2] }", "expected ';', found integer 2", 1, 19},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			de := mustFail(t, tc.src, diag.SynUnexpectedToken)
			d := de.Diagnostic
			if d.Message != tc.msg || d.Pos.Line != tc.line || d.Pos.Col != tc.col {
				t.Fatalf("got %d:%d %q, want %d:%d %q", d.Pos.Line, d.Pos.Col, d.Message, tc.line, tc.col, tc.msg)
			}
		})
	}
}

func TestLexerErrorsPropagate(t *testing.T) {
	mustFail(t, "opaque a; $", diag.LexInvalidChar)
	mustFail(t, "opaque a; /* open", diag.LexUnterminatedBlockComment)
	mustFail(t, "const A = 99999999999999999999;", diag.LexNumberOverflow)
	mustFail(t, "fn(v1) f() - u8;", diag.LexBadArrow)
}

func TestParseShapes(t *testing.T) {
	u := mustParse(t, "fn(v1) my_func(a: u8, b: u16) -> u64;\nstruct foo { a: *u64, b: [u16; 4], c: [**u8; 8] }\nopaque mytype;\nconst LIMIT = 42;")
	decls := u.Decls()
	if len(decls) != 4 {
		t.Fatalf("got %d decls", len(decls))
	}

	fn, ok := decls[0].(*ast.FnDecl)
	if !ok || fn.Name != "my_func" || fn.Version != 1 || len(fn.Args) != 2 {
		t.Fatalf("fn = %+v", decls[0])
	}
	if fn.Args[1].Name != "b" || fn.Args[1].Type.String() != "u16" || fn.Ret.String() != "u64" {
		t.Fatalf("fn signature = %+v", fn)
	}

	st, ok := decls[1].(*ast.StructDecl)
	if !ok || len(st.Fields) != 3 {
		t.Fatalf("struct = %+v", decls[1])
	}
	wantTypes := []string{"*u64", "[u16; 4]", "[**u8; 8]"}
	for i, want := range wantTypes {
		if got := st.Fields[i].Type.String(); got != want {
			t.Errorf("field %d type = %q, want %q", i, got, want)
		}
	}
	if st.Position().Line != 2 || st.Position().Col != 1 {
		t.Fatalf("struct pos = %+v", st.Position())
	}

	if op, ok := decls[2].(*ast.OpaqueDecl); !ok || op.Name != "mytype" {
		t.Fatalf("opaque = %+v", decls[2])
	}
	if c, ok := decls[3].(*ast.ConstDecl); !ok || c.Name != "LIMIT" || c.Value != 42 {
		t.Fatalf("const = %+v", decls[3])
	}

	noRet := mustParse(t, "fn(v1) func() -> u32; fn(v1) g();").Decls()
	if noRet[1].(*ast.FnDecl).Ret != nil {
		t.Fatalf("missing return type must be nil")
	}
}
