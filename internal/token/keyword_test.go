package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":     KwFn,
		"struct": KwStruct,
		"opaque": KwOpaque,
		"const":  KwConst,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Fn", "STRUCT", "Opaque",
		"u8", "i64", "v1",
		"function", "structure", "fn_",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestPunctKindRoundTrip(t *testing.T) {
	for _, c := range []byte("[](){}*:,;=") {
		k, ok := PunctKind(c)
		if !ok {
			t.Fatalf("PunctKind(%q) = !ok", c)
		}
		text, ok := k.Punct()
		if !ok || text != string(c) {
			t.Fatalf("%v.Punct() = %q, want %q", k, text, string(c))
		}
	}
	for _, c := range []byte("-+<>@#\"") {
		if _, ok := PunctKind(c); ok {
			t.Fatalf("PunctKind(%q) must fail", c)
		}
	}
}
