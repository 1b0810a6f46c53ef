package emit

import "testing"

func TestGuardName(t *testing.T) {
	cases := map[string]string{
		"api/foo-bar.dy": "FOO_BAR_H",
		"widgets.dy":     "WIDGETS_H",
		"v2.api.dy":      "V2_API_H",
		"1api.dy":        "_1API_H",
		"":               DefaultHeaderGuard,
		"/":              DefaultHeaderGuard,
		"dir/Mixed Case": "MIXED_CASE_H",
	}
	for in, want := range cases {
		if got := GuardName(in); got != want {
			t.Errorf("GuardName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	for in, want := range map[string]Language{"c": C, "H": C, "rust": Rust, " RS ": Rust} {
		got, err := ParseLanguage(in)
		if err != nil || got != want {
			t.Errorf("ParseLanguage(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLanguage("go"); err == nil {
		t.Fatalf("go is not a target")
	}
	if C.Ext() != ".h" || Rust.Ext() != ".rs" {
		t.Fatalf("extensions changed")
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if !o.ForwardLatestVersionAPI || !o.PreserveTrivia || o.ExportSymbols || o.guard() != DefaultHeaderGuard {
		t.Fatalf("defaults = %+v", o)
	}
	if (Options{}).guard() != DefaultHeaderGuard {
		t.Fatalf("empty guard must fall back")
	}
}
