package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"a\nb", "a\nb", false},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"a\rb", "a\rb", false},
		{"\r\r\n", "\r\n", true},
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if string(got) != tt.want || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q, %v; want %q, %v", tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestRemoveBOM(t *testing.T) {
	got, had := removeBOM([]byte("\xEF\xBB\xBFfn"))
	if !had || !bytes.Equal(got, []byte("fn")) {
		t.Fatalf("removeBOM = %q, %v", got, had)
	}
	got, had = removeBOM([]byte("fn"))
	if had || string(got) != "fn" {
		t.Fatalf("removeBOM without BOM = %q, %v", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	idx := buildLineIndex([]byte("ab\ncd\n\nx"))
	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}},
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
	}
	for _, c := range cases {
		if got := toLineCol(idx, c.off); got != c.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}
