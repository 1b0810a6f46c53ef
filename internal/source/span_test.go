package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{Start: 4, End: 8}
	b := Span{Start: 2, End: 5}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("Cover = %v, want 2-8", got)
	}
	if got.Len() != 6 {
		t.Fatalf("Len = %d, want 6", got.Len())
	}
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Fatalf("expected empty span")
	}
}
