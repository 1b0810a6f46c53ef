package token_test

import (
	"testing"

	"dandiya/internal/source"
	"dandiya/internal/token"
)

func TestRunString(t *testing.T) {
	run := token.Run{
		{Kind: token.TriviaWhitespace, Span: source.Span{Start: 0, End: 1}, Text: "\n"},
		{Kind: token.TriviaLineComment, Span: source.Span{Start: 1, End: 6}, Text: "// hi"},
		{Kind: token.TriviaWhitespace, Span: source.Span{Start: 6, End: 7}, Text: "\n"},
		{Kind: token.TriviaBlockComment, Span: source.Span{Start: 7, End: 12}, Text: "/* */"},
	}
	if got := run.String(); got != "\n// hi\n/* */" {
		t.Fatalf("Run.String() = %q", got)
	}
	if !run.HasComments() {
		t.Fatalf("run has comments")
	}
	if token.Run(nil).String() != "" {
		t.Fatalf("empty run must render empty")
	}
	if (token.Run{{Kind: token.TriviaWhitespace, Text: " "}}).HasComments() {
		t.Fatalf("whitespace-only run has no comments")
	}
}
