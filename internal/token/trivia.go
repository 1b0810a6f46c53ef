package token

import (
	"strings"

	"dandiya/internal/source"
)

type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	default:
		return "TriviaKind(?)"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// Run is the trivia captured verbatim in front of a token.
type Run []Trivia

// String reconstructs the original source text of the run.
func (r Run) String() string {
	switch len(r) {
	case 0:
		return ""
	case 1:
		return r[0].Text
	}
	var sb strings.Builder
	for _, tv := range r {
		sb.WriteString(tv.Text)
	}
	return sb.String()
}

// HasComments reports whether the run carries any comment.
func (r Run) HasComments() bool {
	for _, tv := range r {
		if tv.Kind != TriviaWhitespace {
			return true
		}
	}
	return false
}
