package fuzztests

import (
	"strings"
	"testing"

	"dandiya/internal/lexer"
	"dandiya/internal/source"
	"dandiya/internal/token"
)

// FuzzLexerRoundTrip checks that trivia runs and token texts reproduce the
// input exactly whenever lexing succeeds.
func FuzzLexerRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)
		file := source.NewFile("fuzz.dy", input)
		runs, toks, err := lexer.New(file).All()
		if err != nil {
			return
		}
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end in EOF")
		}
		var b strings.Builder
		for i, tok := range toks {
			b.WriteString(runs[i].String())
			b.WriteString(tok.Text)
		}
		if b.String() != string(input) {
			t.Fatalf("round trip mismatch:\nin  %q\nout %q", input, b.String())
		}
	})
}
