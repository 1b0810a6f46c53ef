package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"dandiya/internal/token"
)

// TriviaOutput is one trivia piece in the token dump.
type TriviaOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// TokenOutput is a token together with the trivia run in front of it.
type TokenOutput struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Value   *uint64        `json:"value,omitempty"`
	Offset  uint32         `json:"offset"`
	Line    uint32         `json:"line"`
	Col     uint32         `json:"col"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

// FormatTokensPretty prints one token per line. runs[i] is the trivia in
// front of tokens[i].
func FormatTokensPretty(w io.Writer, runs []token.Run, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d", tok.Pos.Line, tok.Pos.Col); err != nil {
			return err
		}
		if i < len(runs) && len(runs[i]) > 0 {
			kinds := make([]string, 0, len(runs[i]))
			for _, tv := range runs[i] {
				kinds = append(kinds, tv.Kind.String())
			}
			if _, err := fmt.Fprintf(w, " leading=%v", kinds); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, runs []token.Run, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for i, tok := range tokens {
		item := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Offset: tok.Pos.Offset,
			Line:   tok.Pos.Line,
			Col:    tok.Pos.Col,
		}
		if tok.Kind == token.UintLit {
			v := tok.Value
			item.Value = &v
		}
		if i < len(runs) {
			for _, tv := range runs[i] {
				item.Leading = append(item.Leading, TriviaOutput{Kind: tv.Kind.String(), Text: tv.Text})
			}
		}
		out = append(out, item)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
