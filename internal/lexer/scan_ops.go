package lexer

import (
	"fmt"
	"unicode/utf8"

	"dandiya/internal/diag"
	"dandiya/internal/token"
)

// scanPunct scans "->" or one of the single-byte punctuators.
func (lx *Lexer) scanPunct() (token.Token, *diag.Error) {
	pos := lx.posAt(lx.cursor.Off)
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	if ch == '-' {
		lx.cursor.Bump()
		if !lx.cursor.Eat('>') {
			return token.Token{}, lx.errorf(diag.LexBadArrow, pos, "expected '>' after '-'")
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Arrow, Span: sp, Pos: pos, Text: lx.text(sp)}, nil
	}

	if k, ok := token.PunctKind(ch); ok {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Pos: pos, Text: lx.text(sp)}, nil
	}

	return token.Token{}, lx.errorf(diag.LexInvalidChar, pos, "invalid character %s", lx.describeByte())
}

// describeByte quotes the character at the cursor for diagnostics.
func (lx *Lexer) describeByte() string {
	rest := lx.file.Content[lx.cursor.Off:]
	if r, size := utf8.DecodeRune(rest); r != utf8.RuneError || size > 1 {
		return "'" + string(r) + "'"
	}
	return fmt.Sprintf("byte 0x%02x", rest[0])
}
