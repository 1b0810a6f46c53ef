package lexer

import (
	"strconv"

	"dandiya/internal/diag"
	"dandiya/internal/token"
)

// scanNumber scans a decimal digit run as an unsigned 64-bit value.
// There is no sign, no separator and no radix prefix.
func (lx *Lexer) scanNumber() (token.Token, *diag.Error) {
	pos := lx.posAt(lx.cursor.Off)
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return token.Token{}, lx.errorf(diag.LexNumberOverflow, pos, "integer literal '%s' overflows u64", text)
	}
	return token.Token{Kind: token.UintLit, Span: sp, Pos: pos, Text: text, Value: v}, nil
}
