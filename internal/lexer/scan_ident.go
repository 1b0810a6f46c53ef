package lexer

import (
	"dandiya/internal/token"
)

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* and reclassifies exact keywords.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	pos := lx.posAt(lx.cursor.Off)
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	kind := token.Ident
	if k, ok := token.LookupKeyword(text); ok {
		kind = k
	}
	return token.Token{Kind: kind, Span: sp, Pos: pos, Text: text}
}
