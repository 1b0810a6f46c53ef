package lexer

import (
	"dandiya/internal/diag"
	"dandiya/internal/token"
)

// collectTrivia gathers the whitespace and comments in front of the next token.
//   - consecutive whitespace (newlines included) becomes one TriviaWhitespace
//   - "//" up to, not including, '\n' becomes TriviaLineComment
//   - "/*" up to the first "*/" becomes TriviaBlockComment; comments do not nest
func (lx *Lexer) collectTrivia() (token.Run, *diag.Error) {
	var run token.Run
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isSpace(b) {
			for isSpace(lx.cursor.Peek()) {
				lx.bump()
			}
			sp := lx.cursor.SpanFrom(start)
			run = append(run, token.Trivia{Kind: token.TriviaWhitespace, Span: sp, Text: lx.text(sp)})
			continue
		}

		b0, b1, ok := lx.cursor.Peek2()
		if !ok || b0 != '/' {
			break
		}
		switch b1 {
		case '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.bump()
			}
			sp := lx.cursor.SpanFrom(start)
			run = append(run, token.Trivia{Kind: token.TriviaLineComment, Span: sp, Text: lx.text(sp)})
			continue
		case '*':
			opener := lx.posAt(lx.cursor.Off)
			lx.bump()
			lx.bump()
			if !lx.skipToBlockEnd() {
				return nil, lx.errorf(diag.LexUnterminatedBlockComment, opener, "unterminated block comment")
			}
			sp := lx.cursor.SpanFrom(start)
			run = append(run, token.Trivia{Kind: token.TriviaBlockComment, Span: sp, Text: lx.text(sp)})
			continue
		}
		break
	}
	return run, nil
}

// skipToBlockEnd consumes up to and including the next "*/".
func (lx *Lexer) skipToBlockEnd() bool {
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.bump()
			lx.bump()
			return true
		}
		lx.bump()
	}
	return false
}
