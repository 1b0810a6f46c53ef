package lexer

import (
	"dandiya/internal/diag"
	"dandiya/internal/source"
	"dandiya/internal/token"
)

// Lexer turns a file into (trivia, token) pairs.
// The first failure is sticky: every later call returns the same error.
type Lexer struct {
	file      *source.File
	cursor    Cursor
	line      uint32 // 1-based
	lineStart uint32 // offset of the first byte of the current line
	done      bool
	err       *diag.Error
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		line:   1,
	}
}

// File returns the file being tokenized.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next returns the trivia run in front of the next token and the token.
// Once EOF has been returned, later calls return EOF with an empty run.
func (lx *Lexer) Next() (token.Run, token.Token, error) {
	if lx.err != nil {
		return nil, token.Token{Kind: token.Invalid}, lx.err
	}
	if lx.done {
		return nil, lx.eofToken(), nil
	}

	run, err := lx.collectTrivia()
	if err != nil {
		return lx.fail(err)
	}

	if lx.cursor.EOF() {
		lx.done = true
		return run, lx.eofToken(), nil
	}

	var tok token.Token
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok, err = lx.scanNumber()
	default:
		tok, err = lx.scanPunct()
	}
	if err != nil {
		return lx.fail(err)
	}
	return run, tok, nil
}

// All tokenizes the whole file. The last pair always carries EOF.
func (lx *Lexer) All() ([]token.Run, []token.Token, error) {
	var runs []token.Run
	var toks []token.Token
	for {
		run, tok, err := lx.Next()
		if err != nil {
			return nil, nil, err
		}
		runs = append(runs, run)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return runs, toks, nil
		}
	}
}

func (lx *Lexer) fail(err *diag.Error) (token.Run, token.Token, error) {
	lx.err = err
	return nil, token.Token{Kind: token.Invalid}, err
}

func (lx *Lexer) eofToken() token.Token {
	off := lx.cursor.Off
	return token.Token{
		Kind: token.EOF,
		Span: source.Span{Start: off, End: off},
		Pos:  lx.posAt(off),
	}
}

// posAt resolves off, which must lie on the current line.
func (lx *Lexer) posAt(off uint32) source.Pos {
	return source.Pos{Offset: off, Line: lx.line, Col: off - lx.lineStart + 1}
}

// bump advances one byte and keeps the line counter in sync.
func (lx *Lexer) bump() byte {
	b := lx.cursor.Bump()
	if b == '\n' {
		lx.line++
		lx.lineStart = lx.cursor.Off
	}
	return b
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) errorf(code diag.Code, pos source.Pos, format string, args ...any) *diag.Error {
	return diag.ErrorAt(code, lx.file, pos, format, args...)
}
