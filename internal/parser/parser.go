package parser

import (
	"dandiya/internal/ast"
	"dandiya/internal/lexer"
	"dandiya/internal/source"
	"dandiya/internal/token"
)

// Parser holds the state for one file. It keeps one token of lookahead and
// the trivia run the lexer returned in front of it.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	b    *ast.Builder
	tok  token.Token
	lead token.Run
	end  uint32 // end offset of the last consumed token
}

// Parse builds a compilation unit from file. The first lexical, syntax or
// semantic failure aborts parsing and is returned as a *diag.Error; no
// partial unit is returned.
func Parse(file *source.File) (*ast.Unit, error) {
	p := &Parser{
		lx:   lexer.New(file),
		file: file,
		b:    ast.NewBuilder(declHint(file)),
	}
	if _, err := p.bump(); err != nil {
		return nil, err
	}
	return p.parseUnit()
}

// ParseString parses src under the given name; an empty name renders as
// "<anonymous>" in diagnostics.
func ParseString(src, name string) (*ast.Unit, error) {
	return Parse(source.NewFile(name, []byte(src)))
}

// parseUnit := decl* EOF
func (p *Parser) parseUnit() (*ast.Unit, error) {
	for !p.at(token.EOF) {
		if err := p.parseDecl(); err != nil {
			return nil, err
		}
	}
	return p.b.Finish(p.lead), nil
}

// parseDecl dispatches on the leading keyword.
func (p *Parser) parseDecl() error {
	hdr := ast.DeclHeader{Prefix: p.lead, Pos: p.tok.Pos}

	var (
		decl ast.Decl
		name token.Token
		err  error
	)
	switch p.tok.Kind {
	case token.KwFn:
		decl, name, err = p.parseFn(hdr)
	case token.KwStruct:
		decl, name, err = p.parseStruct(hdr)
	case token.KwOpaque:
		decl, name, err = p.parseOpaque(hdr)
	case token.KwConst:
		decl, name, err = p.parseConst(hdr)
	default:
		return p.unexpected("'fn', 'struct', 'opaque' or 'const'")
	}
	if err != nil {
		return err
	}
	return p.register(decl, name)
}

func declHint(file *source.File) uint {
	// roughly one declaration per two lines
	return uint(file.LineCount()/2 + 1)
}
