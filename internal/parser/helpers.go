package parser

import (
	"errors"

	"dandiya/internal/ast"
	"dandiya/internal/diag"
	"dandiya/internal/source"
	"dandiya/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

// bump consumes the lookahead token and fetches the next one.
func (p *Parser) bump() (token.Token, error) {
	cur := p.tok
	run, next, err := p.lx.Next()
	if err != nil {
		return cur, err
	}
	p.end = cur.Span.End
	p.lead, p.tok = run, next
	return cur, nil
}

// expect consumes a token of kind k or fails with an unexpected-token error.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.at(k) {
		return p.tok, p.unexpected(k.Describe())
	}
	return p.bump()
}

// unexpected reports the lookahead token against what the grammar wanted.
func (p *Parser) unexpected(expected string) error {
	return p.errorf(diag.SynUnexpectedToken, p.tok.Pos, "expected %s, found %s", expected, p.tok.Describe())
}

func (p *Parser) errorf(code diag.Code, pos source.Pos, format string, args ...any) error {
	return diag.ErrorAt(code, p.file, pos, format, args...)
}

// register adds decl to the unit, reporting collisions at the name token.
func (p *Parser) register(decl ast.Decl, name token.Token) error {
	_, err := p.b.Add(decl)
	if err == nil {
		return nil
	}
	var dupVersion *ast.DuplicateVersionError
	if errors.As(err, &dupVersion) {
		return p.errorf(diag.SemaDuplicateVersion, name.Pos, "%s", dupVersion.Error())
	}
	var dupSymbol *ast.DuplicateSymbolError
	if errors.As(err, &dupSymbol) {
		return p.errorf(diag.SemaDuplicateSymbol, name.Pos, "%s", dupSymbol.Error())
	}
	return err
}

// finish names the declaration and closes its span at the last consumed token.
func (p *Parser) finish(hdr *ast.DeclHeader, name token.Token) {
	hdr.Name = name.Text
	hdr.Span = source.Span{Start: hdr.Pos.Offset, End: p.end}
}
