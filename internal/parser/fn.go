package parser

import (
	"dandiya/internal/ast"
	"dandiya/internal/diag"
	"dandiya/internal/token"
)

// parseFn := "fn" "(" version ")" ident "(" fields ")" ret ";"
func (p *Parser) parseFn(hdr ast.DeclHeader) (ast.Decl, token.Token, error) {
	if _, err := p.expect(token.KwFn); err != nil {
		return nil, token.Token{}, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, token.Token{}, err
	}
	version, err := p.parseVersion()
	if err != nil {
		return nil, token.Token{}, err
	}
	if _, err = p.expect(token.RParen); err != nil {
		return nil, token.Token{}, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, token.Token{}, err
	}
	if _, err = p.expect(token.LParen); err != nil {
		return nil, token.Token{}, err
	}
	args, err := p.parseFields(token.RParen)
	if err != nil {
		return nil, token.Token{}, err
	}
	if _, err = p.expect(token.RParen); err != nil {
		return nil, token.Token{}, err
	}

	var ret ast.Type
	if p.at(token.Arrow) {
		if _, err = p.bump(); err != nil {
			return nil, token.Token{}, err
		}
		if ret, err = p.parseReturnType(); err != nil {
			return nil, token.Token{}, err
		}
	}
	if _, err = p.expect(token.Semicolon); err != nil {
		return nil, token.Token{}, err
	}

	p.finish(&hdr, name)
	return &ast.FnDecl{DeclHeader: hdr, Version: version, Args: args, Ret: ret}, name, nil
}

// parseVersion := ident matching ^v[0-9]+$
func (p *Parser) parseVersion() (ast.Version, error) {
	if !p.at(token.Ident) {
		return 0, p.unexpected("version identifier")
	}
	tok := p.tok
	v, ok := ast.ParseVersion(tok.Text)
	if !ok {
		return 0, p.errorf(diag.SynBadVersion, tok.Pos, "invalid version identifier '%s' (expected v<digits>)", tok.Text)
	}
	if _, err := p.bump(); err != nil {
		return 0, err
	}
	return v, nil
}
