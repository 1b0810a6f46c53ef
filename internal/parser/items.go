package parser

import (
	"dandiya/internal/ast"
	"dandiya/internal/token"
)

// parseStruct := "struct" ident "{" fields "}"
func (p *Parser) parseStruct(hdr ast.DeclHeader) (ast.Decl, token.Token, error) {
	if _, err := p.expect(token.KwStruct); err != nil {
		return nil, token.Token{}, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, token.Token{}, err
	}
	if _, err = p.expect(token.LBrace); err != nil {
		return nil, token.Token{}, err
	}
	fields, err := p.parseFields(token.RBrace)
	if err != nil {
		return nil, token.Token{}, err
	}
	if _, err = p.expect(token.RBrace); err != nil {
		return nil, token.Token{}, err
	}

	p.finish(&hdr, name)
	return &ast.StructDecl{DeclHeader: hdr, Fields: fields}, name, nil
}

// parseOpaque := "opaque" ident ";"
func (p *Parser) parseOpaque(hdr ast.DeclHeader) (ast.Decl, token.Token, error) {
	if _, err := p.expect(token.KwOpaque); err != nil {
		return nil, token.Token{}, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, token.Token{}, err
	}
	if _, err = p.expect(token.Semicolon); err != nil {
		return nil, token.Token{}, err
	}

	p.finish(&hdr, name)
	return &ast.OpaqueDecl{DeclHeader: hdr}, name, nil
}

// parseConst := "const" ident "=" uint ";"
func (p *Parser) parseConst(hdr ast.DeclHeader) (ast.Decl, token.Token, error) {
	if _, err := p.expect(token.KwConst); err != nil {
		return nil, token.Token{}, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, token.Token{}, err
	}
	if _, err = p.expect(token.Assign); err != nil {
		return nil, token.Token{}, err
	}
	value, err := p.expect(token.UintLit)
	if err != nil {
		return nil, token.Token{}, err
	}
	if _, err = p.expect(token.Semicolon); err != nil {
		return nil, token.Token{}, err
	}

	p.finish(&hdr, name)
	return &ast.ConstDecl{DeclHeader: hdr, Value: value.Value}, name, nil
}
