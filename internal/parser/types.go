package parser

import (
	"dandiya/internal/ast"
	"dandiya/internal/diag"
	"dandiya/internal/token"
)

// parseType := "*" type | "[" type ";" uint "]" | basetype
func (p *Parser) parseType() (ast.Type, error) {
	switch p.tok.Kind {
	case token.Star:
		if _, err := p.bump(); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Pointer{Elem: elem}, nil

	case token.LBracket:
		if _, err := p.bump(); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		n, err := p.expect(token.UintLit)
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(token.RBracket); err != nil {
			return nil, err
		}
		return &ast.Array{Elem: elem, Len: n.Value}, nil

	case token.Ident:
		tok, err := p.bump()
		if err != nil {
			return nil, err
		}
		return ast.NewBase(tok.Text), nil

	default:
		return nil, p.unexpected("type")
	}
}

// parseSaneType rejects arrays nested in arrays and pointers to arrays,
// reporting at the first token of the type.
func (p *Parser) parseSaneType() (ast.Type, error) {
	start := p.tok.Pos
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if why := ast.Violation(typ); why != "" {
		return nil, p.errorf(diag.SynInvalidType, start, "invalid type '%s': %s", typ, why)
	}
	return typ, nil
}

// parseReturnType additionally rejects any array in a return position.
func (p *Parser) parseReturnType() (ast.Type, error) {
	start := p.tok.Pos
	typ, err := p.parseSaneType()
	if err != nil {
		return nil, err
	}
	if ast.ContainsArray(typ) {
		return nil, p.errorf(diag.SynInvalidReturn, start, "invalid return type '%s': functions cannot return arrays", typ)
	}
	return typ, nil
}
