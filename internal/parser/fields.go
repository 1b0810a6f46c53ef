package parser

import (
	"dandiya/internal/ast"
	"dandiya/internal/token"
)

// parseFields := ε | field ("," field)* ","?
// The closing token is left for the caller.
func (p *Parser) parseFields(closer token.Kind) ([]ast.Field, error) {
	var fields []ast.Field
	for !p.at(closer) {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)

		if p.at(closer) {
			break
		}
		if !p.at(token.Comma) {
			return nil, p.unexpected("',' or " + closer.Describe())
		}
		if _, err := p.bump(); err != nil {
			return nil, err
		}
	}
	return fields, nil
}

// parseField := ident ":" type
func (p *Parser) parseField() (ast.Field, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return ast.Field{}, err
	}
	if _, err = p.expect(token.Colon); err != nil {
		return ast.Field{}, err
	}
	typ, err := p.parseSaneType()
	if err != nil {
		return ast.Field{}, err
	}
	return ast.Field{Name: name.Text, Type: typ, Pos: name.Pos}, nil
}
