package parser_test

import (
	"errors"
	"testing"

	"dandiya/internal/ast"
	"dandiya/internal/diag"
	"dandiya/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Unit {
	t.Helper()
	u, err := parser.ParseString(src, "")
	if err != nil {
		t.Fatalf("unexpected error:\n%v", err)
	}
	if u == nil {
		t.Fatalf("nil unit without error")
	}
	return u
}

func mustFail(t *testing.T, src string, code diag.Code) *diag.Error {
	t.Helper()
	u, err := parser.ParseString(src, "")
	if err == nil {
		t.Fatalf("expected %s, parse succeeded", code.ID())
	}
	if u != nil {
		t.Fatalf("failed parse must not return a unit")
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *diag.Error, got %T: %v", err, err)
	}
	if de.Diagnostic.Code != code {
		t.Fatalf("code = %s, want %s\n%v", de.Diagnostic.Code.ID(), code.ID(), err)
	}
	return de
}
