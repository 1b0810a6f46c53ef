package token

import (
	"fmt"

	"dandiya/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Pos   source.Pos
	Text  string
	Value uint64 // only for UintLit
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwStruct, KwOpaque, KwConst:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Describe renders the token for "found X" messages.
func (t Token) Describe() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("identifier '%s'", t.Text)
	case UintLit:
		return fmt.Sprintf("integer %d", t.Value)
	default:
		return t.Kind.Describe()
	}
}
