package ast

import (
	"strconv"

	"dandiya/internal/source"
	"dandiya/internal/token"
)

type DeclKind uint8

const (
	DeclFn DeclKind = iota
	DeclStruct
	DeclOpaque
	DeclConst
)

func (k DeclKind) String() string {
	switch k {
	case DeclFn:
		return "fn"
	case DeclStruct:
		return "struct"
	case DeclOpaque:
		return "opaque"
	case DeclConst:
		return "const"
	default:
		return "decl(?)"
	}
}

// Field is a struct member or a function parameter.
type Field struct {
	Name string
	Type Type
	Pos  source.Pos
}

// Version is the integer behind a "v<digits>" identifier.
type Version uint64

// ParseVersion accepts identifiers matching ^v[0-9]+$ whose digits fit in a uint64.
func ParseVersion(ident string) (Version, bool) {
	if len(ident) < 2 || ident[0] != 'v' {
		return 0, false
	}
	for i := 1; i < len(ident); i++ {
		if ident[i] < '0' || ident[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(ident[1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return Version(v), true
}

func (v Version) String() string {
	return "v" + strconv.FormatUint(uint64(v), 10)
}

// Decl is one of *FnDecl, *StructDecl, *OpaqueDecl or *ConstDecl.
type Decl interface {
	Kind() DeclKind
	DeclName() string
	// QualifiedName is the uniqueness key inside a Unit.
	QualifiedName() string
	Leading() token.Run
	Position() source.Pos
	// SourceSpan covers the declaration from its first through its last token.
	SourceSpan() source.Span
}

// DeclHeader carries what every declaration has in common.
type DeclHeader struct {
	Prefix token.Run // trivia in front of the first token
	Name   string
	Pos    source.Pos  // first token of the declaration
	Span   source.Span // from the first token through the last one
}

func (h *DeclHeader) DeclName() string        { return h.Name }
func (h *DeclHeader) Leading() token.Run      { return h.Prefix }
func (h *DeclHeader) Position() source.Pos    { return h.Pos }
func (h *DeclHeader) QualifiedName() string   { return h.Name }
func (h *DeclHeader) SourceSpan() source.Span { return h.Span }

type FnDecl struct {
	DeclHeader
	Version Version
	Args    []Field
	Ret     Type // nil when the function returns nothing
}

type StructDecl struct {
	DeclHeader
	Fields []Field
}

type OpaqueDecl struct {
	DeclHeader
}

type ConstDecl struct {
	DeclHeader
	Value uint64
}

func (*FnDecl) Kind() DeclKind     { return DeclFn }
func (*StructDecl) Kind() DeclKind { return DeclStruct }
func (*OpaqueDecl) Kind() DeclKind { return DeclOpaque }
func (*ConstDecl) Kind() DeclKind  { return DeclConst }

// QualifiedName returns "{name}_v{version}".
func (d *FnDecl) QualifiedName() string {
	return VersionedName(d.Name, d.Version)
}

// VersionedName is the exported symbol of version v of function name.
func VersionedName(name string, v Version) string {
	return name + "_" + v.String()
}
