package ast

import (
	"fmt"
)

// BaseKind enumerates the fixed-width integers plus named references.
type BaseKind uint8

const (
	// Named refers to a struct or opaque type by name only.
	Named BaseKind = iota
	U8
	I8
	U16
	I16
	U32
	I32
	U64
	I64
)

var baseKindNames = [...]string{
	U8:  "u8",
	I8:  "i8",
	U16: "u16",
	I16: "i16",
	U32: "u32",
	I32: "i32",
	U64: "u64",
	I64: "i64",
}

// LookupBase maps an integer type keyword to its kind.
func LookupBase(name string) (BaseKind, bool) {
	for k := U8; k <= I64; k++ {
		if baseKindNames[k] == name {
			return k, true
		}
	}
	return Named, false
}

func (k BaseKind) String() string {
	if k == Named {
		return "named"
	}
	if int(k) < len(baseKindNames) {
		return baseKindNames[k]
	}
	return fmt.Sprintf("BaseKind(%d)", uint8(k))
}

// Bits returns the width of an integer kind, 0 for Named.
func (k BaseKind) Bits() int {
	switch k {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32:
		return 32
	case U64, I64:
		return 64
	default:
		return 0
	}
}

// Signed reports whether the kind is a signed integer.
func (k BaseKind) Signed() bool {
	return k == I8 || k == I16 || k == I32 || k == I64
}

// Type is Pointer, Array or Base.
type Type interface {
	fmt.Stringer
	isType()
}

type Pointer struct {
	Elem Type
}

type Array struct {
	Elem Type
	Len  uint64
}

type Base struct {
	Kind BaseKind
	Name string // set only for Named
}

func (*Pointer) isType() {}
func (*Array) isType()   {}
func (*Base) isType()    {}

func (p *Pointer) String() string { return "*" + p.Elem.String() }
func (a *Array) String() string   { return fmt.Sprintf("[%s; %d]", a.Elem, a.Len) }

func (b *Base) String() string {
	if b.Kind == Named {
		return b.Name
	}
	return b.Kind.String()
}

// NewBase resolves name to an integer kind or a named reference.
func NewBase(name string) *Base {
	if k, ok := LookupBase(name); ok {
		return &Base{Kind: k}
	}
	return &Base{Kind: Named, Name: name}
}

// ContainsArray reports whether t is an array or a pointer chain ending in one.
func ContainsArray(t Type) bool {
	switch t := t.(type) {
	case *Array:
		return true
	case *Pointer:
		return ContainsArray(t.Elem)
	default:
		return false
	}
}

// Violation describes why t cannot be represented in both targets,
// or returns "" when it can.
func Violation(t Type) string {
	switch t := t.(type) {
	case *Pointer:
		if ContainsArray(t.Elem) {
			return "pointers to arrays are not supported"
		}
		return Violation(t.Elem)
	case *Array:
		if ContainsArray(t.Elem) {
			return "nested arrays are not supported"
		}
		return Violation(t.Elem)
	default:
		return ""
	}
}
