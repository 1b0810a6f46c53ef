package ast

import (
	"fmt"

	"dandiya/internal/token"
)

// DuplicateSymbolError reports a qualified name that is already taken.
type DuplicateSymbolError struct {
	Symbol string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol '%s'", e.Symbol)
}

// DuplicateVersionError reports a (base name, version) pair registered twice.
type DuplicateVersionError struct {
	Name    string
	Version Version
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("duplicate version %s of '%s'", e.Version, e.Name)
}

// Builder assembles a Unit while enforcing symbol and version uniqueness.
type Builder struct {
	unit *Unit
}

func NewBuilder(capHint uint) *Builder {
	return &Builder{
		unit: &Unit{
			decls:    NewArena[Decl](capHint),
			symbols:  make(map[string]DeclID, capHint),
			versions: make(map[string]*VersionSet),
		},
	}
}

// Add registers d. For functions the version registry is checked before the
// symbol table. Nothing is modified when an error is returned.
func (b *Builder) Add(d Decl) (DeclID, error) {
	u := b.unit
	fn, isFn := d.(*FnDecl)
	if isFn {
		if vs, ok := u.versions[fn.Name]; ok {
			if _, dup := vs.ByVersion[fn.Version]; dup {
				return NoDeclID, &DuplicateVersionError{Name: fn.Name, Version: fn.Version}
			}
		}
	}
	qualified := d.QualifiedName()
	if _, dup := u.symbols[qualified]; dup {
		return NoDeclID, &DuplicateSymbolError{Symbol: qualified}
	}

	id := DeclID(u.decls.Allocate(d))
	u.symbols[qualified] = id
	if isFn {
		vs, ok := u.versions[fn.Name]
		if !ok {
			vs = &VersionSet{Latest: fn.Version, ByVersion: make(map[Version]DeclID, 1)}
			u.versions[fn.Name] = vs
			u.baseNames = append(u.baseNames, fn.Name)
		}
		vs.ByVersion[fn.Version] = id
		if fn.Version > vs.Latest {
			vs.Latest = fn.Version
		}
	}
	return id, nil
}

// Finish attaches the trailing trivia and hands the unit over.
// The builder must not be used afterwards.
func (b *Builder) Finish(trailing token.Run) *Unit {
	u := b.unit
	u.Trailing = trailing
	b.unit = nil
	return u
}
