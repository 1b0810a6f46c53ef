package ast

import (
	"slices"

	"dandiya/internal/token"
)

// VersionSet records every version of one function base name.
type VersionSet struct {
	Latest    Version
	ByVersion map[Version]DeclID
}

// Unit is a parsed compilation unit. It is built once through a Builder and
// never changes afterwards.
type Unit struct {
	decls     *Arena[Decl]
	symbols   map[string]DeclID
	versions  map[string]*VersionSet
	baseNames []string // function base names in order of first appearance
	Trailing  token.Run
}

// Decls returns a copy of the declarations in source order.
func (u *Unit) Decls() []Decl {
	return slices.Clone(u.decls.Slice())
}

func (u *Unit) Len() int {
	return len(u.decls.Slice())
}

// Decl returns the declaration behind id, or nil.
func (u *Unit) Decl(id DeclID) Decl {
	d := u.decls.Get(uint32(id))
	if d == nil {
		return nil
	}
	return *d
}

// Lookup finds a declaration by qualified name.
func (u *Unit) Lookup(qualified string) (Decl, bool) {
	id, ok := u.symbols[qualified]
	if !ok {
		return nil, false
	}
	return u.Decl(id), true
}

// Symbols returns every qualified name, sorted.
func (u *Unit) Symbols() []string {
	out := make([]string, 0, len(u.symbols))
	for name := range u.symbols {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// BaseNames lists function base names in order of first appearance.
func (u *Unit) BaseNames() []string {
	return slices.Clone(u.baseNames)
}

// LatestVersion returns the highest version registered for a function base name.
func (u *Unit) LatestVersion(base string) (Version, bool) {
	vs, ok := u.versions[base]
	if !ok {
		return 0, false
	}
	return vs.Latest, true
}

// Versions returns the registered versions of base in ascending order.
func (u *Unit) Versions(base string) []Version {
	vs, ok := u.versions[base]
	if !ok {
		return nil
	}
	out := make([]Version, 0, len(vs.ByVersion))
	for v := range vs.ByVersion {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// FnVersion returns version v of function base.
func (u *Unit) FnVersion(base string, v Version) (*FnDecl, bool) {
	vs, ok := u.versions[base]
	if !ok {
		return nil, false
	}
	id, ok := vs.ByVersion[v]
	if !ok {
		return nil, false
	}
	fn, ok := u.Decl(id).(*FnDecl)
	return fn, ok
}

// Latest returns the highest version of function base.
func (u *Unit) Latest(base string) (*FnDecl, bool) {
	v, ok := u.LatestVersion(base)
	if !ok {
		return nil, false
	}
	return u.FnVersion(base, v)
}
