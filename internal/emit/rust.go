package emit

import (
	"strconv"
	"strings"

	"dandiya/internal/ast"
)

const rustBanner = "// Code generated by dandiya. DO NOT EDIT.\n\n"

// RustBindings renders unit as a Rust module of #[repr(C)] types, constants
// and extern "C" declarations, optionally followed by safe wrappers that
// forward to the latest version of every function.
func RustBindings(unit *ast.Unit, opts Options) string {
	e := &rustEmitter{w: writer{opts: opts}}
	e.w.str(rustBanner)
	for _, d := range unit.Decls() {
		e.w.decl(d, func() { e.decl(d) })
	}
	e.w.trailing(unit)
	if opts.ForwardLatestVersionAPI {
		e.wrappers(unit)
	}
	return e.w.String()
}

type rustEmitter struct {
	w writer
}

func (e *rustEmitter) decl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.StructDecl:
		e.w.str("#[repr(C)]\n")
		if len(d.Fields) == 0 {
			e.w.printf("pub struct %s {}", rustIdent(d.Name))
			return
		}
		e.w.printf("pub struct %s {\n", rustIdent(d.Name))
		for _, f := range d.Fields {
			e.w.printf("    pub %s,\n", rustField(f))
		}
		e.w.str("}")
	case *ast.OpaqueDecl:
		e.w.str("#[repr(C)]\n")
		e.w.printf("pub struct %s {\n    _opaque: [u8; 0],\n}", rustIdent(d.Name))
	case *ast.ConstDecl:
		e.w.printf("pub const %s: u64 = %d;", rustIdent(d.Name), d.Value)
	case *ast.FnDecl:
		e.w.printf("extern \"C\" {\n    pub fn %s(%s)%s;\n}", d.QualifiedName(), rustParams(d.Args), rustReturn(d.Ret))
	}
}

// wrappers emits one forwarding function per base name, in order of first
// appearance. A wrapper whose name is already a constant or an extern
// function is left out.
func (e *rustEmitter) wrappers(unit *ast.Unit) {
	taken := valueNames(unit)
	for _, base := range unit.BaseNames() {
		fn, ok := unit.Latest(base)
		if !ok {
			continue
		}
		name := rustIdent(base)
		e.w.str("\n")
		if _, dup := taken[name]; dup {
			e.w.printf("// no forwarding wrapper for %s: the name is already defined\n", base)
			continue
		}
		e.w.printf("pub fn %s(%s)%s {\n", name, rustParams(fn.Args), rustReturn(fn.Ret))
		e.w.printf("    unsafe { %s(%s) }\n", fn.QualifiedName(), rustCallArgs(fn.Args))
		e.w.str("}\n")
	}
}

// valueNames collects the Rust value-namespace items of unit.
func valueNames(unit *ast.Unit) map[string]struct{} {
	names := make(map[string]struct{})
	for _, d := range unit.Decls() {
		switch d := d.(type) {
		case *ast.ConstDecl:
			names[rustIdent(d.Name)] = struct{}{}
		case *ast.FnDecl:
			names[d.QualifiedName()] = struct{}{}
		}
	}
	return names
}

func rustType(t ast.Type) string {
	switch t := t.(type) {
	case *ast.Pointer:
		return "*mut " + rustType(t.Elem)
	case *ast.Array:
		return "[" + rustType(t.Elem) + "; " + strconv.FormatUint(t.Len, 10) + "]"
	case *ast.Base:
		if t.Kind == ast.Named {
			return rustIdent(t.Name)
		}
		return t.Kind.String()
	default:
		panic("emit: unknown type node")
	}
}

func rustField(f ast.Field) string {
	mustBeSane(f.Type)
	return rustIdent(f.Name) + ": " + rustType(f.Type)
}

func rustParams(args []ast.Field) string {
	parts := make([]string, len(args))
	for i, f := range args {
		parts[i] = rustField(f)
	}
	return strings.Join(parts, ", ")
}

func rustCallArgs(args []ast.Field) string {
	parts := make([]string, len(args))
	for i, f := range args {
		parts[i] = rustIdent(f.Name)
	}
	return strings.Join(parts, ", ")
}

func rustReturn(t ast.Type) string {
	if t == nil {
		return ""
	}
	mustBeReturnable(t)
	return " -> " + rustType(t)
}

// rustIdent escapes identifiers that collide with Rust keywords. The path
// keywords cannot be raw identifiers and get a trailing underscore instead.
func rustIdent(name string) string {
	switch name {
	case "self", "Self", "super", "crate", "_":
		return name + "_"
	}
	if _, ok := rustKeywords[name]; ok {
		return "r#" + name
	}
	return name
}

var rustKeywords = map[string]struct{}{
	"as": {}, "async": {}, "await": {}, "break": {}, "const": {}, "continue": {},
	"dyn": {}, "else": {}, "enum": {}, "extern": {}, "false": {}, "fn": {},
	"for": {}, "gen": {}, "if": {}, "impl": {}, "in": {}, "let": {}, "loop": {},
	"match": {}, "mod": {}, "move": {}, "mut": {}, "pub": {}, "ref": {},
	"return": {}, "static": {}, "struct": {}, "trait": {}, "true": {}, "try": {},
	"type": {}, "unsafe": {}, "use": {}, "where": {}, "while": {},
	"abstract": {}, "become": {}, "box": {}, "do": {}, "final": {}, "macro": {},
	"override": {}, "priv": {}, "typeof": {}, "unsized": {}, "virtual": {}, "yield": {},
}
