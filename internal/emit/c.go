package emit

import (
	"strconv"
	"strings"

	"dandiya/internal/ast"
)

// CHeader renders unit as a C header: include guard, <stdint.h>, an
// extern "C" block, one forward typedef per struct and opaque, then every
// declaration in source order.
func CHeader(unit *ast.Unit, opts Options) string {
	e := &cEmitter{w: writer{opts: opts}}
	e.preamble()
	e.forwardDecls(unit)
	for _, d := range unit.Decls() {
		e.w.decl(d, func() { e.decl(d) })
	}
	e.w.trailing(unit)
	e.postamble()
	return e.w.String()
}

type cEmitter struct {
	w writer
}

func (e *cEmitter) preamble() {
	guard := e.w.opts.guard()
	e.w.printf("#ifndef %s\n#define %s\n\n", guard, guard)
	e.w.str("#include <stdint.h>\n\n")
	if e.w.opts.ExportSymbols {
		e.w.str("#if defined(_WIN32)\n")
		e.w.printf("#define %s __declspec(dllexport)\n", ExportMacro)
		e.w.str("#else\n")
		e.w.printf("#define %s __attribute__((visibility(\"default\")))\n", ExportMacro)
		e.w.str("#endif\n\n")
	}
	e.w.str("#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")
}

func (e *cEmitter) postamble() {
	e.w.str("\n#ifdef __cplusplus\n}\n#endif\n\n")
	e.w.printf("#endif /* %s */\n", e.w.opts.guard())
}

// forwardDecls lets pointer fields refer to any struct or opaque regardless
// of declaration order.
func (e *cEmitter) forwardDecls(unit *ast.Unit) {
	wrote := false
	for _, d := range unit.Decls() {
		switch d.Kind() {
		case ast.DeclStruct, ast.DeclOpaque:
			name := d.DeclName()
			e.w.printf("typedef struct %s %s;\n", name, cTypedefName(name))
			wrote = true
		}
	}
	if wrote {
		e.w.str("\n")
	}
}

func (e *cEmitter) decl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.StructDecl:
		e.w.printf("struct %s {\n", d.Name)
		for _, f := range d.Fields {
			e.w.printf("  %s;\n", cField(f))
		}
		e.w.str("};")
	case *ast.OpaqueDecl:
		// forward declared only
	case *ast.ConstDecl:
		e.w.directivef("#define %s UINT64_C(%d)", d.Name, d.Value)
	case *ast.FnDecl:
		if e.w.opts.ExportSymbols {
			e.w.str(ExportMacro + " ")
		}
		e.w.printf("%s %s(%s);", cReturn(d.Ret), d.QualifiedName(), cArgs(d.Args))
	}
}

func cTypedefName(name string) string {
	return name + "_t"
}

// cType splits t around the declarator: "uint8_t**" + "[8]" for [**u8; 8].
func cType(t ast.Type) (front, back string) {
	switch t := t.(type) {
	case *ast.Pointer:
		front, back = cType(t.Elem)
		return front + "*", back
	case *ast.Array:
		front, back = cType(t.Elem)
		return front, back + "[" + strconv.FormatUint(t.Len, 10) + "]"
	case *ast.Base:
		return cBase(t), ""
	default:
		panic("emit: unknown type node")
	}
}

func cBase(b *ast.Base) string {
	if b.Kind == ast.Named {
		return cTypedefName(b.Name)
	}
	bits := b.Kind.Bits()
	if bits == 0 {
		panic("emit: unknown base kind " + b.Kind.String())
	}
	if b.Kind.Signed() {
		return "int" + strconv.Itoa(bits) + "_t"
	}
	return "uint" + strconv.Itoa(bits) + "_t"
}

func cField(f ast.Field) string {
	mustBeSane(f.Type)
	front, back := cType(f.Type)
	return front + " " + f.Name + back
}

func cReturn(t ast.Type) string {
	if t == nil {
		return "void"
	}
	mustBeReturnable(t)
	front, back := cType(t)
	return front + back
}

// cArgs renders an empty list as "void"; "()" declares an unprototyped function in C.
func cArgs(args []ast.Field) string {
	if len(args) == 0 {
		return "void"
	}
	parts := make([]string, len(args))
	for i, f := range args {
		parts[i] = cField(f)
	}
	return strings.Join(parts, ", ")
}
