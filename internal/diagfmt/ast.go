package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"dandiya/internal/ast"
)

// FieldOutput is a struct member or a parameter.
type FieldOutput struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// DeclOutput is one declaration. Only the members of its kind are set.
type DeclOutput struct {
	Kind      string        `json:"kind"`
	Name      string        `json:"name"`
	Symbol    string        `json:"symbol"`
	Line      uint32        `json:"line"`
	Col       uint32        `json:"col"`
	Leading   string        `json:"leading,omitempty"`
	Version   string        `json:"version,omitempty"`
	Args      []FieldOutput `json:"args,omitempty"`
	Ret       string        `json:"ret,omitempty"`
	Fields    []FieldOutput `json:"fields,omitempty"`
	Value     *uint64       `json:"value,omitempty"`
	EmptyBody bool          `json:"empty_body,omitempty"`
}

// VersionsOutput is the registry entry of one versioned function.
type VersionsOutput struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
	Latest   string   `json:"latest"`
}

// UnitOutput is the root object of the AST dump.
type UnitOutput struct {
	Source   string           `json:"source"`
	Decls    []DeclOutput     `json:"decls"`
	Versions []VersionsOutput `json:"versions"`
	Trailing string           `json:"trailing,omitempty"`
}

// BuildUnitOutput converts unit to its JSON model.
func BuildUnitOutput(unit *ast.Unit, name string) UnitOutput {
	out := UnitOutput{
		Source:   formatPath(name, PathModeAuto, ""),
		Decls:    make([]DeclOutput, 0, unit.Len()),
		Versions: make([]VersionsOutput, 0),
		Trailing: unit.Trailing.String(),
	}
	for _, d := range unit.Decls() {
		pos := d.Position()
		item := DeclOutput{
			Kind:    d.Kind().String(),
			Name:    d.DeclName(),
			Symbol:  d.QualifiedName(),
			Line:    pos.Line,
			Col:     pos.Col,
			Leading: d.Leading().String(),
		}
		switch decl := d.(type) {
		case *ast.FnDecl:
			item.Version = decl.Version.String()
			item.Args = fieldsOutput(decl.Args)
			if decl.Ret != nil {
				item.Ret = decl.Ret.String()
			}
		case *ast.StructDecl:
			item.Fields = fieldsOutput(decl.Fields)
			item.EmptyBody = len(decl.Fields) == 0
		case *ast.ConstDecl:
			v := decl.Value
			item.Value = &v
		}
		out.Decls = append(out.Decls, item)
	}
	for _, base := range unit.BaseNames() {
		latest, _ := unit.LatestVersion(base)
		entry := VersionsOutput{Name: base, Latest: latest.String()}
		for _, v := range unit.Versions(base) {
			entry.Versions = append(entry.Versions, v.String())
		}
		out.Versions = append(out.Versions, entry)
	}
	return out
}

func fieldsOutput(fields []ast.Field) []FieldOutput {
	if len(fields) == 0 {
		return nil
	}
	out := make([]FieldOutput, len(fields))
	for i, f := range fields {
		out[i] = FieldOutput{Name: f.Name, Type: f.Type.String(), Line: f.Pos.Line, Col: f.Pos.Col}
	}
	return out
}

// FormatASTJSON writes unit as an indented UnitOutput document.
func FormatASTJSON(w io.Writer, unit *ast.Unit, name string) error {
	if unit == nil {
		return fmt.Errorf("nil unit")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildUnitOutput(unit, name))
}
