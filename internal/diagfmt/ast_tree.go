package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"dandiya/internal/ast"
	"dandiya/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (n *treeNode) add(label string) *treeNode {
	child := &treeNode{label: label}
	n.children = append(n.children, child)
	return child
}

// buildUnitTreeNode labels the root with the source name and appends a node
// per declaration followed by the version registry.
func buildUnitTreeNode(unit *ast.Unit, name string) *treeNode {
	if name == "" {
		name = source.AnonymousName
	}
	root := &treeNode{label: fmt.Sprintf("Unit %s (%d decls)", name, unit.Len())}
	for i, d := range unit.Decls() {
		root.children = append(root.children, buildDeclTreeNode(d, i))
	}
	if bases := unit.BaseNames(); len(bases) > 0 {
		reg := root.add("Versions")
		for _, base := range bases {
			vs := unit.Versions(base)
			parts := make([]string, len(vs))
			for i, v := range vs {
				parts[i] = v.String()
			}
			latest, _ := unit.LatestVersion(base)
			reg.add(fmt.Sprintf("%s: %s (latest %s)", base, strings.Join(parts, ", "), latest))
		}
	}
	return root
}

func buildDeclTreeNode(d ast.Decl, idx int) *treeNode {
	pos := d.Position()
	at := fmt.Sprintf("@%d:%d", pos.Line, pos.Col)
	switch decl := d.(type) {
	case *ast.FnDecl:
		node := &treeNode{label: fmt.Sprintf("[%d] fn %s %s %s", idx, decl.Name, decl.Version, at)}
		if len(decl.Args) > 0 {
			args := node.add("Args")
			for _, a := range decl.Args {
				args.add(fieldLabel(a))
			}
		}
		if decl.Ret != nil {
			node.add("Ret " + decl.Ret.String())
		}
		return node
	case *ast.StructDecl:
		node := &treeNode{label: fmt.Sprintf("[%d] struct %s %s", idx, decl.Name, at)}
		for _, f := range decl.Fields {
			node.add(fieldLabel(f))
		}
		return node
	case *ast.OpaqueDecl:
		return &treeNode{label: fmt.Sprintf("[%d] opaque %s %s", idx, decl.Name, at)}
	case *ast.ConstDecl:
		return &treeNode{label: fmt.Sprintf("[%d] const %s = %d %s", idx, decl.Name, decl.Value, at)}
	default:
		return &treeNode{label: fmt.Sprintf("[%d] <unknown decl %T>", idx, d)}
	}
}

func fieldLabel(f ast.Field) string {
	return fmt.Sprintf("%s: %s", f.Name, f.Type)
}

// renderTree draws node with box-drawing connectors, one line per node.
func renderTree(node *treeNode) []string {
	lines := []string{node.label}
	for i, child := range node.children {
		last := i == len(node.children)-1
		branch, indent := "├─ ", "│  "
		if last {
			branch, indent = "└─ ", "   "
		}
		for j, line := range renderTree(child) {
			if j == 0 {
				lines = append(lines, branch+line)
			} else {
				lines = append(lines, indent+line)
			}
		}
	}
	return lines
}

// FormatASTPretty prints the declarations of unit as a tree.
func FormatASTPretty(w io.Writer, unit *ast.Unit, name string) error {
	if unit == nil {
		return fmt.Errorf("nil unit")
	}
	for _, line := range renderTree(buildUnitTreeNode(unit, name)) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
