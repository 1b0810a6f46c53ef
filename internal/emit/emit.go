package emit

import (
	"fmt"
	"strings"

	"dandiya/internal/ast"
	"dandiya/internal/token"
)

// Emit renders unit for lang.
func Emit(unit *ast.Unit, lang Language, opts Options) (string, error) {
	switch lang {
	case C:
		return CHeader(unit, opts), nil
	case Rust:
		return RustBindings(unit, opts), nil
	default:
		return "", fmt.Errorf("emit: unsupported language %s", lang)
	}
}

// mustBeSane panics on a type the parser never produces.
func mustBeSane(t ast.Type) {
	if why := ast.Violation(t); why != "" {
		panic(fmt.Errorf("emit: invalid type %s: %s", t, why))
	}
}

// mustBeReturnable panics on an array in return position.
func mustBeReturnable(t ast.Type) {
	mustBeSane(t)
	if ast.ContainsArray(t) {
		panic(fmt.Errorf("emit: invalid return type %s: functions cannot return arrays", t))
	}
}

// writer collects output shared by both targets.
type writer struct {
	buf  strings.Builder
	opts Options
	// directive is set while a preprocessor line is still open.
	directive bool
}

func (w *writer) printf(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

func (w *writer) str(s string) {
	w.buf.WriteString(s)
}

// directivef writes a preprocessor line. It starts on a fresh line and
// stays open until the next trivia run or declaration closes it.
func (w *writer) directivef(format string, args ...any) {
	s := w.buf.String()
	if rest := s[strings.LastIndexByte(s, '\n')+1:]; strings.TrimLeft(rest, " \t") != "" {
		w.str("\n")
	}
	w.printf(format, args...)
	w.directive = true
}

// run writes trivia, ending an open directive first unless the run itself
// ends the line.
func (w *writer) run(r token.Run) {
	if w.directive && !endsLine(r) {
		w.str("\n")
	}
	w.directive = false
	w.str(r.String())
}

// endsLine reports whether r terminates the current source line. Block
// comments do not: the preprocessor sees them as a single space.
func endsLine(r token.Run) bool {
	for _, tv := range r {
		switch tv.Kind {
		case token.TriviaLineComment:
			return true
		case token.TriviaWhitespace:
			if strings.Contains(tv.Text, "\n") {
				return true
			}
		}
	}
	return false
}

// decl writes the prefix trivia of d and calls render. Without trivia,
// every non-empty declaration ends its own line.
func (w *writer) decl(d ast.Decl, render func()) {
	if w.opts.PreserveTrivia {
		w.run(d.Leading())
		render()
		return
	}
	before := w.buf.Len()
	render()
	if w.buf.Len() > before {
		w.str("\n")
	}
	w.directive = false
}

// trailing writes the unit's trailing trivia and terminates the last line.
func (w *writer) trailing(u *ast.Unit) {
	if w.opts.PreserveTrivia {
		w.run(u.Trailing)
	}
	w.directive = false
	w.endLine()
}

func (w *writer) endLine() {
	if n := w.buf.Len(); n > 0 && !strings.HasSuffix(w.buf.String(), "\n") {
		w.str("\n")
	}
}

func (w *writer) String() string {
	return w.buf.String()
}
