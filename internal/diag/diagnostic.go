package diag

import (
	"fmt"
	"strings"

	"dandiya/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string     // source name, source.AnonymousName when unnamed
	Pos      source.Pos // 1-based line and column of the offending byte
	LineText string     // full text of Pos.Line without its newline
}

// New resolves the position of off inside file and captures the line text.
func New(sev Severity, code Code, file *source.File, off uint32, msg string) Diagnostic {
	lc := file.Resolve(off)
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Path:     file.Name(),
		Pos:      source.Pos{Offset: off, Line: lc.Line, Col: lc.Col},
		LineText: file.Line(lc.Line),
	}
}

// At builds a diagnostic for an already resolved position.
func At(sev Severity, code Code, file *source.File, pos source.Pos, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Path:     file.Name(),
		Pos:      pos,
		LineText: file.Line(pos.Line),
	}
}

// Header is the first line of the rendering, without a newline.
func (d Diagnostic) Header() string {
	var b strings.Builder
	d.writeHeader(&b)
	return b.String()
}

// Render produces "{name}:{line}:{col}: {message}", the offending line and a
// caret under the column, each terminated by a newline.
func (d Diagnostic) Render() string {
	var b strings.Builder
	d.writeHeader(&b)
	b.WriteByte('\n')
	b.WriteString(d.LineText)
	b.WriteByte('\n')
	b.WriteString(d.CaretLine())
	b.WriteByte('\n')
	return b.String()
}

// CaretLine returns col-1 spaces followed by '^'.
func (d Diagnostic) CaretLine() string {
	pad := 0
	if d.Pos.Col > 0 {
		pad = int(d.Pos.Col) - 1
	}
	return strings.Repeat(" ", pad) + "^"
}

func (d Diagnostic) writeHeader(b *strings.Builder) {
	name := d.Path
	if name == "" {
		name = source.AnonymousName
	}
	fmt.Fprintf(b, "%s:%d:%d: %s", name, d.Pos.Line, d.Pos.Col, d.Message)
}
