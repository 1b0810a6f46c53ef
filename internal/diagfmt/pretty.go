package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"dandiya/internal/diag"
)

type palette struct {
	location *color.Color
	message  *color.Color
	code     *color.Color
	caret    *color.Color
	sev      map[diag.Severity]*color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		location: color.New(color.Bold),
		message:  color.New(color.Bold),
		code:     color.New(color.FgHiBlack),
		caret:    color.New(color.FgGreen, color.Bold),
		sev: map[diag.Severity]*color.Color{
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevError:   color.New(color.FgRed, color.Bold),
		},
	}
	all := []*color.Color{p.location, p.message, p.code, p.caret}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty writes every diagnostic of the bag in its positional form:
//
//	<path>:<line>:<col>: <message>
//	<offending line>
//	<caret>
//
// Without color, ShowCode and with PathModeAuto the output of a single
// diagnostic is exactly diag.Diagnostic.Render. Sort the bag beforehand for
// a stable order.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if err := PrettyDiagnostic(w, d, opts); err != nil {
			return err
		}
	}
	return nil
}

// PrettyDiagnostic renders one diagnostic.
func PrettyDiagnostic(w io.Writer, d diag.Diagnostic, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	path := formatPath(d.Path, opts.PathMode, opts.BaseDir)

	var b strings.Builder
	b.WriteString(p.location.Sprintf("%s:%d:%d:", path, d.Pos.Line, d.Pos.Col))
	b.WriteByte(' ')
	if opts.Color {
		if c, ok := p.sev[d.Severity]; ok {
			b.WriteString(c.Sprint(d.Severity.String()))
			b.WriteString(": ")
		}
	}
	b.WriteString(p.message.Sprint(d.Message))
	if opts.ShowCode {
		b.WriteByte(' ')
		b.WriteString(p.code.Sprintf("[%s]", d.Code.ID()))
	}
	b.WriteByte('\n')
	b.WriteString(d.LineText)
	b.WriteByte('\n')
	b.WriteString(p.caret.Sprint(d.CaretLine()))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary renders the closing "N error(s)" line, or "" for an empty bag.
func Summary(bag *diag.Bag) string {
	var errs, warns int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	switch {
	case errs == 0 && warns == 0:
		return ""
	case warns == 0:
		return fmt.Sprintf("%d %s", errs, plural(errs, "error"))
	case errs == 0:
		return fmt.Sprintf("%d %s", warns, plural(warns, "warning"))
	default:
		return fmt.Sprintf("%d %s, %d %s", errs, plural(errs, "error"), warns, plural(warns, "warning"))
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
