package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FormatShortDiagnostics renders diagnostics one per line as
// "{severity} {code} {path}:{line}:{col} {message}", sorted deterministically.
// The result is empty when nothing is given.
func FormatShortDiagnostics(diags []Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]Diagnostic, len(diags))
	copy(rendered, diags)
	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Pos.Line != dj.Pos.Line {
			return di.Pos.Line < dj.Pos.Line
		}
		if di.Pos.Col != dj.Pos.Col {
			return di.Pos.Col < dj.Pos.Col
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s",
			severityLabel(d.Severity), d.Code.ID(), normalizePath(d.Path), d.Pos.Line, d.Pos.Col, sanitizeMessage(d.Message))
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	default:
		return "error"
	}
}

func sanitizeMessage(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
