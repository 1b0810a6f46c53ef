package emit

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultHeaderGuard is used when Options.HeaderGuard is empty.
const DefaultHeaderGuard = "DANDIYA_API_H"

// ExportMacro prefixes C prototypes when Options.ExportSymbols is set.
const ExportMacro = "DANDIYA_EXPORT"

type Options struct {
	// ForwardLatestVersionAPI makes the Rust target add one unversioned
	// wrapper per function, forwarding to its latest version.
	ForwardLatestVersionAPI bool
	// ExportSymbols marks C prototypes with ExportMacro for shared library builds.
	ExportSymbols bool
	// HeaderGuard names the C include guard macro.
	HeaderGuard string
	// PreserveTrivia re-emits comments and whitespace around declarations verbatim.
	PreserveTrivia bool
}

func DefaultOptions() Options {
	return Options{
		ForwardLatestVersionAPI: true,
		HeaderGuard:             DefaultHeaderGuard,
		PreserveTrivia:          true,
	}
}

func (o Options) guard() string {
	if o.HeaderGuard == "" {
		return DefaultHeaderGuard
	}
	return o.HeaderGuard
}

// Language selects an output target.
type Language uint8

const (
	C Language = iota
	Rust
)

// Languages lists every target in a stable order.
var Languages = []Language{C, Rust}

func (l Language) String() string {
	switch l {
	case C:
		return "c"
	case Rust:
		return "rust"
	default:
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
}

// Ext returns the file extension of the target, dot included.
func (l Language) Ext() string {
	switch l {
	case C:
		return ".h"
	case Rust:
		return ".rs"
	default:
		return ""
	}
}

// ParseLanguage accepts "c", "h", "rust" and "rs", case-insensitively.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "h":
		return C, nil
	case "rust", "rs":
		return Rust, nil
	default:
		return 0, fmt.Errorf("unknown language %q (expected c or rust)", s)
	}
}

// GuardName derives an include guard from a source path: "api/foo-bar.dy"
// becomes "FOO_BAR_H". It falls back to DefaultHeaderGuard.
func GuardName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return DefaultHeaderGuard
	}

	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := cases.Upper(language.Und).String(b.String())
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name + "_H"
}
