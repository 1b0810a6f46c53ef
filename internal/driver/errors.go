package driver

import (
	"strings"

	"github.com/cockroachdb/errors"

	"dandiya/internal/diag"
	"dandiya/internal/project"
)

// SourceExt is the extension every IDL source must carry.
const SourceExt = ".dy"

var (
	// ErrLoad marks failures to read a source file.
	ErrLoad = errors.New("load failed")
	// ErrWrite marks failures to store generated output.
	ErrWrite = errors.New("write failed")
	// ErrNotIDL is returned for paths without the .dy extension.
	ErrNotIDL = errors.New("not a " + SourceExt + " file")
	// ErrNotUTF8 is returned for sources that are not valid UTF-8.
	ErrNotUTF8 = errors.New("input file is not valid UTF-8")
)

// CheckSourcePath rejects paths that do not end in .dy.
func CheckSourcePath(path string) error {
	if !strings.HasSuffix(path, SourceExt) {
		return errors.Mark(errors.Newf("expected a %s file, found '%s'", SourceExt, path), ErrNotIDL)
	}
	return nil
}

func loadError(err error, path string) error {
	return errors.Mark(errors.Wrapf(err, "failed to load %s", path), ErrLoad)
}

func writeError(err error, path string) error {
	return errors.Mark(errors.Wrapf(err, "failed to write %s", path), ErrWrite)
}

// CodeOf classifies err by diagnostic code. Compilation failures keep their
// own code; anything unrecognized maps to diag.UnknownCode.
func CodeOf(err error) diag.Code {
	var de *diag.Error
	switch {
	case err == nil:
		return diag.UnknownCode
	case errors.As(err, &de):
		return de.Diagnostic.Code
	case errors.Is(err, ErrLoad), errors.Is(err, ErrNotIDL):
		return diag.IOLoadFileError
	case errors.Is(err, ErrWrite):
		return diag.IOWriteFileError
	case errors.Is(err, project.ErrInvalidManifest), errors.Is(err, project.ErrNoManifest):
		return diag.ProjInvalidManifest
	default:
		return diag.UnknownCode
	}
}

// AsDiagnostic returns the compilation failure carried by err, if any.
func AsDiagnostic(err error) (diag.Diagnostic, bool) {
	var de *diag.Error
	if errors.As(err, &de) {
		return de.Diagnostic, true
	}
	return diag.Diagnostic{}, false
}
