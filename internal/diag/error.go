package diag

import (
	"fmt"

	"dandiya/internal/source"
)

// Error is a compilation failure. Its Error string is the full rendering.
type Error struct {
	Diagnostic Diagnostic
}

func (e *Error) Error() string {
	return e.Diagnostic.Render()
}

// Errorf builds a fatal *Error at byte offset off of file.
func Errorf(code Code, file *source.File, off uint32, format string, args ...any) *Error {
	return &Error{Diagnostic: New(SevError, code, file, off, fmt.Sprintf(format, args...))}
}

// ErrorAt builds a fatal *Error at a resolved position.
func ErrorAt(code Code, file *source.File, pos source.Pos, format string, args ...any) *Error {
	return &Error{Diagnostic: At(SevError, code, file, pos, fmt.Sprintf(format, args...))}
}
