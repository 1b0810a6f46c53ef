// Package diag defines the compilation failure model shared by the lexer and
// the parser.
//
// A Diagnostic records a code, a severity, a message and the resolved
// position of the offending byte together with the full text of its line.
// Render produces the positional form consumed by downstream tooling:
//
//	api.dy:3:14: expected ';', found identifier 'x'
//	fn(v1) f() -> x
//	             ^
//
// The core phases are fail-fast: the first failure is returned as an *Error
// and no partial result is exposed. Bag and Reporter exist for the driver,
// which compiles many files and collects one failure per file.
//
// Package diag does not perform colored output or IO; that lives in
// internal/diagfmt and the driver.
package diag
