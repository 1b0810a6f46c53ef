// Package driver connects the compiler core to the file system: it loads
// sources, runs the lexer, parser and emitters, and generates whole
// directories in parallel with an on-disk cache.
package driver
