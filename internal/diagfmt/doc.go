// Package diagfmt renders diagnostics, token streams and parsed units for
// the command line, either as text or as JSON.
package diagfmt
