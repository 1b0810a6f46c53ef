// Package fuzztests houses Go fuzz harnesses for the dandiya pipeline
// (source -> lexer -> parser -> emitters). They guard against panics, hangs
// and lost source text on arbitrary inputs.
package fuzztests
