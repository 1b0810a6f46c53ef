// Package token defines lexical token kinds and trivia for the dandiya IDL.
// Invariants:
//   - Token.Text is a slice of the original source.
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments never appear in the token stream. They are
//     returned as a Run alongside the token that follows them.
//   - Integer type names (u8, i64, ...) are identifiers. The parser
//     recognizes them, not the lexer.
package token
