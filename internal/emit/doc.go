// Package emit renders a parsed unit as a C header or as Rust FFI bindings.
//
// Emitters are pure: they read the unit and never modify it, and the same
// unit with the same Options always renders byte-identical text. Both
// emitters panic when handed a type the parser would have rejected, since
// such a unit cannot come out of parser.Parse.
package emit
