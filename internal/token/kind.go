package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// UintLit represents an unsigned decimal integer literal.
	UintLit

	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwOpaque represents the 'opaque' keyword.
	KwOpaque // opaque
	// KwConst represents the 'const' keyword.
	KwConst // const

	// Arrow represents the arrow operator token.
	Arrow     // ->
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Star      // *
	Colon     // :
	Comma     // ,
	Semicolon // ;
	Assign    // =
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	UintLit:   "UintLit",
	KwFn:      "KwFn",
	KwStruct:  "KwStruct",
	KwOpaque:  "KwOpaque",
	KwConst:   "KwConst",
	Arrow:     "Arrow",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Star:      "Star",
	Colon:     "Colon",
	Comma:     "Comma",
	Semicolon: "Semicolon",
	Assign:    "Assign",
}

var punctText = map[Kind]string{
	KwFn:      "fn",
	KwStruct:  "struct",
	KwOpaque:  "opaque",
	KwConst:   "const",
	Arrow:     "->",
	LBracket:  "[",
	RBracket:  "]",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Star:      "*",
	Colon:     ":",
	Comma:     ",",
	Semicolon: ";",
	Assign:    "=",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe returns the human form of a kind used in "expected X" messages.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case UintLit:
		return "unsigned integer"
	case Invalid:
		return "invalid token"
	}
	if s, ok := punctText[k]; ok {
		return "'" + s + "'"
	}
	return k.String()
}

// Punct returns the fixed text of a keyword or punctuation kind.
func (k Kind) Punct() (string, bool) {
	s, ok := punctText[k]
	return s, ok
}

// PunctKind maps a single punctuation byte to its kind.
func PunctKind(c byte) (Kind, bool) {
	switch c {
	case '[':
		return LBracket, true
	case ']':
		return RBracket, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	case '{':
		return LBrace, true
	case '}':
		return RBrace, true
	case '*':
		return Star, true
	case ':':
		return Colon, true
	case ',':
		return Comma, true
	case ';':
		return Semicolon, true
	case '=':
		return Assign, true
	default:
		return Invalid, false
	}
}
