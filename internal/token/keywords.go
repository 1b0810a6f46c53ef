package token

var keywords = map[string]Kind{
	"fn":     KwFn,
	"struct": KwStruct,
	"opaque": KwOpaque,
	"const":  KwConst,
}

// LookupKeyword reports the keyword kind for ident.
// Keywords are case-sensitive; only the lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
