package fuzztests

import (
	"testing"
)

// maxFuzzInput bounds a single input.
const maxFuzzInput = 16 << 10

var languageSeeds = []string{
	"",
	"fn(v1) f();",
	"fn(v1) my_func(a: u8, b: u16) -> u64;",
	"struct foo { foo: *u64, bar: [u16;4], baz: [**u8;8] }",
	"struct A {} opaque B; const C = 18446744073709551615;",
	"// line\n/* block */ fn(v2) g(x: *[u8; 2]);",
	"fn(v1) f() -> [u8; 4];",
	"fn(v1) f(); fn(v1) f();",
	"fn(v01) f(); fn(v1) f();",
	"/* unterminated",
	"const N = 18446744073709551616;",
	"fn(v1) f() - u8;",
	"struct s { a: [[u8; 2]; 2] }",
	"fn(v99999999999999999999) f();",
	"\xef\xbb\xbfopaque h;\r\n",
	"struct é {}",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
