package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexInvalidChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002
	LexNumberOverflow           Code = 1003
	LexBadArrow                 Code = 1004

	// Syntax
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynBadVersion      Code = 2002
	SynInvalidType     Code = 2003
	SynInvalidReturn   Code = 2004

	// Semantic
	SemaInfo             Code = 3000
	SemaDuplicateSymbol  Code = 3001
	SemaDuplicateVersion Code = 3002

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Project
	ProjInfo            Code = 5000
	ProjInvalidManifest Code = 5001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexInvalidChar:              "Invalid character",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexNumberOverflow:           "Integer literal overflows u64",
		LexBadArrow:                 "Expected '>' after '-'",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynBadVersion:               "Invalid version identifier",
		SynInvalidType:              "Invalid type",
		SynInvalidReturn:            "Invalid return type",
		SemaInfo:                    "Semantic information",
		SemaDuplicateSymbol:         "Duplicate symbol",
		SemaDuplicateVersion:        "Duplicate version",
		IOLoadFileError:             "I/O load file error",
		IOWriteFileError:            "I/O write file error",
		ProjInfo:                    "Project information",
		ProjInvalidManifest:         "Invalid project manifest",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
