package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexDroppedChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// structural
	SynInfo              Code = 2000
	SynMissingTerminator Code = 2001
	SynUnclosedParen     Code = 2002
	SynUnclosedBracket   Code = 2003
	SynNestingTooDeep    Code = 2004
	SynStrayTopLevel     Code = 2005

	// io
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexDroppedChar:              "Unrecognised character dropped",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynInfo:                     "Syntax information",
	SynMissingTerminator:        "Construct ended without its terminator",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBracket:          "Unclosed bracket",
	SynNestingTooDeep:           "Nesting too deep",
	SynStrayTopLevel:            "Stray tokens outside any declaration",
	IOLoadFileError:             "Failed to load file",
	IOCacheError:                "Cache read or write failed",
}

// ID returns the stable short identifier, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
