package token

import (
	"svast/internal/source"
)

// Token is a classified lexeme. Tokens are values and never mutated after lexing.
type Token struct {
	Kind    Kind
	Keyword Keyword
	Text    string
	Span    source.Span
}

// Is reports whether t is the keyword kw.
func (t Token) Is(kw Keyword) bool {
	return t.Kind == KindKeyword && t.Keyword == kw
}

// IsSymbol reports whether t is the punctuation character ch.
func (t Token) IsSymbol(ch byte) bool {
	return t.Kind == Symbol && len(t.Text) == 1 && t.Text[0] == ch
}

// IsEOF reports whether t marks the end of the stream.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return t.Kind.String() + "(" + t.Text + ")"
}
