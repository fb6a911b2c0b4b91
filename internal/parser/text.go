package parser

import (
	"strings"

	"svast/internal/token"
)

// joinCompact concatenates token text without separators, adding a space
// only where gluing would lex differently: between two word tokens,
// after '/' before '/' or '*', and between a number and a following tick.
func joinCompact(toks []token.Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 && needsSpace(toks[i-1], tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

func needsSpace(prev, next token.Token) bool {
	switch {
	case prev.Kind.IsWord() && next.Kind.IsWord():
		return true
	case prev.IsSymbol('/') && (next.IsSymbol('/') || next.IsSymbol('*')):
		return true
	case prev.Kind == token.Number && next.IsSymbol('\''):
		return true
	}
	return false
}
