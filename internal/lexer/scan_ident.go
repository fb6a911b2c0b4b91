package lexer

import (
	"svast/internal/token"
)

// scanIdentOrKeyword consumes [A-Za-z_][A-Za-z0-9_$]* and classifies it.
// Keyword matching is exact and case sensitive.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: token.KindKeyword, Keyword: kw, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanSystemIdent consumes a system task or function name such as $display.
func (lx *Lexer) scanSystemIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Ident, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
