package lexer

import (
	"bytes"

	"svast/internal/diag"
	"svast/internal/token"
)

// scanString consumes "..." verbatim; backslashes get no special treatment.
// Without a closing quote the opening quote is dropped like any unknown
// character and ok is false, so lexing resumes right after it.
func (lx *Lexer) scanString() (tok token.Token, ok bool) {
	start := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off+1 : lx.cursor.Limit]
	end := bytes.IndexByte(rest, '"')
	if end < 0 {
		lx.cursor.Bump()
		lx.report(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal, quote dropped")
		return token.Token{}, false
	}
	lx.cursor.Advance(uint32(end) + 2) // #nosec G115 -- end < Limit
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.String, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}, true
}
