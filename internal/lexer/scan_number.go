package lexer

import (
	"svast/internal/token"
)

// scanNumber consumes a decimal run, or a sized literal <digits>'[s]<h|d|b|o><digits>.
// When the tick is not followed by a radix and at least one radix digit the
// literal ends before the tick, which is then lexed as a symbol.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '\'' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == 's' || b == 'S' {
			lx.cursor.Bump()
		}
		if isRadix(lx.cursor.Peek()) && isRadixDigit(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			for isRadixDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(save)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
