package lexer

import (
	"svast/internal/token"
)

// symbolSet is every punctuation byte that becomes a Symbol token.
// Multi-character operators (<=, ==, ::) stay runs of single symbols.
const symbolSet = "()[]{};,:.=<>+-*/&|^~!?@#%'"

var symbolTable = func() (t [256]bool) {
	for i := 0; i < len(symbolSet); i++ {
		t[symbolSet[i]] = true
	}
	return t
}()

func isSymbolByte(b byte) bool {
	return symbolTable[b]
}

// IsSymbol reports whether ch lexes as a Symbol token.
func IsSymbol(ch byte) bool {
	return symbolTable[ch]
}

func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Symbol, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
