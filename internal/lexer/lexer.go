package lexer

import (
	"svast/internal/diag"
	"svast/internal/source"
	"svast/internal/token"
)

// Lexer turns the bytes of one file into tokens on demand.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. Whitespace and comments are
// skipped and unrecognised bytes are dropped, so Next never fails.
// After the input is exhausted it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
		}

		ch := lx.cursor.Peek()
		switch {
		case isIdentStartByte(ch):
			return lx.scanIdentOrKeyword()
		case ch == '$' && isIdentStartByte(lx.cursor.PeekAt(1)):
			return lx.scanSystemIdent()
		case isDec(ch):
			return lx.scanNumber()
		case ch == '"':
			if tok, ok := lx.scanString(); ok {
				return tok
			}
		case isSymbolByte(ch):
			return lx.scanSymbol()
		default:
			lx.dropRune()
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan is a zero-width span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// dropRune discards one byte or one whole UTF-8 sequence.
func (lx *Lexer) dropRune() {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexDroppedChar, sp, "unrecognised character "+quoteBytes(lx.file.Content[sp.Start:sp.End])+" dropped")
}
