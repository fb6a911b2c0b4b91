package lexer

import (
	"svast/internal/diag"
)

// skipTrivia discards whitespace, // line comments and /* */ block comments.
// Block comments do not nest; an unterminated one runs to end of input.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isSpace(b):
			lx.cursor.Bump()
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Advance(2)
			return
		}
		lx.cursor.Bump()
	}
	lx.report(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
}
