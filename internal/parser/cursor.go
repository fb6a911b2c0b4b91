package parser

import (
	"svast/internal/source"
	"svast/internal/token"
)

// cursor reads a token slice front to back. Reads past the end keep
// returning the EOF token and never move pos beyond len(toks).
type cursor struct {
	toks []token.Token
	pos  int
	end  token.Token
}

func newCursor(toks []token.Token) cursor {
	c := cursor{toks: toks, end: token.Token{Kind: token.EOF}}
	for i, tok := range toks {
		if tok.Kind == token.EOF {
			c.toks = toks[:i]
			c.end = tok
			break
		}
	}
	if n := len(c.toks); n > 0 && c.end.Span.Empty() && c.end.Span.Start == 0 {
		sp := c.toks[n-1].Span
		c.end.Span = source.Span{File: sp.File, Start: sp.End, End: sp.End}
	}
	return c
}

func (c *cursor) peek() token.Token {
	return c.peekAt(0)
}

func (c *cursor) peekAt(n int) token.Token {
	if i := c.pos + n; i < len(c.toks) {
		return c.toks[i]
	}
	return c.end
}

// advance returns the current token and moves past it.
// At the end it returns EOF and stays put.
func (c *cursor) advance() token.Token {
	tok := c.peek()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return tok
}

func (c *cursor) atEOF() bool {
	return c.pos >= len(c.toks)
}

func (c *cursor) eatSymbol(ch byte) bool {
	if c.peek().IsSymbol(ch) {
		c.advance()
		return true
	}
	return false
}

func (c *cursor) eatKeyword(kw token.Keyword) bool {
	if c.peek().Is(kw) {
		c.advance()
		return true
	}
	return false
}

func (c *cursor) mark() int {
	return c.pos
}

// spanSince covers the tokens consumed since mark, or is an empty span at
// the current token when nothing was consumed.
func (c *cursor) spanSince(mark int) source.Span {
	if mark >= c.pos {
		sp := c.peek().Span
		return source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	}
	return c.toks[mark].Span.Cover(c.toks[c.pos-1].Span)
}
