package parser

import (
	"strings"

	"svast/internal/ast"
	"svast/internal/token"
)

// parseAlways handles `always* [@(...) | @* | @name] body`.
func (p *Parser) parseAlways() *ast.Always {
	mark := p.cur.mark()
	open := p.cur.advance()
	node := &ast.Always{Process: open.Text}
	if p.cur.peek().IsSymbol('@') {
		node.Sensitivity = ast.Str(p.parseSensitivity())
	}
	node.Body = p.parseBody(open)
	node.Loc = p.cur.spanSince(mark)
	return node
}

func (p *Parser) parseSensitivity() string {
	toks := []token.Token{p.cur.advance()}
	switch next := p.cur.peek(); {
	case next.IsSymbol('('):
		group, _ := p.balanced('(', ')')
		toks = append(toks, group...)
	case next.IsSymbol('*'), next.Kind == token.Ident:
		toks = append(toks, p.cur.advance())
	}
	return joinCompact(toks)
}

// parseIf handles `if (cond) body [else body]`.
func (p *Parser) parseIf() *ast.If {
	mark := p.cur.mark()
	open := p.cur.advance()
	node := &ast.If{}
	if p.cur.peek().IsSymbol('(') {
		node.Cond = joinCompact(p.parenContents())
	}
	node.Then = p.parseBody(open)
	if tok := p.cur.peek(); tok.Is(token.KwElse) {
		p.cur.advance()
		alt := p.parseBody(tok)
		node.Else = &alt
	}
	node.Loc = p.cur.spanSince(mark)
	return node
}

// parseCase handles `case (expr) items endcase`. Arms stay Statements.
func (p *Parser) parseCase() *ast.Case {
	mark := p.cur.mark()
	open := p.cur.advance()
	node := &ast.Case{}
	if p.cur.peek().IsSymbol('(') {
		node.Expr = joinCompact(p.parenContents())
	} else {
		var sel []token.Token
		for {
			tok := p.cur.peek()
			if tok.IsEOF() || p.stops.symbol(tok) || p.stops.keyword(tok) || p.fenced(tok) {
				break
			}
			sel = append(sel, p.cur.advance())
		}
		node.Expr = joinCompact(sel)
	}
	node.Body = p.parseBlock(open, token.KwEndcase)
	node.Loc = p.cur.spanSince(mark)
	return node
}

// parseNested handles `begin [: label] items end [: label]`.
func (p *Parser) parseNested() *ast.NestedBlock {
	mark := p.cur.mark()
	open := p.cur.advance()
	p.skipEndLabel()
	node := &ast.NestedBlock{Body: p.parseBlock(open, token.KwEnd)}
	node.Loc = p.cur.spanSince(mark)
	return node
}

// parseStatement joins raw token text with single spaces up to a stop
// symbol (consumed) or a stop keyword or fence (left in place). The first
// token is always taken. A terminator no open construct owns, such as the
// endclass of a class inside a module, is a statement on its own.
func (p *Parser) parseStatement() *ast.Statement {
	mark := p.cur.mark()
	first := p.cur.advance()
	parts := []string{first.Text}
	if first.Kind == token.KindKeyword && first.Keyword.IsCloser() {
		p.skipEndLabel()
		return &ast.Statement{Code: first.Text, Loc: p.cur.spanSince(mark)}
	}
	for {
		tok := p.cur.peek()
		if tok.IsEOF() || p.stops.keyword(tok) || p.fenced(tok) {
			break
		}
		p.cur.advance()
		if p.stops.symbol(tok) {
			break
		}
		parts = append(parts, tok.Text)
	}
	return &ast.Statement{Code: strings.Join(parts, " "), Loc: p.cur.spanSince(mark)}
}

// parenContents consumes a parenthesised group and returns the tokens
// between the outer parentheses.
func (p *Parser) parenContents() []token.Token {
	toks, closed := p.balanced('(', ')')
	inner := toks[1:]
	if closed {
		inner = inner[:len(inner)-1]
	}
	return inner
}
