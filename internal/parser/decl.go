package parser

import (
	"svast/internal/ast"
	"svast/internal/diag"
	"svast/internal/token"
)

// parseClass handles `class Name [#(...)] [extends Base [#(...)]]; ... endclass`.
// Only function members are kept.
func (p *Parser) parseClass() *ast.Class {
	mark := p.cur.mark()
	open := p.cur.advance()
	cls := &ast.Class{Name: p.declName(token.KwEndclass)}
	p.skipParamList()
	if tok := p.cur.peek(); tok.Kind == token.Ident && tok.Text == "extends" {
		p.cur.advance()
		if p.cur.peek().Kind == token.Ident {
			cls.Extends = ast.Str(p.cur.advance().Text)
		}
		p.skipParamList()
	}
	p.cur.eatSymbol(';')

	p.pushFence(token.KwEndclass)
	for {
		tok := p.cur.peek()
		if tok.Is(token.KwEndclass) {
			p.cur.advance()
			p.skipEndLabel()
			cls.Terminated = true
			break
		}
		if tok.IsEOF() || p.fenced(tok) {
			p.missing(open, "endclass")
			break
		}
		if tok.Is(token.KwFunction) {
			if member := p.parseItem(); member != nil {
				cls.Members = append(cls.Members, member)
			}
			continue
		}
		p.cur.advance()
	}
	p.popFence()
	cls.Loc = p.cur.spanSince(mark)
	return cls
}

// parseModule handles `module Name [#(params)] [(ports)]; body endmodule`.
func (p *Parser) parseModule() *ast.Module {
	mark := p.cur.mark()
	open := p.cur.advance()
	mod := &ast.Module{Name: p.declName(token.KwEndmodule)}
	if p.cur.peek().IsSymbol('#') && p.cur.peekAt(1).IsSymbol('(') {
		p.cur.advance()
		mod.Params = p.parseList()
	}
	if p.cur.peek().IsSymbol('(') {
		mod.Ports = p.parseList()
	}
	p.cur.eatSymbol(';')
	mod.Body = p.parseBlock(open, token.KwEndmodule)
	mod.Loc = p.cur.spanSince(mark)
	return mod
}

// parseFunction handles
// `function [automatic|static] [ret] Name [(args)]; body endfunction`.
// The last word before '(' or ';' is the name and the words before it
// form the return type, so `function new(...)` has none.
func (p *Parser) parseFunction() *ast.Function {
	mark := p.cur.mark()
	open := p.cur.advance()
	fn := &ast.Function{}
	if tok := p.cur.peek(); tok.Kind == token.Ident && (tok.Text == "automatic" || tok.Text == "static") {
		if next := p.cur.peekAt(1); !next.IsSymbol('(') && !next.IsSymbol(';') {
			fn.Lifetime = p.cur.advance().Text
		}
	}

	var header []token.Token
	for {
		tok := p.cur.peek()
		if tok.IsEOF() || tok.IsSymbol('(') || tok.IsSymbol(';') || structural(tok) {
			break
		}
		header = append(header, p.cur.advance())
	}
	if n := len(header); n > 0 {
		fn.Name = header[n-1].Text
		fn.ReturnType = joinCompact(header[:n-1])
	}

	if p.cur.peek().IsSymbol('(') {
		fn.Args = p.parseList()
	}
	p.cur.eatSymbol(';')
	fn.Body = p.parseBlock(open, token.KwEndfunction)
	fn.Loc = p.cur.spanSince(mark)
	return fn
}

// declName consumes whatever token follows a declaration keyword, unless
// the input ends or the declaration's own terminator follows at once.
func (p *Parser) declName(term token.Keyword) string {
	tok := p.cur.peek()
	if tok.IsEOF() || tok.Is(term) {
		return ""
	}
	return p.cur.advance().Text
}

// parseList consumes a parenthesised list and returns the raw text of
// every token inside it, minus the top-level commas.
func (p *Parser) parseList() []string {
	toks, closed := p.balanced('(', ')')
	inner := toks[1:]
	if closed {
		inner = inner[:len(inner)-1]
	}
	var out []string
	depth := 0
	for _, tok := range inner {
		switch {
		case tok.IsSymbol('('):
			depth++
		case tok.IsSymbol(')'):
			depth--
		case tok.IsSymbol(',') && depth == 0:
			continue
		}
		out = append(out, tok.Text)
	}
	return out
}

// skipParamList drops a `#( ... )` parameter list after a class name.
func (p *Parser) skipParamList() {
	if p.cur.peek().IsSymbol('#') && p.cur.peekAt(1).IsSymbol('(') {
		p.cur.advance()
		p.balanced('(', ')')
	}
}

// skipEndLabel drops the optional `: label` after a terminator keyword.
func (p *Parser) skipEndLabel() {
	if p.cur.peek().IsSymbol(':') && p.cur.peekAt(1).Kind == token.Ident {
		p.cur.advance()
		p.cur.advance()
	}
}

// balanced consumes the group opened by the current token through its
// matching close. It stops early, leaving the token in place, at EOF, at a
// structural keyword or at ';'. The returned slice starts with the opener
// and ends with the closer when closed is true.
func (p *Parser) balanced(open, close byte) (toks []token.Token, closed bool) {
	first := p.cur.advance()
	toks = append(toks, first)
	depth := 1
	for {
		tok := p.cur.peek()
		if tok.IsEOF() || structural(tok) || tok.IsSymbol(';') {
			code := diag.SynUnclosedParen
			if open == '[' {
				code = diag.SynUnclosedBracket
			}
			p.report(code, diag.SevWarning, first.Span, "unclosed "+string(open), nil)
			return toks, false
		}
		switch {
		case tok.IsSymbol(open):
			depth++
		case tok.IsSymbol(close):
			depth--
		}
		toks = append(toks, p.cur.advance())
		if depth == 0 {
			return toks, true
		}
	}
}

// structural reports whether tok is a keyword other than a data type or a
// port direction. Such keywords never occur inside a parenthesised list.
func structural(tok token.Token) bool {
	return tok.Kind == token.KindKeyword && !tok.Keyword.IsDataType() && !tok.Keyword.IsDirection()
}
