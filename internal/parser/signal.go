package parser

import (
	"strings"

	"svast/internal/ast"
	"svast/internal/token"
)

// parseSignal handles `[dir] type [signed|unsigned] [width]... names;`.
func (p *Parser) parseSignal() *ast.Signal {
	mark := p.cur.mark()
	sig := &ast.Signal{}
	if p.cur.peek().Keyword.IsDirection() {
		sig.Direction = p.cur.advance().Text
	}
	sig.DataType = p.cur.advance().Text
	if tok := p.cur.peek(); tok.Kind == token.Ident && (tok.Text == "signed" || tok.Text == "unsigned") {
		sig.DataType += " " + p.cur.advance().Text
	}

	var width strings.Builder
	for p.cur.peek().IsSymbol('[') {
		group, _ := p.balanced('[', ']')
		width.WriteString(joinCompact(group))
	}
	if width.Len() > 0 {
		sig.Width = ast.Str(width.String())
	}

	sig.Names = p.signalNames()
	sig.Loc = p.cur.spanSince(mark)
	return sig
}

// signalNames splits the declarators on top-level commas up to ';', which
// ends the declaration even inside an unclosed group.
// Each name keeps any unpacked dimensions or initialiser, compact-joined.
func (p *Parser) signalNames() []string {
	var names []string
	var group []token.Token
	flush := func() {
		if len(group) > 0 {
			names = append(names, joinCompact(group))
			group = group[:0]
		}
	}
	depth := 0
	for {
		tok := p.cur.peek()
		if tok.IsEOF() || p.stops.keyword(tok) || p.fenced(tok) {
			flush()
			return names
		}
		p.cur.advance()
		switch {
		case tok.IsSymbol(';'):
			flush()
			return names
		case depth == 0 && tok.IsSymbol(','):
			flush()
			continue
		case tok.IsSymbol('('), tok.IsSymbol('['), tok.IsSymbol('{'):
			depth++
		case tok.IsSymbol(')'), tok.IsSymbol(']'), tok.IsSymbol('}'):
			if depth > 0 {
				depth--
			}
		}
		group = append(group, tok)
	}
}
