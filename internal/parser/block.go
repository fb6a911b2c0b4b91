package parser

import (
	"svast/internal/ast"
	"svast/internal/token"
)

// parseBlock reads items until term, which is consumed when present.
// The block also ends, unterminated, at EOF or at a fence.
func (p *Parser) parseBlock(open token.Token, term token.Keyword) ast.Block {
	var block ast.Block
	mark := p.cur.mark()
	p.pushFence(term)
	defer p.popFence()
	for {
		tok := p.cur.peek()
		if tok.Is(term) {
			block.Loc = p.cur.spanSince(mark)
			p.cur.advance()
			p.skipEndLabel()
			block.Terminated = true
			return block
		}
		if tok.IsEOF() || p.fenced(tok) {
			block.Loc = p.cur.spanSince(mark)
			p.missing(open, term.String())
			return block
		}
		if item := p.parseItem(); item != nil {
			block.Items = append(block.Items, item)
		}
	}
}

// parseBody reads the single statement controlled by an always, if or
// else. A lone stop symbol is an empty statement.
func (p *Parser) parseBody(open token.Token) ast.Block {
	var block ast.Block
	mark := p.cur.mark()
	tok := p.cur.peek()
	if tok.IsEOF() || p.fenced(tok) {
		block.Loc = p.cur.spanSince(mark)
		p.missing(open, "a statement")
		return block
	}
	if item := p.parseItem(); item != nil {
		block.Items = []ast.Node{item}
	}
	block.Loc = p.cur.spanSince(mark)
	block.Terminated = true
	return block
}

// parseItem dispatches on the leading keyword. It always consumes at least
// one token and returns nil only for an empty statement.
func (p *Parser) parseItem() ast.Node {
	tok := p.cur.peek()
	if p.stops.symbol(tok) {
		p.cur.advance()
		return nil
	}
	switch tok.Keyword {
	case token.KwLogic, token.KwWire, token.KwReg, token.KwBit, token.KwInt,
		token.KwInteger, token.KwByte, token.KwShortint, token.KwLongint, token.KwString:
		return p.parseSignal()
	case token.KwInput, token.KwOutput, token.KwInout:
		if next := p.cur.peekAt(1); next.Kind == token.KindKeyword && next.Keyword.IsDataType() {
			return p.parseSignal()
		}
		return p.parseStatement()
	case token.KwFunction:
		if !p.enter() {
			return p.parseStatement()
		}
		defer p.leave()
		return p.parseFunction()
	case token.KwAlways, token.KwAlwaysFF, token.KwAlwaysComb, token.KwAlwaysLatch:
		if !p.enter() {
			return p.parseStatement()
		}
		defer p.leave()
		return p.parseAlways()
	case token.KwBegin:
		if !p.enter() {
			return p.parseStatement()
		}
		defer p.leave()
		return p.parseNested()
	case token.KwIf:
		if !p.enter() {
			return p.parseStatement()
		}
		defer p.leave()
		return p.parseIf()
	case token.KwCase:
		if !p.enter() {
			return p.parseStatement()
		}
		defer p.leave()
		return p.parseCase()
	case token.KwNone, token.KwElse, token.KwEnd, token.KwEndcase,
		token.KwEndfunction, token.KwEndmodule, token.KwEndclass,
		token.KwModule, token.KwClass:
		return p.parseStatement()
	default:
		return p.parseStatement()
	}
}
