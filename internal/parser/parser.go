package parser

import (
	"fmt"

	"svast/internal/ast"
	"svast/internal/diag"
	"svast/internal/lexer"
	"svast/internal/source"
	"svast/internal/token"
)

// DefaultMaxDepth bounds construct nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 512

type Options struct {
	// Reporter receives structural warnings. May be nil.
	Reporter diag.Reporter
	// MaxDepth caps nested constructs; deeper ones are kept as Statements.
	MaxDepth int
	// Stops overrides DefaultStops when non-nil.
	Stops *StopSet
}

// Parser is the state for one parse. It is not safe for concurrent use.
type Parser struct {
	cur      cursor
	opts     Options
	stops    StopSet
	maxDepth int
	depth    int
	// fences holds the terminators of every open bounded construct,
	// innermost last.
	fences     []token.Keyword
	tooDeep    bool
	strayStart int
}

func newParser(toks []token.Token, opts Options) *Parser {
	p := &Parser{
		cur:        newCursor(toks),
		opts:       opts,
		stops:      DefaultStops(),
		maxDepth:   opts.MaxDepth,
		strayStart: -1,
	}
	if opts.Stops != nil {
		p.stops = *opts.Stops
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p
}

// Parse builds the tree for toks. It never fails; malformed or truncated
// input yields a partial tree.
func Parse(toks []token.Token, opts Options) *ast.Source {
	return newParser(toks, opts).parseSource()
}

// ParseText lexes and parses an in-memory buffer. Lexer notes go to the
// same Reporter.
func ParseText(text []byte, opts Options) *ast.Source {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", text))
	return Parse(lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter}), opts)
}

// parseSource is the top-level loop: class and module declarations are
// parsed, anything else is skipped.
func (p *Parser) parseSource() *ast.Source {
	src := &ast.Source{}
	mark := p.cur.mark()
	for !p.cur.atEOF() {
		tok := p.cur.peek()
		switch tok.Keyword {
		case token.KwClass:
			p.flushStray()
			src.Items = append(src.Items, p.parseClass())
		case token.KwModule:
			p.flushStray()
			src.Items = append(src.Items, p.parseModule())
		default:
			if p.strayStart < 0 {
				p.strayStart = p.cur.mark()
			}
			p.cur.advance()
		}
	}
	p.flushStray()
	src.Loc = p.cur.spanSince(mark)
	return src
}

// flushStray reports one note for a run of skipped top-level tokens.
func (p *Parser) flushStray() {
	if p.strayStart < 0 {
		return
	}
	sp := p.cur.spanSince(p.strayStart)
	p.strayStart = -1
	p.report(diag.SynStrayTopLevel, diag.SevInfo, sp, "tokens outside any class or module were skipped", nil)
}

// enter tracks nesting depth for a compound construct. It returns false
// when the construct is too deep and must be kept as a Statement.
func (p *Parser) enter() bool {
	if p.depth >= p.maxDepth {
		if !p.tooDeep {
			p.tooDeep = true
			p.report(diag.SynNestingTooDeep, diag.SevWarning, p.cur.peek().Span,
				fmt.Sprintf("constructs nested deeper than %d are kept as plain statements", p.maxDepth), nil)
		}
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) pushFence(kw token.Keyword) {
	p.fences = append(p.fences, kw)
}

func (p *Parser) popFence() {
	p.fences = p.fences[:len(p.fences)-1]
}

// fenced reports whether tok is the terminator of an open construct.
// Blocks stop there without consuming it.
func (p *Parser) fenced(tok token.Token) bool {
	if tok.Kind != token.KindKeyword {
		return false
	}
	for _, kw := range p.fences {
		if kw == tok.Keyword {
			return true
		}
	}
	return false
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg, notes)
	}
}

// missing reports that the construct opened by open ended without term.
func (p *Parser) missing(open token.Token, term string) {
	at := p.cur.peek()
	where := "end of input"
	if !at.IsEOF() {
		where = fmt.Sprintf("%q", at.Text)
	}
	p.report(diag.SynMissingTerminator, diag.SevWarning, open.Span,
		fmt.Sprintf("%q is missing %s", open.Text, term),
		[]diag.Note{{Span: at.Span, Msg: "construct closed early by " + where}})
}
