package parser

import (
	"slices"

	"svast/internal/token"
)

// StopSet decides where a generic Statement ends. A stop symbol ends the
// statement and is consumed with it; a stop keyword ends it and is left
// for the enclosing block.
type StopSet struct {
	Symbols  []byte
	Keywords []token.Keyword
}

// DefaultStops returns the stops used when Options.Stops is nil: ';' plus
// every keyword that opens or closes a construct the parser models.
// Data types and port directions are not stops.
func DefaultStops() StopSet {
	return StopSet{
		Symbols: []byte{';'},
		Keywords: []token.Keyword{
			token.KwBegin, token.KwEnd,
			token.KwIf, token.KwElse,
			token.KwCase, token.KwEndcase,
			token.KwFunction, token.KwEndfunction,
			token.KwModule, token.KwEndmodule,
			token.KwClass, token.KwEndclass,
			token.KwAlways, token.KwAlwaysFF, token.KwAlwaysComb, token.KwAlwaysLatch,
		},
	}
}

func (s *StopSet) symbol(tok token.Token) bool {
	return tok.Kind == token.Symbol && len(tok.Text) == 1 && slices.Contains(s.Symbols, tok.Text[0])
}

func (s *StopSet) keyword(tok token.Token) bool {
	return tok.Kind == token.KindKeyword && slices.Contains(s.Keywords, tok.Keyword)
}
