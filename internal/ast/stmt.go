package ast

import (
	"svast/internal/source"
)

// Always is a process block: always, always_ff, always_comb or always_latch.
// Sensitivity keeps the raw `@(...)` text including the '@'.
type Always struct {
	Process     string
	Sensitivity *string
	Body        Block
	Loc         source.Span
}

// If holds the condition text without its outer parentheses.
type If struct {
	Cond string
	Then Block
	Else *Block
	Loc  source.Span
}

// Case holds the selector text without its outer parentheses.
// Its Body is bounded by endcase; arms are left as Statements.
type Case struct {
	Expr string
	Body Block
	Loc  source.Span
}

// NestedBlock is a begin ... end region.
type NestedBlock struct {
	Body Block
	Loc  source.Span
}

// Statement is an undecomposed construct kept as space-joined token text.
type Statement struct {
	Code string
	Loc  source.Span
}

func (*Always) Kind() NodeKind      { return KindAlways }
func (*If) Kind() NodeKind          { return KindIf }
func (*Case) Kind() NodeKind        { return KindCase }
func (*NestedBlock) Kind() NodeKind { return KindNestedBlock }
func (*Statement) Kind() NodeKind   { return KindStatement }

func (n *Always) Span() source.Span      { return n.Loc }
func (n *If) Span() source.Span          { return n.Loc }
func (n *Case) Span() source.Span        { return n.Loc }
func (n *NestedBlock) Span() source.Span { return n.Loc }
func (n *Statement) Span() source.Span   { return n.Loc }

func (*Always) node()      {}
func (*If) node()          {}
func (*Case) node()        {}
func (*NestedBlock) node() {}
func (*Statement) node()   {}
