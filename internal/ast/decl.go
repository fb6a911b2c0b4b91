package ast

import (
	"svast/internal/source"
)

// Source is the root: the top-level Class and Module declarations in order.
type Source struct {
	Items []Node
	Loc   source.Span
}

// Class is `class Name [extends Base]; ... endclass`.
// Only Function members are kept; other class items are skipped.
type Class struct {
	Name       string
	Extends    *string
	Members    []Node
	Terminated bool
	Loc        source.Span
}

// Module is `module Name [#(params)] [(ports)]; body endmodule`.
// Params and Ports are raw token texts with commas removed.
type Module struct {
	Name   string
	Params []string
	Ports  []string
	Body   Block
	Loc    source.Span
}

// Function is `function [lifetime] [ret] Name[(args)]; body endfunction`.
// ReturnType is empty for constructors such as `function new(...)`.
type Function struct {
	Lifetime   string
	ReturnType string
	Name       string
	Args       []string
	Body       Block
	Loc        source.Span
}

// Signal is a data declaration such as `logic [7:0] a, b;`.
// Direction is set for non-ANSI port declarations (`input logic clk;`).
type Signal struct {
	Direction string
	DataType  string
	Width     *string
	Names     []string
	Loc       source.Span
}

func (*Source) Kind() NodeKind   { return KindSource }
func (*Class) Kind() NodeKind    { return KindClass }
func (*Module) Kind() NodeKind   { return KindModule }
func (*Function) Kind() NodeKind { return KindFunction }
func (*Signal) Kind() NodeKind   { return KindSignal }

func (n *Source) Span() source.Span   { return n.Loc }
func (n *Class) Span() source.Span    { return n.Loc }
func (n *Module) Span() source.Span   { return n.Loc }
func (n *Function) Span() source.Span { return n.Loc }
func (n *Signal) Span() source.Span   { return n.Loc }

func (*Source) node()   {}
func (*Class) node()    {}
func (*Module) node()   {}
func (*Function) node() {}
func (*Signal) node()   {}
