package ast

import "fmt"

// Visitor is called for every node by Walk. If Visit returns a nil
// Visitor the children of n are skipped.
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree depth-first in source order.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	for _, child := range Children(n) {
		Walk(v, child)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect calls f for every node; returning false prunes the subtree.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Children returns the direct child nodes of n in source order.
// Nodes inside an If's then- and else-blocks are both included.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Source:
		return n.Items
	case *Class:
		return n.Members
	case *Module:
		return n.Body.Items
	case *Function:
		return n.Body.Items
	case *Always:
		return n.Body.Items
	case *If:
		if n.Else == nil {
			return n.Then.Items
		}
		out := make([]Node, 0, len(n.Then.Items)+len(n.Else.Items))
		out = append(out, n.Then.Items...)
		return append(out, n.Else.Items...)
	case *Case:
		return n.Body.Items
	case *NestedBlock:
		return n.Body.Items
	case *Signal, *Statement:
		return nil
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

// Texts returns the raw text fields of n alone (not its children),
// in the order they appeared in the source.
func Texts(n Node) []string {
	switch n := n.(type) {
	case *Source:
		return nil
	case *Class:
		return appendOpt([]string{n.Name}, n.Extends)
	case *Module:
		out := []string{n.Name}
		out = append(out, n.Params...)
		return append(out, n.Ports...)
	case *Function:
		var out []string
		for _, s := range []string{n.Lifetime, n.ReturnType} {
			if s != "" {
				out = append(out, s)
			}
		}
		out = append(out, n.Name)
		return append(out, n.Args...)
	case *Signal:
		var out []string
		if n.Direction != "" {
			out = append(out, n.Direction)
		}
		out = append(out, n.DataType)
		out = appendOpt(out, n.Width)
		return append(out, n.Names...)
	case *Always:
		return appendOpt([]string{n.Process}, n.Sensitivity)
	case *If:
		return []string{n.Cond}
	case *Case:
		return []string{n.Expr}
	case *NestedBlock:
		return nil
	case *Statement:
		return []string{n.Code}
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

// Leaves returns every raw text fragment in the subtree in tree order.
func Leaves(n Node) []string {
	var out []string
	Inspect(n, func(n Node) bool {
		for _, s := range Texts(n) {
			if s != "" {
				out = append(out, s)
			}
		}
		return true
	})
	return out
}

// Count returns how many nodes of each kind the subtree holds.
func Count(n Node) map[NodeKind]int {
	out := make(map[NodeKind]int)
	Inspect(n, func(n Node) bool {
		out[n.Kind()]++
		return true
	})
	return out
}

func appendOpt(out []string, s *string) []string {
	if s != nil {
		return append(out, *s)
	}
	return out
}
