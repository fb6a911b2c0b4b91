// Package ast defines the structural tree produced by the parser.
//
// The node set is closed: Node has an unexported marker method, so the only
// implementations are the ten variants in this package and a type switch
// over them is exhaustive. Optional text is a *string so that "absent"
// stays distinguishable from "empty" for serializers.
package ast

import (
	"svast/internal/source"
)

type NodeKind uint8

const (
	KindInvalid NodeKind = iota
	KindSource
	KindClass
	KindModule
	KindFunction
	KindSignal
	KindAlways
	KindIf
	KindCase
	KindNestedBlock
	KindStatement
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindSource:      "source",
	KindClass:       "class",
	KindModule:      "module",
	KindFunction:    "function",
	KindSignal:      "signal",
	KindAlways:      "always",
	KindIf:          "if",
	KindCase:        "case",
	KindNestedBlock: "block",
	KindStatement:   "statement",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// ParseNodeKind is the inverse of NodeKind.String.
func ParseNodeKind(s string) (NodeKind, bool) {
	for k, name := range kindNames {
		if name == s && NodeKind(k) != KindInvalid {
			return NodeKind(k), true
		}
	}
	return KindInvalid, false
}

// Node is any tree node.
type Node interface {
	Kind() NodeKind
	Span() source.Span
	node()
}

// Block is a bounded run of statement-level nodes. It is not a Node itself.
// Items holds Signal, Function, Always, NestedBlock, If, Case and Statement nodes.
type Block struct {
	Items []Node
	// Terminated is true when the closing keyword (or, for single-statement
	// bodies, the statement) was found; false when input ran out first.
	Terminated bool
	Loc        source.Span
}

// Len returns the number of items.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Items)
}

// Str returns a pointer to a copy of s, for optional fields.
func Str(s string) *string {
	return &s
}

// Deref returns *s, or "" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
