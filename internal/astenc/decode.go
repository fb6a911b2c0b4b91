package astenc

import (
	"errors"
	"fmt"
	"slices"

	"svast/internal/ast"
	"svast/internal/source"
)

var (
	ErrUnknownKind = errors.New("unknown node kind")
	ErrMisplaced   = errors.New("node kind not allowed here")
	ErrMissing     = errors.New("required field missing")
)

// Decode rebuilds a tree from d. Child kinds are checked against the
// positions the parser can produce.
func Decode(d *Doc) (ast.Node, error) {
	if d == nil {
		return nil, fmt.Errorf("nil document: %w", ErrMissing)
	}
	kind, ok := ast.ParseNodeKind(d.Kind)
	if !ok {
		return nil, fmt.Errorf("%q: %w", d.Kind, ErrUnknownKind)
	}
	loc := spanOf(d.Span)
	switch kind {
	case ast.KindSource:
		items, err := decodeNodes(d.Items, "items", ast.KindClass, ast.KindModule)
		if err != nil {
			return nil, err
		}
		return &ast.Source{Items: items, Loc: loc}, nil
	case ast.KindClass:
		members, err := decodeNodes(d.Items, "members", ast.KindFunction)
		if err != nil {
			return nil, err
		}
		return &ast.Class{Name: d.Name, Extends: cloneStr(d.Extends), Members: members, Terminated: d.Terminated, Loc: loc}, nil
	case ast.KindModule:
		body, err := decodeBlock(d.Body, "body")
		if err != nil {
			return nil, err
		}
		return &ast.Module{Name: d.Name, Params: list(d.Params), Ports: list(d.Ports), Body: *body, Loc: loc}, nil
	case ast.KindFunction:
		body, err := decodeBlock(d.Body, "body")
		if err != nil {
			return nil, err
		}
		return &ast.Function{
			Lifetime: d.Lifetime, ReturnType: d.ReturnType, Name: d.Name,
			Args: list(d.Args), Body: *body, Loc: loc,
		}, nil
	case ast.KindSignal:
		return &ast.Signal{
			Direction: d.Direction, DataType: d.DataType, Width: cloneStr(d.Width),
			Names: list(d.Names), Loc: loc,
		}, nil
	case ast.KindAlways:
		body, err := decodeBlock(d.Body, "body")
		if err != nil {
			return nil, err
		}
		return &ast.Always{Process: d.Process, Sensitivity: cloneStr(d.Sensitivity), Body: *body, Loc: loc}, nil
	case ast.KindIf:
		then, err := decodeBlock(d.Then, "then")
		if err != nil {
			return nil, err
		}
		n := &ast.If{Cond: d.Cond, Then: *then, Loc: loc}
		if d.Else != nil {
			if n.Else, err = decodeBlock(d.Else, "else"); err != nil {
				return nil, err
			}
		}
		return n, nil
	case ast.KindCase:
		body, err := decodeBlock(d.Body, "body")
		if err != nil {
			return nil, err
		}
		return &ast.Case{Expr: d.Expr, Body: *body, Loc: loc}, nil
	case ast.KindNestedBlock:
		body, err := decodeBlock(d.Body, "body")
		if err != nil {
			return nil, err
		}
		return &ast.NestedBlock{Body: *body, Loc: loc}, nil
	case ast.KindStatement:
		return &ast.Statement{Code: d.Code, Loc: loc}, nil
	}
	return nil, fmt.Errorf("%q: %w", d.Kind, ErrUnknownKind)
}

// DecodeSource decodes a document whose root must be a source node.
func DecodeSource(d *Doc) (*ast.Source, error) {
	n, err := Decode(d)
	if err != nil {
		return nil, err
	}
	src, ok := n.(*ast.Source)
	if !ok {
		return nil, fmt.Errorf("root is %s: %w", n.Kind(), ErrMisplaced)
	}
	return src, nil
}

// blockKinds are the node kinds a Block may hold.
var blockKinds = []ast.NodeKind{
	ast.KindSignal, ast.KindFunction, ast.KindAlways, ast.KindNestedBlock,
	ast.KindIf, ast.KindCase, ast.KindStatement,
}

func decodeBlock(bd *BlockDoc, field string) (*ast.Block, error) {
	if bd == nil {
		return nil, fmt.Errorf("%s: %w", field, ErrMissing)
	}
	items, err := decodeNodes(bd.Items, field, blockKinds...)
	if err != nil {
		return nil, err
	}
	return &ast.Block{Items: items, Terminated: bd.Terminated, Loc: spanOf(bd.Span)}, nil
}

func decodeNodes(docs []*Doc, field string, allowed ...ast.NodeKind) ([]ast.Node, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]ast.Node, 0, len(docs))
	for i, d := range docs {
		n, err := Decode(d)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		if !slices.Contains(allowed, n.Kind()) {
			return nil, fmt.Errorf("%s[%d]: %s: %w", field, i, n.Kind(), ErrMisplaced)
		}
		out = append(out, n)
	}
	return out, nil
}

func list(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func spanOf(sp *source.Span) source.Span {
	if sp == nil {
		return source.Span{}
	}
	return *sp
}
