package astenc

import (
	"fmt"

	"svast/internal/ast"
	"svast/internal/source"
)

// Encode converts n and its subtree to a Doc.
func Encode(n ast.Node, opts Options) *Doc {
	if n == nil {
		return nil
	}
	d := &Doc{Kind: n.Kind().String()}
	if opts.Spans {
		d.Span = spanPtr(n.Span())
	}
	switch n := n.(type) {
	case *ast.Source:
		d.Items = encodeNodes(n.Items, opts)
	case *ast.Class:
		d.Name = n.Name
		d.Extends = cloneStr(n.Extends)
		d.Items = encodeNodes(n.Members, opts)
		d.Terminated = n.Terminated
	case *ast.Module:
		d.Name = n.Name
		d.Params = n.Params
		d.Ports = n.Ports
		d.Body = encodeBlock(n.Body, opts)
	case *ast.Function:
		d.Lifetime = n.Lifetime
		d.ReturnType = n.ReturnType
		d.Name = n.Name
		d.Args = n.Args
		d.Body = encodeBlock(n.Body, opts)
	case *ast.Signal:
		d.Direction = n.Direction
		d.DataType = n.DataType
		d.Width = cloneStr(n.Width)
		d.Names = n.Names
	case *ast.Always:
		d.Process = n.Process
		d.Sensitivity = cloneStr(n.Sensitivity)
		d.Body = encodeBlock(n.Body, opts)
	case *ast.If:
		d.Cond = n.Cond
		d.Then = encodeBlock(n.Then, opts)
		if n.Else != nil {
			d.Else = encodeBlock(*n.Else, opts)
		}
	case *ast.Case:
		d.Expr = n.Expr
		d.Body = encodeBlock(n.Body, opts)
	case *ast.NestedBlock:
		d.Body = encodeBlock(n.Body, opts)
	case *ast.Statement:
		d.Code = n.Code
	default:
		panic(fmt.Sprintf("astenc: unexpected node %T", n))
	}
	return d
}

func encodeNodes(nodes []ast.Node, opts Options) []*Doc {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Doc, len(nodes))
	for i, n := range nodes {
		out[i] = Encode(n, opts)
	}
	return out
}

func encodeBlock(b ast.Block, opts Options) *BlockDoc {
	bd := &BlockDoc{Items: encodeNodes(b.Items, opts), Terminated: b.Terminated}
	if opts.Spans {
		bd.Span = spanPtr(b.Loc)
	}
	return bd
}

func spanPtr(sp source.Span) *source.Span {
	return &sp
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	return ast.Str(*s)
}

// Rebase points every recorded span in d at file. Cached documents are
// written with the FileID of the set that produced them.
func Rebase(d *Doc, file source.FileID) {
	if d == nil {
		return
	}
	if d.Span != nil {
		d.Span.File = file
	}
	for _, item := range d.Items {
		Rebase(item, file)
	}
	for _, b := range []*BlockDoc{d.Body, d.Then, d.Else} {
		if b == nil {
			continue
		}
		if b.Span != nil {
			b.Span.File = file
		}
		for _, item := range b.Items {
			Rebase(item, file)
		}
	}
}
