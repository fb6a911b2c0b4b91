// Package testkit holds tree invariant checks shared by tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"svast/internal/ast"
	"svast/internal/lexer"
	"svast/internal/source"
	"svast/internal/token"
)

// CheckSpanInvariants verifies that:
// 1) every node span lies in sf and within its parent's span
// 2) every node other than the root covers at least one byte
// 3) siblings appear in source order without overlapping
func CheckSpanInvariants(tree *ast.Source, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := tree.Span()
	if root.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", root.End, lenContent)
	}
	return checkChildren(tree, sf.ID)
}

func checkChildren(parent ast.Node, file source.FileID) error {
	outer := parent.Span()
	var prev source.Span
	for i, child := range ast.Children(parent) {
		sp := child.Span()
		if sp.File != file {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", child.Kind(), sp.File, file)
		}
		if sp.Empty() {
			return fmt.Errorf("empty %s span: %v", child.Kind(), sp)
		}
		if !outer.Contains(sp) {
			return fmt.Errorf("%s span %v is outside %s span %v", child.Kind(), sp, parent.Kind(), outer)
		}
		if i > 0 && sp.Start < prev.End {
			return fmt.Errorf("%s span %v overlaps or precedes sibling %v", child.Kind(), sp, prev)
		}
		prev = sp
		if err := checkChildren(child, file); err != nil {
			return err
		}
	}
	return nil
}

// CheckLeafOrder re-lexes every leaf text of tree and verifies the result
// is an ordered subsequence of toks, compared by kind and text.
func CheckLeafOrder(tree *ast.Source, toks []token.Token) error {
	pos := 0
	for _, leaf := range ast.Leaves(tree) {
		for _, want := range lexer.TokenizeBytes([]byte(leaf)) {
			if want.Kind == token.EOF {
				break
			}
			for pos < len(toks) && (toks[pos].Kind != want.Kind || toks[pos].Text != want.Text) {
				pos++
			}
			if pos == len(toks) {
				return fmt.Errorf("leaf %q: token %v not found in order", leaf, want)
			}
			pos++
		}
	}
	return nil
}
