package parser

import (
	"fmt"
	"strings"
	"testing"

	"svast/internal/ast"
	"svast/internal/diag"
	"svast/internal/lexer"
	"svast/internal/source"
	"svast/internal/token"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func lex(src string) []token.Token {
	fs := source.NewFileSet()
	return lexer.Tokenize(fs.Get(fs.AddVirtual("test.sv", []byte(src))), lexer.Options{})
}

func parseSource(t *testing.T, src string) (*ast.Source, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(100)
	tree := Parse(lex(src), Options{Reporter: diag.BagReporter{Bag: bag}})
	if tree == nil {
		t.Fatalf("Parse returned nil for %q", src)
	}
	return tree, bag
}

func onlyModule(t *testing.T, tree *ast.Source) *ast.Module {
	t.Helper()
	if len(tree.Items) != 1 {
		t.Fatalf("expected 1 top-level item, got %d", len(tree.Items))
	}
	mod, ok := tree.Items[0].(*ast.Module)
	if !ok {
		t.Fatalf("expected *ast.Module, got %T", tree.Items[0])
	}
	return mod
}

func onlyClass(t *testing.T, tree *ast.Source) *ast.Class {
	t.Helper()
	if len(tree.Items) != 1 {
		t.Fatalf("expected 1 top-level item, got %d", len(tree.Items))
	}
	cls, ok := tree.Items[0].(*ast.Class)
	if !ok {
		t.Fatalf("expected *ast.Class, got %T", tree.Items[0])
	}
	return cls
}

func item[T ast.Node](t *testing.T, b ast.Block, i int) T {
	t.Helper()
	if i >= len(b.Items) {
		t.Fatalf("block has %d items, want index %d", len(b.Items), i)
	}
	n, ok := b.Items[i].(T)
	if !ok {
		var zero T
		t.Fatalf("item %d is %T, want %T", i, b.Items[i], zero)
	}
	return n
}

func statements(t *testing.T, b ast.Block) []string {
	t.Helper()
	out := make([]string, 0, len(b.Items))
	for i := range b.Items {
		out = append(out, item[*ast.Statement](t, b, i).Code)
	}
	return out
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
