package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"svast/internal/ast"
	"svast/internal/astenc"
	"svast/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTPretty prints the tree with box-drawing connectors. When fs is
// non-nil the root is labelled with the file path and every node with its
// line:col range.
func FormatASTPretty(w io.Writer, tree *ast.Source, fs *source.FileSet) error {
	root := buildTreeNode(tree, fs)
	if fs != nil {
		if f := fs.Get(tree.Loc.File); f != nil {
			root.label = f.FormatPath("auto", fs.BaseDir()) + " " + spanSuffix(tree.Loc, fs)
		}
	}
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	for i, child := range root.children {
		if err := writeTreeNode(w, child, "", i == len(root.children)-1); err != nil {
			return err
		}
	}
	return nil
}

func writeTreeNode(w io.Writer, n *treeNode, prefix string, last bool) error {
	connector, childPrefix := "├─ ", "│  "
	if last {
		connector, childPrefix = "└─ ", "   "
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, n.label); err != nil {
		return err
	}
	for i, child := range n.children {
		if err := writeTreeNode(w, child, prefix+childPrefix, i == len(n.children)-1); err != nil {
			return err
		}
	}
	return nil
}

// FormatASTJSON writes the tree as an indented astenc document.
func FormatASTJSON(w io.Writer, tree *ast.Source, spans bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(astenc.Encode(tree, astenc.Options{Spans: spans}))
}

// FormatASTYAML writes the same document as FormatASTJSON in YAML.
func FormatASTYAML(w io.Writer, tree *ast.Source, spans bool) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(astenc.Encode(tree, astenc.Options{Spans: spans})); err != nil {
		return err
	}
	return encoder.Close()
}

func buildTreeNode(n ast.Node, fs *source.FileSet) *treeNode {
	node := &treeNode{}
	switch n := n.(type) {
	case *ast.Source:
		node.label = "Source"
		node.children = buildTreeNodes(n.Items, fs)
		return node
	case *ast.Class:
		node.label = "Class " + n.Name
		if n.Extends != nil {
			node.label += " extends " + *n.Extends
		}
		if !n.Terminated {
			node.label += " [unterminated]"
		}
		node.children = buildTreeNodes(n.Members, fs)
	case *ast.Module:
		node.label = "Module " + n.Name
		if len(n.Params) > 0 {
			node.children = append(node.children, &treeNode{label: "Params: " + strings.Join(n.Params, " ")})
		}
		if len(n.Ports) > 0 {
			node.children = append(node.children, &treeNode{label: "Ports: " + strings.Join(n.Ports, " ")})
		}
		node.label += blockSuffix(n.Body)
		node.children = append(node.children, buildTreeNodes(n.Body.Items, fs)...)
	case *ast.Function:
		parts := []string{"Function"}
		for _, s := range []string{n.Lifetime, n.ReturnType} {
			if s != "" {
				parts = append(parts, s)
			}
		}
		node.label = strings.Join(parts, " ") + " " + n.Name + "(" + strings.Join(n.Args, " ") + ")" + blockSuffix(n.Body)
		node.children = buildTreeNodes(n.Body.Items, fs)
	case *ast.Signal:
		parts := []string{"Signal"}
		if n.Direction != "" {
			parts = append(parts, n.Direction)
		}
		parts = append(parts, n.DataType)
		if n.Width != nil {
			parts = append(parts, *n.Width)
		}
		node.label = strings.Join(parts, " ") + ": " + strings.Join(n.Names, ", ")
	case *ast.Always:
		node.label = "Always " + n.Process
		if n.Sensitivity != nil {
			node.label += " " + *n.Sensitivity
		}
		node.label += blockSuffix(n.Body)
		node.children = buildTreeNodes(n.Body.Items, fs)
	case *ast.If:
		node.label = "If (" + n.Cond + ")"
		then := &treeNode{label: "Then" + blockSuffix(n.Then), children: buildTreeNodes(n.Then.Items, fs)}
		node.children = append(node.children, then)
		if n.Else != nil {
			alt := &treeNode{label: "Else" + blockSuffix(*n.Else), children: buildTreeNodes(n.Else.Items, fs)}
			node.children = append(node.children, alt)
		}
	case *ast.Case:
		node.label = "Case (" + n.Expr + ")" + blockSuffix(n.Body)
		node.children = buildTreeNodes(n.Body.Items, fs)
	case *ast.NestedBlock:
		node.label = "Block" + blockSuffix(n.Body)
		node.children = buildTreeNodes(n.Body.Items, fs)
	case *ast.Statement:
		node.label = fmt.Sprintf("Statement %q", n.Code)
	default:
		node.label = fmt.Sprintf("<%T>", n)
	}
	if fs != nil {
		node.label += " " + spanSuffix(n.Span(), fs)
	}
	return node
}

func buildTreeNodes(nodes []ast.Node, fs *source.FileSet) []*treeNode {
	out := make([]*treeNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, buildTreeNode(n, fs))
	}
	return out
}

func blockSuffix(b ast.Block) string {
	if b.Terminated {
		return ""
	}
	return " [unterminated]"
}

func spanSuffix(span source.Span, fs *source.FileSet) string {
	start, end := fs.Resolve(span)
	return fmt.Sprintf("(span: %d:%d-%d:%d)", start.Line, start.Col, end.Line, end.Col)
}
