// Package tsutil provides small tree-sitter helpers shared by every
// per-language adapter in internal/parser: node text extraction, 1-based
// line/column conversion, and generic tree walking. Each adapter still owns
// its own node-type tables, but none of them re-derive these primitives.
package tsutil

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
)

// Text returns node's source text, or "" for a nil node.
func Text(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}
	return node.Content(src)
}

// Line returns node's 1-based start line, or 0 for a nil node.
func Line(node *sitter.Node) int {
	if node == nil {
		return 0
	}
	return int(node.StartPoint().Row) + 1
}

// EndLine returns node's 1-based end line, or 0 for a nil node.
func EndLine(node *sitter.Node) int {
	if node == nil {
		return 0
	}
	return int(node.EndPoint().Row) + 1
}

// Column returns node's 1-based start column, or 0 for a nil node.
func Column(node *sitter.Node) int {
	if node == nil {
		return 0
	}
	return int(node.StartPoint().Column) + 1
}

// Parse parses src with the given tree-sitter language and returns the root
// node of the resulting tree together with a close function the caller must
// defer. Every adapter funnels through this one spot so the parser/tree
// lifecycle is handled identically everywhere.
func Parse(ctx context.Context, src []byte, language *sitter.Language) (*sitter.Node, func(), error) {
	parser := sitter.NewParser()
	parser.SetLanguage(language)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		parser.Close()
		return nil, func() {}, err
	}
	closer := func() {
		tree.Close()
		parser.Close()
	}
	return tree.RootNode(), closer, nil
}

// Walk calls visit for every node in the subtree rooted at n, in pre-order.
// Returning false from visit skips that node's children but continues the
// walk at its siblings.
func Walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		Walk(n.Child(i), visit)
	}
}

// FindAll collects every descendant node (including n itself) whose Type()
// equals one of nodeTypes.
func FindAll(n *sitter.Node, nodeTypes ...string) []*sitter.Node {
	set := make(map[string]bool, len(nodeTypes))
	for _, t := range nodeTypes {
		set[t] = true
	}
	var out []*sitter.Node
	Walk(n, func(node *sitter.Node) bool {
		if set[node.Type()] {
			out = append(out, node)
		}
		return true
	})
	return out
}

// ChildByType returns the first direct child of n with the given type, or
// nil.
func ChildByType(n *sitter.Node, nodeType string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.Type() == nodeType {
			return c
		}
	}
	return nil
}

// PrecedingComment returns the text of a comment node immediately preceding
// n (ignoring blank lines in between up to one), used to recover JSDoc-style
// or `///`/`#` doc blocks as a symbol's docstring.
func PrecedingComment(n *sitter.Node, src []byte, commentType string) string {
	if n == nil || n.Parent() == nil {
		return ""
	}
	parent := n.Parent()
	var prevSibling *sitter.Node
	for i := 0; i < int(parent.ChildCount()); i++ {
		c := parent.Child(i)
		if c == n {
			break
		}
		prevSibling = c
	}
	if prevSibling == nil || prevSibling.Type() != commentType {
		return ""
	}
	// Require the comment to be adjacent (no more than one blank line away).
	if Line(n)-EndLine(prevSibling) > 2 {
		return ""
	}
	return Text(prevSibling, src)
}

// ArgCount returns the number of named children of an arguments-like node.
func ArgCount(n *sitter.Node) int {
	if n == nil {
		return 0
	}
	return int(n.NamedChildCount())
}
