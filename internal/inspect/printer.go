package inspect

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the tree rooted at n to w in depth-first pre-order, one node
// per line, indented two spaces per depth level. A line shows the label, then
// " = " when both label and value are present, then the value.
func Print(w io.Writer, n *Node) {
	printNode(w, n, 0)
}

// Render returns the Print output as a string.
func Render(n *Node) string {
	var b strings.Builder
	Print(&b, n)
	return b.String()
}

func printNode(w io.Writer, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch {
	case n.Label != "" && n.Value != "":
		fmt.Fprintf(w, "%s%s = %s\n", indent, n.Label, n.Value)
	case n.Label != "":
		fmt.Fprintf(w, "%s%s\n", indent, n.Label)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, n.Value)
	}
	for _, c := range n.Children {
		printNode(w, c, depth+1)
	}
}
