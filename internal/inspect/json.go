package inspect

import (
	"encoding/json"
	"io"
)

// NodeJSON mirrors Node for JSON output.
type NodeJSON struct {
	Label      string     `json:"label,omitempty"`
	Value      string     `json:"value"`
	Message    string     `json:"message,omitempty"`
	SourceLine int        `json:"source_line,omitempty"`
	Children   []NodeJSON `json:"children,omitempty"`
}

// ToJSON converts a tree into its JSON mirror.
func ToJSON(n *Node) NodeJSON {
	out := NodeJSON{
		Label:      n.Label,
		Value:      n.Value,
		Message:    n.Message,
		SourceLine: n.SourceLine,
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, ToJSON(c))
	}
	return out
}

// WriteJSON writes the tree rooted at n to w as indented JSON.
func WriteJSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(n))
}
