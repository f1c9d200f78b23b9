// Package wire serializes display trees for cross-process delivery to a UI
// consumer.
package wire

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"vista/internal/inspect"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// payload is the on-wire form: a flat node table plus the root index.
// Children refer to table entries by index, so a node shared within one build
// is written once and referenced thereafter instead of duplicating the
// subtree.
type payload struct {
	Schema uint16
	Root   uint32
	Nodes  []wireNode
}

type wireNode struct {
	Label      string
	Value      string
	Message    string
	SourceLine int
	Children   []uint32
}

// Encode serializes the tree rooted at root into a msgpack payload.
func Encode(root *inspect.Node) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("wire: nil root")
	}
	p := payload{Schema: schemaVersion}
	ids := make(map[*inspect.Node]uint32)
	rootID, err := flatten(root, &p, ids)
	if err != nil {
		return nil, err
	}
	p.Root = rootID
	return msgpack.Marshal(&p)
}

func flatten(n *inspect.Node, p *payload, ids map[*inspect.Node]uint32) (uint32, error) {
	if id, ok := ids[n]; ok {
		return id, nil
	}
	id, err := safecast.Conv[uint32](len(p.Nodes))
	if err != nil {
		return 0, fmt.Errorf("wire: node table overflow: %w", err)
	}
	ids[n] = id
	p.Nodes = append(p.Nodes, wireNode{
		Label:      n.Label,
		Value:      n.Value,
		Message:    n.Message,
		SourceLine: n.SourceLine,
	})

	children := make([]uint32, 0, len(n.Children))
	for _, c := range n.Children {
		cid, err := flatten(c, p, ids)
		if err != nil {
			return 0, err
		}
		children = append(children, cid)
	}
	p.Nodes[id].Children = children
	return id, nil
}

// Decode reconstructs a tree from a payload produced by Encode. Nodes that
// were shared on the sending side come back as shared pointers.
func Decode(data []byte) (*inspect.Node, error) {
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("wire: unsupported schema version %d", p.Schema)
	}
	if len(p.Nodes) == 0 {
		return nil, fmt.Errorf("wire: empty node table")
	}

	nodes := make([]*inspect.Node, len(p.Nodes))
	for i := range p.Nodes {
		w := &p.Nodes[i]
		nodes[i] = &inspect.Node{
			Label:      w.Label,
			Value:      w.Value,
			Message:    w.Message,
			SourceLine: w.SourceLine,
		}
	}
	for i := range p.Nodes {
		for _, cid := range p.Nodes[i].Children {
			if int(cid) >= len(nodes) {
				return nil, fmt.Errorf("wire: child index %d out of range", cid)
			}
			nodes[i].Children = append(nodes[i].Children, nodes[cid])
		}
	}
	if int(p.Root) >= len(nodes) {
		return nil, fmt.Errorf("wire: root index %d out of range", p.Root)
	}
	return nodes[p.Root], nil
}
