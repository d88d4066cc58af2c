package ctrie

import "sort"

// Dict is the interchange representation of a trie: a nested mapping that
// keeps the exact shape of the nodes, including shapes left behind by
// removals.
type Dict struct {
	Terminal bool             `json:"terminal" yaml:"terminal"`
	Children map[string]*Dict `json:"children" yaml:"children"`
}

// Dict returns the interchange representation of the trie.
func (n *Node) Dict() *Dict {
	d := &Dict{
		Terminal: n.terminal,
		Children: make(map[string]*Dict, len(n.children)),
	}

	for label, child := range n.children {
		d.Children[label] = child.Dict()
	}

	return d
}

// FromDict builds a trie with the shape described by d. A nil Dict is an
// empty trie. Empty labels, missing children and sibling labels sharing a
// prefix are rejected.
func FromDict(d *Dict) (*Node, error) {
	if d == nil {
		return New(), nil
	}

	return fromDict(d, "")
}

func fromDict(d *Dict, path string) (*Node, error) {
	n := &Node{terminal: d.Terminal}
	labels := make([]string, 0, len(d.Children))
	for label := range d.Children {
		labels = append(labels, label)
	}

	sort.Strings(labels)
	if err := checkEdges(path, labels, func(l string) bool {
		return d.Children[l] != nil
	}); err != nil {
		return nil, err
	}

	for _, label := range labels {
		child, err := fromDict(d.Children[label], path+label)
		if err != nil {
			return nil, err
		}

		n.setChild(label, child)
	}

	return n, nil
}
