package ctrie

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyLabel is returned when an edge carries an empty label.
	ErrEmptyLabel = errors.New("empty edge label")
	// ErrLabelConflict is returned when two sibling labels share a prefix.
	ErrLabelConflict = errors.New("sibling labels share a common prefix")
	// ErrNilChild is returned when an edge points to no node.
	ErrNilChild = errors.New("edge without child node")
	// ErrLabelBoundary is returned when a label starts in the middle of a
	// UTF-8 sequence continued from its parent edge.
	ErrLabelBoundary = errors.New("edge label splits a character")
)

// Node is a node of a compact trie. The root node is the trie itself: a
// zero Node is an empty trie ready to use.
//
// Each node maps non-empty edge labels to child nodes. No two labels of the
// same node start with the same character; Add keeps it that way by
// splitting edges. Bytes that are not part of a valid UTF-8 sequence count
// as characters of their own.
// Remove only prunes nodes left empty, it never merges a node with its single
// remaining child, so tries holding the same words may differ in shape.
//
// Node is not safe for concurrent use.
type Node struct {
	terminal bool
	children map[string]*Node
}

// New returns an empty trie.
func New() *Node {
	return &Node{}
}

// FromWords returns a trie holding the given words.
func FromWords(words ...string) *Node {
	n := New()
	n.Add(words...)
	return n
}

// Add inserts the given words. It returns true if every word was new to the
// trie; all the words are inserted regardless.
func (n *Node) Add(words ...string) bool {
	ok := true
	for _, w := range words {
		ok = n.add(w) && ok
	}

	return ok
}

func (n *Node) add(word string) bool {
	cur := n
	for word != "" {
		if label, child, ok := cur.edge(word); ok {
			cur, word = child, word[len(label):]
			continue
		}

		// no edge consumes the word: split the edge sharing a prefix with
		// it, if any, otherwise hang a new leaf
		for label, child := range cur.children {
			lcp := commonPrefix(label, word)
			if lcp == "" {
				continue
			}

			middle := &Node{}
			middle.setChild(label[len(lcp):], child)
			if rest := word[len(lcp):]; rest != "" {
				middle.setChild(rest, &Node{terminal: true})
			} else {
				middle.terminal = true
			}

			delete(cur.children, label)
			cur.setChild(lcp, middle)
			return true
		}

		cur.setChild(word, &Node{terminal: true})
		return true
	}

	if cur.terminal {
		return false
	}

	cur.terminal = true
	return true
}

// Remove deletes the given words. It returns true if every word was present
// in the trie; all the words are removed regardless.
//
// Removing the empty string clears the terminal flag of the root and
// reports whether it was set.
func (n *Node) Remove(words ...string) bool {
	ok := true
	for _, w := range words {
		ok = n.remove(w) && ok
	}

	return ok
}

type hop struct {
	parent *Node
	label  string
}

func (n *Node) remove(word string) bool {
	var path []hop
	cur := n
	for word != "" {
		label, child, ok := cur.edge(word)
		if !ok {
			return false
		}

		path = append(path, hop{parent: cur, label: label})
		cur, word = child, word[len(label):]
	}

	if !cur.terminal {
		return false
	}

	cur.terminal = false
	for i := len(path) - 1; i >= 0; i-- {
		h := path[i]
		if !h.parent.children[h.label].IsEmpty() {
			break
		}

		delete(h.parent.children, h.label)
	}

	return true
}

// Contains reports whether word is stored in the trie.
func (n *Node) Contains(word string) bool {
	cur := n
	for word != "" {
		label, child, ok := cur.edge(word)
		if !ok {
			return false
		}

		cur, word = child, word[len(label):]
	}

	return cur.terminal
}

// IsEmpty reports whether the node is non-terminal and has no children.
func (n *Node) IsEmpty() bool {
	return !n.terminal && len(n.children) == 0
}

// IsTerminal reports whether the path to this node spells a stored word.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// Height returns the number of edges on the longest path from this node to
// a leaf. Edges are compacted, so the height does not depend on the length
// of the words.
func (n *Node) Height() int {
	h := 0
	for _, child := range n.children {
		if ch := child.Height() + 1; ch > h {
			h = ch
		}
	}

	return h
}

// Len returns the number of words stored under this node. It walks the
// whole trie on every call.
func (n *Node) Len() int {
	l := 0
	if n.terminal {
		l++
	}

	for _, child := range n.children {
		l += child.Len()
	}

	return l
}

// Values returns an iterator over the stored words.
func (n *Node) Values() *WordIter {
	return newWordIter(n)
}

// Clone returns a deep copy of the trie with the same shape.
func (n *Node) Clone() *Node {
	c := &Node{terminal: n.terminal}
	for label, child := range n.children {
		c.setChild(label, child.Clone())
	}

	return c
}

// Validate checks the compaction invariant on the whole trie: labels are
// non-empty, point to a node, do not split a character and no two siblings
// start with the same character.
func (n *Node) Validate() error {
	return n.validate("")
}

func (n *Node) validate(path string) error {
	if err := checkEdges(path, n.labels(), func(l string) bool {
		return n.children[l] != nil
	}); err != nil {
		return err
	}

	for label, child := range n.children {
		if err := child.validate(path + label); err != nil {
			return err
		}
	}

	return nil
}

// checkEdges validates the sorted labels of a node found at path. Two
// labels conflict when they start with the same unit, and each label must
// begin on a unit boundary of the words running through it.
func checkEdges(path string, labels []string, hasChild func(string) bool) error {
	first := make(map[string]string, len(labels))
	for _, l := range labels {
		if l == "" {
			return fmt.Errorf("%w: at %q", ErrEmptyLabel, path)
		}

		if !hasChild(l) {
			return fmt.Errorf("%w: at %q", ErrNilChild, path+l)
		}

		if !boundary(path+l, len(path)) {
			return fmt.Errorf("%w: %q at %q", ErrLabelBoundary, l, path)
		}

		u := firstUnit(l)
		if other, ok := first[u]; ok {
			return fmt.Errorf("%w: %q and %q at %q", ErrLabelConflict, other, l, path)
		}

		first[u] = l
	}

	return nil
}

// edge returns the label and child of the edge whose label is a prefix of
// word. The compaction invariant guarantees there is at most one.
func (n *Node) edge(word string) (string, *Node, bool) {
	for label, child := range n.children {
		if _, ok := cutPrefix(word, label); ok {
			return label, child, true
		}
	}

	return "", nil, false
}

func (n *Node) setChild(label string, child *Node) {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}

	n.children[label] = child
}

// labels returns the labels of the node sorted.
func (n *Node) labels() []string {
	if len(n.children) == 0 {
		return nil
	}

	labels := make([]string, 0, len(n.children))
	for l := range n.children {
		labels = append(labels, l)
	}

	sort.Strings(labels)
	return labels
}
