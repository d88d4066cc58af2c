package ctrie

import "strings"

// View is a read-only trie returned by Subtree. It shares nodes with the
// trie it was taken from: changes to that trie may show through the view.
// Use Clone to get an independent, mutable copy.
type View struct {
	root *Node
}

// Subtree returns the words starting with prefix, with prefix removed. The
// view is empty when no stored word starts with prefix. A prefix ending in
// the middle of a UTF-8 sequence of a word does not match that word.
func (n *Node) Subtree(prefix string) *View {
	return &View{root: n.subtree(prefix)}
}

func (n *Node) subtree(prefix string) *Node {
	cur := n
	for prefix != "" {
		if label, child, ok := cur.edge(prefix); ok {
			cur, prefix = child, prefix[len(label):]
			continue
		}

		// prefix ends in the middle of an edge
		for label, child := range cur.children {
			if rest, ok := cutPrefix(label, prefix); ok {
				root := &Node{}
				root.setChild(rest, child)
				return root
			}
		}

		return New()
	}

	return cur
}

// Contains reports whether word is in the view.
func (v *View) Contains(word string) bool {
	return v.root.Contains(word)
}

// IsEmpty reports whether the view holds no word.
func (v *View) IsEmpty() bool {
	return v.root.IsEmpty()
}

// IsTerminal reports whether the view holds the empty string, i.e. whether
// the prefix it was taken at is itself a stored word.
func (v *View) IsTerminal() bool {
	return v.root.IsTerminal()
}

// Height returns the height of the viewed trie.
func (v *View) Height() int {
	return v.root.Height()
}

// Len returns the number of words in the view.
func (v *View) Len() int {
	return v.root.Len()
}

// Values returns an iterator over the words in the view.
func (v *View) Values() *WordIter {
	return v.root.Values()
}

// Subtree narrows the view to the words starting with prefix.
func (v *View) Subtree(prefix string) *View {
	return v.root.Subtree(prefix)
}

// Equal reports whether the view and other hold the same words.
func (v *View) Equal(other Set) bool {
	return equal(v, other)
}

// Dict returns the interchange representation of the view.
func (v *View) Dict() *Dict {
	return v.root.Dict()
}

// Clone returns a mutable deep copy of the view.
func (v *View) Clone() *Node {
	return v.root.Clone()
}

// String returns the words of the view, for debugging.
func (v *View) String() string {
	return "{" + strings.Join(v.Values().Slice(), ", ") + "}"
}
