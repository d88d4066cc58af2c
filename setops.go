package ctrie

// Source is anything that can enumerate a finite sequence of words.
type Source interface {
	Values() *WordIter
}

// Set is a Source that can also answer membership queries.
type Set interface {
	Source
	Contains(word string) bool
}

// Words is a Source over a plain list of words. Duplicates are enumerated
// once.
type Words []string

// Values returns an iterator over the distinct words of the list.
func (w Words) Values() *WordIter {
	return FromWords(w...).Values()
}

// Equal reports whether n and other hold the same words, whatever the shape
// of their nodes.
func (n *Node) Equal(other Set) bool {
	return equal(n, other)
}

func equal(a, b Set) bool {
	return includes(a, b) && includes(b, a)
}

// includes reports whether every word of a is in b.
func includes(a, b Set) bool {
	ok := true
	_ = a.Values().ForEach(func(w string) error {
		if !b.Contains(w) {
			ok = false
			return ErrStop
		}

		return nil
	})

	return ok
}

// Union adds every word of other to n.
func (n *Node) Union(other Source) error {
	return other.Values().ForEach(func(w string) error {
		n.add(w)
		return nil
	})
}

// Difference removes every word of other from n. Words missing from n are
// ignored.
func (n *Node) Difference(other Source) error {
	return other.Values().ForEach(func(w string) error {
		n.remove(w)
		return nil
	})
}

// Intersect keeps in n only the words also in other. The words to drop are
// collected before the trie is modified.
func (n *Node) Intersect(other Source) error {
	set, ok := other.(Set)
	if !ok {
		t := New()
		if err := t.Union(other); err != nil {
			return err
		}

		set = t
	}

	var drop []string
	if err := n.Values().ForEach(func(w string) error {
		if !set.Contains(w) {
			drop = append(drop, w)
		}

		return nil
	}); err != nil {
		return err
	}

	n.Remove(drop...)
	return nil
}
