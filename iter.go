package ctrie

import (
	"errors"
	"io"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ErrStop is used to stop a ForEach function in a WordIter without
// returning an error.
var ErrStop = errors.New("stop iter")

// WordIter walks the words stored in a trie, depth first. Only the frames
// needed to resume the walk are kept, words are built as they are reached.
//
// Words come out in a deterministic order for a given trie shape, but no
// particular order is part of the contract. The trie must not be modified
// while the iterator is in use.
type WordIter struct {
	// Each pending node is a frame holding the prefix spelled by the path
	// leading to it. Frames are pushed in reverse label order so they pop
	// in label order.
	stack *arraystack.Stack
}

type frame struct {
	prefix string
	node   *Node
}

func newWordIter(n *Node) *WordIter {
	iter := &WordIter{stack: arraystack.New()}
	if n != nil {
		iter.stack.Push(frame{node: n})
	}

	return iter
}

// Next returns the next word. It returns io.EOF when there are no more
// words.
func (iter *WordIter) Next() (string, error) {
	for {
		v, ok := iter.stack.Pop()
		if !ok {
			return "", io.EOF
		}

		f := v.(frame)
		labels := f.node.labels()
		for i := len(labels) - 1; i >= 0; i-- {
			iter.stack.Push(frame{
				prefix: f.prefix + labels[i],
				node:   f.node.children[labels[i]],
			})
		}

		if f.node.terminal {
			return f.prefix, nil
		}
	}
}

// ForEach calls cb for each word until there are no more words, an error
// happens or cb returns an error. If ErrStop is returned by cb the iteration
// ends and ForEach returns nil.
func (iter *WordIter) ForEach(cb func(string) error) error {
	defer iter.Close()
	for {
		w, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return err
		}

		if err := cb(w); err != nil {
			if err == ErrStop {
				return nil
			}

			return err
		}
	}
}

// Close releases the pending frames. Next returns io.EOF afterwards.
func (iter *WordIter) Close() {
	iter.stack.Clear()
}

// Slice drains the iterator into a slice.
func (iter *WordIter) Slice() []string {
	var words []string
	_ = iter.ForEach(func(w string) error {
		words = append(words, w)
		return nil
	})

	return words
}
