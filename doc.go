// Package ctrie is a compact trie (radix tree) of strings used as a set.
// Words sharing a prefix share the edges spelling it, which keeps large sets
// of URLs, paths or dictionary words small.
//
// The trie is a tree of Node values. The root Node is the trie: it stores
// words with Add, drops them with Remove and answers Contains, Len and
// Height. Values walks the words lazily, Subtree returns a read-only View of
// the words under a prefix, and Union, Difference and Intersect combine
// tries in place. Equality is about the words held, not the node layout.
//
// The interchange format lives in plumbing/format/dict, persistence in the
// storage packages.
package ctrie
