package storage

import (
	"errors"
	"fmt"

	"github.com/go-git/go-ctrie"
)

var (
	// ErrTrieNotFound is returned when no trie is stored under a name.
	ErrTrieNotFound = errors.New("trie not found")
	// ErrInvalidName is returned when a trie name cannot be stored.
	ErrInvalidName = errors.New("invalid trie name")
)

// Storer is a named collection of tries. The package
// github.com/go-git/go-ctrie/storage contains two implementations: a
// filesystem based one, persisting every trie in its own dict file, and an
// ephemeral memory one.
//
// Tries are copied in and out: a trie returned by Trie can be modified
// freely and is only persisted again by SetTrie.
type Storer interface {
	// SetTrie stores a copy of n under name, replacing any previous trie.
	SetTrie(name string, n *ctrie.Node) error
	// Trie returns a copy of the trie stored under name.
	Trie(name string) (*ctrie.Node, error)
	// RemoveTrie deletes the trie stored under name.
	RemoveTrie(name string) error
	// Names returns the names of all the stored tries, sorted.
	Names() ([]string, error)
}

// ValidateName checks that name can be used to store a trie: it must be
// non-empty, must not start with a dot and may only hold ASCII letters,
// digits, dots, dashes and underscores.
func ValidateName(name string) error {
	if name == "" || name[0] == '.' {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}

	return nil
}
