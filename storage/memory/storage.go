// Package memory is a storage backend base on memory
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-git/go-ctrie"
	"github.com/go-git/go-ctrie/storage"
)

// Storage is an implementation of storage.Storer that keeps the tries in
// memory, nothing is persisted.
type Storage struct {
	mu    sync.RWMutex
	tries map[string]*ctrie.Node
}

// NewStorage returns a new empty Storage.
func NewStorage() *Storage {
	return &Storage{tries: make(map[string]*ctrie.Node)}
}

// SetTrie stores a copy of n under name.
func (s *Storage) SetTrie(name string, n *ctrie.Node) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tries[name] = n.Clone()
	return nil
}

// Trie returns a copy of the trie stored under name.
func (s *Storage) Trie(name string) (*ctrie.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.tries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", storage.ErrTrieNotFound, name)
	}

	return n.Clone(), nil
}

// RemoveTrie deletes the trie stored under name.
func (s *Storage) RemoveTrie(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tries[name]; !ok {
		return fmt.Errorf("%w: %q", storage.ErrTrieNotFound, name)
	}

	delete(s.tries, name)
	return nil
}

// Names returns the sorted names of the stored tries.
func (s *Storage) Names() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tries))
	for name := range s.tries {
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
