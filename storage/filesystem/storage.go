// Package filesystem is a storage backend base on filesystems
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/golang/groupcache/lru"

	"github.com/go-git/go-ctrie"
	"github.com/go-git/go-ctrie/plumbing/format/dict"
	"github.com/go-git/go-ctrie/storage"
	"github.com/go-git/go-ctrie/utils/trace"
)

// Storage is an implementation of storage.Storer that stores every trie in
// its own dict file, named after the trie, at the root of a filesystem.
type Storage struct {
	fs      billy.Filesystem
	options Options

	mu    sync.Mutex
	cache *lru.Cache
}

// NewStorage returns a new Storage backed by a given `fs.Filesystem` using
// the default options.
func NewStorage(fs billy.Filesystem) *Storage {
	s, _ := NewStorageWithOptions(fs, Options{})
	return s
}

// NewStorageWithOptions returns a new Storage with extra options, backed by
// a given `fs.Filesystem`.
func NewStorageWithOptions(fs billy.Filesystem, ops Options) (*Storage, error) {
	if err := ops.Validate(); err != nil {
		return nil, err
	}

	s := &Storage{fs: fs, options: ops}
	if !ops.DisableCache {
		s.cache = lru.New(ops.MaxCacheEntries)
	}

	return s, nil
}

// Filesystem returns the underlying filesystem.
func (s *Storage) Filesystem() billy.Filesystem {
	return s.fs
}

func (s *Storage) path(name string) string {
	return name + s.options.Format.Extension()
}

// SetTrie writes n to the file of the trie. The file is written aside and
// renamed into place, so readers never see a partial file.
func (s *Storage) SetTrie(name string, n *ctrie.Node) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(name, n); err != nil {
		return err
	}

	s.cacheAdd(name, n.Clone())
	trace.Storage.Printf("filesystem: stored %q", name)
	return nil
}

func (s *Storage) write(name string, n *ctrie.Node) (err error) {
	f, err := s.fs.TempFile("", "."+name+"-")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = s.fs.Remove(f.Name())
		}
	}()

	if err = dict.NewEncoder(f, s.options.Format).EncodeNode(n); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %q: %w", name, err)
	}

	if err = f.Close(); err != nil {
		return err
	}

	return s.fs.Rename(f.Name(), s.path(name))
}

// Trie decodes the trie stored under name, or takes it from the cache.
func (s *Storage) Trie(name string) (*ctrie.Node, error) {
	if err := storage.ValidateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.cacheGet(name); ok {
		trace.Storage.Printf("filesystem: cache hit %q", name)
		return n.Clone(), nil
	}

	n, err := s.read(name)
	if err != nil {
		return nil, err
	}

	s.cacheAdd(name, n)
	trace.Storage.Printf("filesystem: loaded %q", name)
	return n.Clone(), nil
}

func (s *Storage) read(name string) (*ctrie.Node, error) {
	f, err := s.fs.Open(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", storage.ErrTrieNotFound, name)
		}

		return nil, err
	}

	defer f.Close()

	n, err := dict.NewDecoder(f, s.options.Format).DecodeNode()
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}

	return n, nil
}

// RemoveTrie deletes the file of the trie stored under name.
func (s *Storage) RemoveTrie(name string) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		s.cache.Remove(name)
	}

	if err := s.fs.Remove(s.path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %q", storage.ErrTrieNotFound, name)
		}

		return err
	}

	trace.Storage.Printf("filesystem: removed %q", name)
	return nil
}

// Names lists the tries stored in the filesystem.
func (s *Storage) Names() ([]string, error) {
	fis, err := s.fs.ReadDir(".")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	ext := s.options.Format.Extension()
	var names []string
	for _, fi := range fis {
		name, ok := strings.CutSuffix(fi.Name(), ext)
		if fi.IsDir() || !ok || storage.ValidateName(name) != nil {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func (s *Storage) cacheAdd(name string, n *ctrie.Node) {
	if s.cache != nil {
		s.cache.Add(name, n)
	}
}

func (s *Storage) cacheGet(name string) (*ctrie.Node, bool) {
	if s.cache == nil {
		return nil, false
	}

	v, ok := s.cache.Get(name)
	if !ok {
		return nil, false
	}

	return v.(*ctrie.Node), true
}
