package test

import (
	"github.com/stretchr/testify/suite"

	"github.com/go-git/go-ctrie"
	"github.com/go-git/go-ctrie/storage"
)

// BaseStorageSuite holds the tests every storage.Storer implementation must
// pass. Embed it and set Storer in SetupTest.
type BaseStorageSuite struct {
	suite.Suite
	Storer storage.Storer
}

func (s *BaseStorageSuite) TestSetAndGet() {
	t := ctrie.FromWords("foo", "foobar", "qux", "日本語")
	t.Remove("qux")

	s.NoError(s.Storer.SetTrie("words", t))

	got, err := s.Storer.Trie("words")
	s.NoError(err)
	s.True(got.Equal(t))
	s.Equal(t.Dict(), got.Dict())
}

func (s *BaseStorageSuite) TestSetEmpty() {
	s.NoError(s.Storer.SetTrie("empty", ctrie.New()))

	got, err := s.Storer.Trie("empty")
	s.NoError(err)
	s.True(got.IsEmpty())
}

func (s *BaseStorageSuite) TestReplace() {
	s.NoError(s.Storer.SetTrie("words", ctrie.FromWords("a")))
	s.NoError(s.Storer.SetTrie("words", ctrie.FromWords("b")))

	got, err := s.Storer.Trie("words")
	s.NoError(err)
	s.Equal([]string{"b"}, got.Values().Slice())
}

func (s *BaseStorageSuite) TestCopiesInAndOut() {
	t := ctrie.FromWords("a")
	s.NoError(s.Storer.SetTrie("words", t))
	t.Add("b")

	got, err := s.Storer.Trie("words")
	s.NoError(err)
	s.False(got.Contains("b"))

	got.Add("c")
	again, err := s.Storer.Trie("words")
	s.NoError(err)
	s.False(again.Contains("c"))
}

func (s *BaseStorageSuite) TestNotFound() {
	_, err := s.Storer.Trie("missing")
	s.ErrorIs(err, storage.ErrTrieNotFound)

	s.ErrorIs(s.Storer.RemoveTrie("missing"), storage.ErrTrieNotFound)
}

func (s *BaseStorageSuite) TestRemove() {
	s.NoError(s.Storer.SetTrie("words", ctrie.FromWords("a")))
	s.NoError(s.Storer.RemoveTrie("words"))

	_, err := s.Storer.Trie("words")
	s.ErrorIs(err, storage.ErrTrieNotFound)
}

func (s *BaseStorageSuite) TestNames() {
	names, err := s.Storer.Names()
	s.NoError(err)
	s.Empty(names)

	for _, name := range []string{"b", "a", "c.d", "e_f-g"} {
		s.NoError(s.Storer.SetTrie(name, ctrie.FromWords(name)))
	}

	s.NoError(s.Storer.RemoveTrie("b"))

	names, err = s.Storer.Names()
	s.NoError(err)
	s.Equal([]string{"a", "c.d", "e_f-g"}, names)
}

func (s *BaseStorageSuite) TestInvalidName() {
	for _, name := range []string{"", ".hidden", "a/b", "a b", "日本"} {
		s.ErrorIs(s.Storer.SetTrie(name, ctrie.New()), storage.ErrInvalidName, name)
	}
}
