package ctrie

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ViewSuite struct {
	suite.Suite
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewSuite))
}

func (s *ViewSuite) TestEmptyTrie() {
	s.Empty(New().Subtree("").Values().Slice())
	s.Empty(New().Subtree("something").Values().Slice())
	s.True(New().Subtree("something").IsEmpty())
}

func (s *ViewSuite) TestEmptyPrefix() {
	words := []string{"foo", "foobar"}
	t := FromWords(words...)
	s.ElementsMatch(words, t.Subtree("").Values().Slice())
}

func (s *ViewSuite) TestNonMatchingPrefix() {
	t := FromWords("a", "b", "c", "d")
	v := t.Subtree("e")
	s.Empty(v.Values().Slice())
	s.Equal(0, v.Len())
}

func (s *ViewSuite) TestMatchingPrefix() {
	t := FromWords("fooa", "foob", "fooc", "food")
	s.ElementsMatch([]string{"a", "b", "c", "d"}, t.Subtree("foo").Values().Slice())
}

func (s *ViewSuite) TestMatchingPrefixCut() {
	t := FromWords("fooa", "foob", "fooc", "food")
	s.ElementsMatch([]string{"oa", "ob", "oc", "od"}, t.Subtree("fo").Values().Slice())
	s.ElementsMatch([]string{"fooa", "foob", "fooc", "food"}, t.Subtree("").Values().Slice())
}

func (s *ViewSuite) TestPrefixIsWord() {
	t := FromWords("foo", "foobar", "foobaz", "qux")
	v := t.Subtree("foo")
	s.True(v.IsTerminal())
	s.ElementsMatch([]string{"", "bar", "baz"}, v.Values().Slice())

	v = t.Subtree("foobar")
	s.Equal([]string{""}, v.Values().Slice())
}

func (s *ViewSuite) TestPrefixMatchesWholeCharacters() {
	t := FromWords("\xc3\xa9t\xc3\xa9", "\xc3Z", "\xc3Y")
	s.ElementsMatch([]string{"Y", "Z"}, t.Subtree("\xc3").Values().Slice())
	s.Equal([]string{"t\xc3\xa9"}, t.Subtree("\xc3\xa9").Values().Slice())
	s.True(t.Subtree("\xc3\xa9t\xc3").IsEmpty())
}

func (s *ViewSuite) TestDeepPrefix() {
	t := FromWords("abcdef", "abcxyz", "abcxyw", "b")

	cases := []struct {
		prefix string
		want   []string
	}{
		{"a", []string{"bcdef", "bcxyz", "bcxyw"}},
		{"abc", []string{"def", "xyz", "xyw"}},
		{"abcx", []string{"yz", "yw"}},
		{"abcxy", []string{"z", "w"}},
		{"abcxyz", []string{""}},
		{"abcd", []string{"ef"}},
		{"abcq", nil},
		{"abd", nil},
		{"abcxyzz", nil},
		{"bb", nil},
	}

	for _, c := range cases {
		v := t.Subtree(c.prefix)
		s.ElementsMatch(c.want, v.Values().Slice(), c.prefix)
		s.Equal(len(c.want), v.Len(), c.prefix)
	}
}

func (s *ViewSuite) TestNestedSubtree() {
	t := FromWords("abcdef", "abcxyz", "abcxyw")
	s.True(t.Subtree("ab").Subtree("cx").Equal(t.Subtree("abcx")))
	s.ElementsMatch([]string{"z", "w"}, t.Subtree("a").Subtree("bcxy").Values().Slice())
}

func (s *ViewSuite) TestViewSharesNodes() {
	t := FromWords("fooa", "foob")
	v := t.Subtree("foo")

	t.Add("fooc")
	s.True(v.Contains("c"))

	t.Remove("fooa")
	s.False(v.Contains("a"))
}

func (s *ViewSuite) TestCloneIsIndependent() {
	t := FromWords("fooa", "foob")
	c := t.Subtree("foo").Clone()

	c.Add("zz")
	c.Remove("a")
	s.False(t.Contains("foozz"))
	s.True(t.Contains("fooa"))
	s.ElementsMatch([]string{"b", "zz"}, c.Values().Slice())
}

func (s *ViewSuite) TestStructuralQueries() {
	t := FromWords("fooa", "foob", "foobar")
	v := t.Subtree("foo")
	s.Equal(3, v.Len())
	s.Equal(2, v.Height())
	s.False(v.IsEmpty())
	s.NoError(v.Clone().Validate())
	s.Equal(v.Clone().Dict(), v.Dict())
	s.Equal("{a, b, bar}", v.String())
}
