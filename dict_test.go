package ctrie

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DictSuite struct {
	suite.Suite
}

func TestDictSuite(t *testing.T) {
	suite.Run(t, new(DictSuite))
}

func (s *DictSuite) TestEmpty() {
	s.Equal(&Dict{Children: map[string]*Dict{}}, New().Dict())

	n, err := FromDict(nil)
	s.NoError(err)
	s.True(n.IsEmpty())

	n, err = FromDict(&Dict{})
	s.NoError(err)
	s.True(n.IsEmpty())
}

func (s *DictSuite) TestRoundTripKeepsShape() {
	t := FromWords("abcdef", "abcxyz", "", "foo", "foobar", "日本語")
	t.Remove("abcxyz")

	n, err := FromDict(t.Dict())
	s.NoError(err)
	s.Equal(t.Dict(), n.Dict())
	s.True(n.Equal(t))
	s.Equal(t.Height(), n.Height())
}

func (s *DictSuite) TestFromDict() {
	n, err := FromDict(&Dict{
		Children: map[string]*Dict{
			"foo": {
				Terminal: true,
				Children: map[string]*Dict{"bar": {Terminal: true}},
			},
			"qux": {Terminal: true},
		},
	})

	s.NoError(err)
	s.ElementsMatch([]string{"foo", "foobar", "qux"}, n.Values().Slice())
	s.True(n.Add("fooqux"))
	s.NoError(n.Validate())
}

func (s *DictSuite) TestFromDictErrors() {
	cases := []struct {
		name string
		d    *Dict
		err  error
	}{
		{
			name: "empty label",
			d:    &Dict{Children: map[string]*Dict{"": {Terminal: true}}},
			err:  ErrEmptyLabel,
		},
		{
			name: "nil child",
			d:    &Dict{Children: map[string]*Dict{"a": nil}},
			err:  ErrNilChild,
		},
		{
			name: "conflict",
			d: &Dict{Children: map[string]*Dict{
				"ab": {Terminal: true},
				"ac": {Terminal: true},
			}},
			err: ErrLabelConflict,
		},
		{
			name: "lead byte conflict",
			d: &Dict{Children: map[string]*Dict{
				"\xc3":     {Terminal: true},
				"\xc3\xa9": {Terminal: true},
				"\xc3\xff": {Terminal: true},
			}},
			err: ErrLabelConflict,
		},
		{
			name: "split character",
			d: &Dict{Children: map[string]*Dict{
				"\xc3": {Children: map[string]*Dict{
					"\xa9": {Terminal: true},
				}},
			}},
			err: ErrLabelBoundary,
		},
		{
			name: "nested conflict",
			d: &Dict{Children: map[string]*Dict{
				"x": {Children: map[string]*Dict{
					"foo": {Terminal: true},
					"f":   {Terminal: true},
				}},
			}},
			err: ErrLabelConflict,
		},
	}

	for _, c := range cases {
		_, err := FromDict(c.d)
		s.ErrorIs(err, c.err, c.name)
	}
}
