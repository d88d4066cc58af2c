package ctrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonPrefix(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"", "", ""},
		{"foo", "", ""},
		{"foo", "bar", ""},
		{"foo", "foobar", "foo"},
		{"foobar", "foo", "foo"},
		{"fooqux", "foobar", "foo"},
		{"same", "same", "same"},
		{"é", "è", ""},
		{"aé", "aè", "a"},
		{"日本", "日本語", "日本"},
		{"\xc3", "\xc3\xa9", ""},
		{"\xc3\xa9Z", "\xc3\xa8", ""},
		{"\xc3Z", "\xc3Y", "\xc3"},
		{"\xff\xfe", "\xff\xfe\xfd", "\xff\xfe"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, commonPrefix(c.a, c.b), "%q %q", c.a, c.b)
	}
}

func TestCutPrefix(t *testing.T) {
	rest, ok := cutPrefix("foobar", "foo")
	assert.True(t, ok)
	assert.Equal(t, "bar", rest)

	_, ok = cutPrefix("foo", "foobar")
	assert.False(t, ok)

	_, ok = cutPrefix("\xc3\xa9", "\xc3")
	assert.False(t, ok)

	rest, ok = cutPrefix("\xc3Z", "\xc3")
	assert.True(t, ok)
	assert.Equal(t, "Z", rest)
}

func TestBoundary(t *testing.T) {
	cases := []struct {
		s    string
		i    int
		want bool
	}{
		{"", 0, true},
		{"abc", 2, true},
		{"é", 1, false},
		{"é", 2, true},
		{"\xa9\xa9", 1, true},
		{"\xe3\xc3\xa9", 1, true},
		{"\xe3\xc3\xa9", 2, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, boundary(c.s, c.i), "%q %d", c.s, c.i)
	}
}
