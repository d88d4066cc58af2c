package ctrie

import (
	"strings"
	"unicode/utf8"
)

// Labels are made of units: a UTF-8 encoded rune, or a single byte that
// does not start a valid encoding. Strings are compared, split and matched
// unit by unit, so every label of a trie built from valid UTF-8 words is
// valid UTF-8, and words that are not valid UTF-8 are never split in a way
// that lets two sibling labels start with the same byte sequence.

// unitLen returns the length in bytes of the first unit of s.
func unitLen(s string) int {
	_, n := utf8.DecodeRuneInString(s)
	return n
}

// commonPrefix returns the longest common prefix of a and b made of whole
// units of both.
func commonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) {
		n := unitLen(a[i:])
		if n != unitLen(b[i:]) || a[i:i+n] != b[i:i+n] {
			break
		}

		i += n
	}

	return a[:i]
}

// boundary reports whether i falls between two units of s.
func boundary(s string, i int) bool {
	j := 0
	for j < i {
		j += unitLen(s[j:])
	}

	return j == i
}

// cutPrefix returns word without the leading prefix and whether word
// started with it. A prefix ending inside a unit of word does not match.
func cutPrefix(word, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(word, prefix)
	if !ok || !boundary(word, len(prefix)) {
		return word, false
	}

	return rest, true
}

// firstUnit returns the first unit of s.
func firstUnit(s string) string {
	return s[:unitLen(s)]
}
