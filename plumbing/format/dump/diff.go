package dump

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/go-git/go-ctrie"
)

// Diff compares the layouts of two tries line by line. Lines only in a are
// prefixed with "-", lines only in b with "+", shared lines with a space.
// It returns an empty string when both layouts are the same. Tries holding
// the same words with different shapes do not compare as the same.
func Diff(a, b *ctrie.Dict) string {
	e := NewEncoder(nil)
	ra, rb := e.render(a)+"\n", e.render(b)+"\n"
	if ra == rb {
		return ""
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(ra, rb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(prefix)
			sb.WriteString(line)
		}
	}

	return sb.String()
}
