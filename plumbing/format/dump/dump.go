// Package dump renders the node layout of a trie as an indented tree, for
// humans. The output is not meant to be parsed back, use the dict format
// for that.
package dump

import (
	"io"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/go-git/go-ctrie"
)

const (
	// RootItem is the line printed for the root node.
	RootItem = "."
	// TerminalMark is appended to the line of every node ending a word.
	TerminalMark = " *"
)

// An Encoder writes the layout of a trie to an output stream.
type Encoder struct {
	w     io.Writer
	style list.Style
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, style: list.StyleConnectedLight}
}

// SetStyle changes the style of the tree drawing.
func (e *Encoder) SetStyle(s list.Style) {
	e.style = s
}

// Encode writes the layout described by d, one line per node. Labels are
// quoted and sorted.
func (e *Encoder) Encode(d *ctrie.Dict) error {
	_, err := io.WriteString(e.w, e.render(d)+"\n")
	return err
}

// EncodeNode writes the layout of n.
func (e *Encoder) EncodeNode(n *ctrie.Node) error {
	return e.Encode(n.Dict())
}

func (e *Encoder) render(d *ctrie.Dict) string {
	if d == nil {
		d = &ctrie.Dict{}
	}

	l := list.NewWriter()
	l.SetStyle(e.style)
	l.AppendItem(item(RootItem, d.Terminal))
	appendChildren(l, d)

	return l.Render()
}

func appendChildren(l list.Writer, d *ctrie.Dict) {
	if len(d.Children) == 0 {
		return
	}

	labels := make([]string, 0, len(d.Children))
	for label := range d.Children {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	l.Indent()
	for _, label := range labels {
		child := d.Children[label]
		if child == nil {
			child = &ctrie.Dict{}
		}

		l.AppendItem(item(strconv.Quote(label), child.Terminal))
		appendChildren(l, child)
	}
	l.UnIndent()
}

func item(text string, terminal bool) string {
	if terminal {
		return text + TerminalMark
	}

	return text
}
