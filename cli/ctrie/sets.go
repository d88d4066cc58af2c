package main

import (
	"fmt"

	"github.com/go-git/go-ctrie"
	"github.com/go-git/go-ctrie/plumbing/format/dump"
	"github.com/go-git/go-ctrie/storage"
)

// pair holds the two trie names of the commands combining two tries.
type pair struct {
	A string `positional-arg-name:"trie" required:"yes"`
	B string `positional-arg-name:"other" required:"yes"`
}

func (c *cmd) loadPair(p pair, create bool) (storage.Storer, *ctrie.Node, *ctrie.Node, error) {
	s, err := c.open()
	if err != nil {
		return nil, nil, nil, err
	}

	a, err := load(s, p.A, create)
	if err != nil {
		return nil, nil, nil, err
	}

	b, err := load(s, p.B, false)
	if err != nil {
		return nil, nil, nil, err
	}

	return s, a, b, nil
}

// combine applies op to the first trie of p and stores the result under the
// same name.
func (c *cmd) combine(p pair, create bool, op func(a, b *ctrie.Node) error) error {
	s, a, b, err := c.loadPair(p, create)
	if err != nil {
		return err
	}

	if err := op(a, b); err != nil {
		return err
	}

	return s.SetTrie(p.A, a)
}

type CmdUnion struct {
	cmd

	Args pair `positional-args:"yes"`
}

func (c *CmdUnion) Execute(args []string) error {
	return c.combine(c.Args, true, func(a, b *ctrie.Node) error {
		return a.Union(b)
	})
}

type CmdIntersect struct {
	cmd

	Args pair `positional-args:"yes"`
}

func (c *CmdIntersect) Execute(args []string) error {
	return c.combine(c.Args, false, func(a, b *ctrie.Node) error {
		return a.Intersect(b)
	})
}

type CmdDifference struct {
	cmd

	Args pair `positional-args:"yes"`
}

func (c *CmdDifference) Execute(args []string) error {
	return c.combine(c.Args, false, func(a, b *ctrie.Node) error {
		return a.Difference(b)
	})
}

type CmdEqual struct {
	cmd

	Args pair `positional-args:"yes"`
}

func (c *CmdEqual) Execute(args []string) error {
	_, a, b, err := c.loadPair(c.Args, false)
	if err != nil {
		return err
	}

	ok := a.Equal(b)
	fmt.Fprintln(stdout, ok)
	return answer(ok)
}

type CmdDiff struct {
	cmd

	Args pair `positional-args:"yes"`
}

func (c *CmdDiff) Execute(args []string) error {
	_, a, b, err := c.loadPair(c.Args, false)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(stdout, dump.Diff(a.Dict(), b.Dict()))
	return err
}
