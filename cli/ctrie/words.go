package main

import (
	"fmt"

	"github.com/go-git/go-ctrie/plumbing/format/dump"
)

type CmdAdd struct {
	cmd

	Args struct {
		Trie  string   `positional-arg-name:"trie" required:"yes"`
		Words []string `positional-arg-name:"word" required:"1"`
	} `positional-args:"yes"`
}

func (c *CmdAdd) Execute(args []string) error {
	s, err := c.open()
	if err != nil {
		return err
	}

	n, err := load(s, c.Args.Trie, true)
	if err != nil {
		return err
	}

	n.Add(c.words(c.Args.Words)...)
	return s.SetTrie(c.Args.Trie, n)
}

type CmdRemove struct {
	cmd

	Args struct {
		Trie  string   `positional-arg-name:"trie" required:"yes"`
		Words []string `positional-arg-name:"word" required:"1"`
	} `positional-args:"yes"`
}

func (c *CmdRemove) Execute(args []string) error {
	s, err := c.open()
	if err != nil {
		return err
	}

	n, err := load(s, c.Args.Trie, false)
	if err != nil {
		return err
	}

	n.Remove(c.words(c.Args.Words)...)
	return s.SetTrie(c.Args.Trie, n)
}

type CmdContains struct {
	cmd

	Args struct {
		Trie string `positional-arg-name:"trie" required:"yes"`
		Word string `positional-arg-name:"word" required:"yes"`
	} `positional-args:"yes"`
}

func (c *CmdContains) Execute(args []string) error {
	s, err := c.open()
	if err != nil {
		return err
	}

	n, err := load(s, c.Args.Trie, false)
	if err != nil {
		return err
	}

	ok := n.Contains(c.word(c.Args.Word))
	fmt.Fprintln(stdout, ok)
	return answer(ok)
}

type CmdList struct {
	cmd

	Prefix string `long:"prefix" short:"p" description:"Only list the words starting with prefix."`

	Args struct {
		Trie string `positional-arg-name:"trie" required:"yes"`
	} `positional-args:"yes"`
}

func (c *CmdList) Execute(args []string) error {
	s, err := c.open()
	if err != nil {
		return err
	}

	n, err := load(s, c.Args.Trie, false)
	if err != nil {
		return err
	}

	prefix := c.word(c.Prefix)
	return n.Subtree(prefix).Values().ForEach(func(w string) error {
		_, err := fmt.Fprintln(stdout, prefix+w)
		return err
	})
}

type CmdDump struct {
	cmd

	Prefix string `long:"prefix" short:"p" description:"Dump the sub-trie under prefix."`

	Args struct {
		Trie string `positional-arg-name:"trie" required:"yes"`
	} `positional-args:"yes"`
}

func (c *CmdDump) Execute(args []string) error {
	s, err := c.open()
	if err != nil {
		return err
	}

	n, err := load(s, c.Args.Trie, false)
	if err != nil {
		return err
	}

	return dump.NewEncoder(stdout).Encode(n.Subtree(c.word(c.Prefix)).Dict())
}

type CmdStats struct {
	cmd

	Args struct {
		Trie string `positional-arg-name:"trie" required:"yes"`
	} `positional-args:"yes"`
}

func (c *CmdStats) Execute(args []string) error {
	s, err := c.open()
	if err != nil {
		return err
	}

	n, err := load(s, c.Args.Trie, false)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "words: %d\nheight: %d\nempty: %t\n", n.Len(), n.Height(), n.IsEmpty())
	return err
}
