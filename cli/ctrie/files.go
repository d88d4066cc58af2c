package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-ctrie"
	"github.com/go-git/go-ctrie/plumbing/format/dict"
)

type CmdImport struct {
	cmd

	InputFormat string `long:"input-format" description:"Format of the file, guessed from its extension when empty."`

	Args struct {
		Trie string `positional-arg-name:"trie" required:"yes"`
		File string `positional-arg-name:"file" required:"yes"`
	} `positional-args:"yes"`
}

func (c *CmdImport) Execute(args []string) error {
	name := c.InputFormat
	if name == "" {
		name = filepath.Ext(c.Args.File)
	}

	format, err := dict.ParseFormat(name)
	if err != nil {
		return err
	}

	s, err := c.open()
	if err != nil {
		return err
	}

	f, err := os.Open(c.Args.File)
	if err != nil {
		return err
	}

	defer f.Close()

	n, err := dict.NewDecoder(f, format).DecodeNode()
	if err != nil {
		return fmt.Errorf("%s: %w", c.Args.File, err)
	}

	if c.normalize {
		n = ctrie.FromWords(c.words(n.Values().Slice())...)
	}

	return s.SetTrie(c.Args.Trie, n)
}

type CmdExport struct {
	cmd

	OutputFormat string `long:"output-format" default:"json" description:"Format to write: json or yaml."`

	Args struct {
		Trie string `positional-arg-name:"trie" required:"yes"`
	} `positional-args:"yes"`
}

func (c *CmdExport) Execute(args []string) error {
	format, err := dict.ParseFormat(c.OutputFormat)
	if err != nil {
		return err
	}

	s, err := c.open()
	if err != nil {
		return err
	}

	n, err := load(s, c.Args.Trie, false)
	if err != nil {
		return err
	}

	return dict.NewEncoder(stdout, format).EncodeNode(n)
}

type CmdNames struct {
	cmd
}

func (c *CmdNames) Execute(args []string) error {
	s, err := c.open()
	if err != nil {
		return err
	}

	names, err := s.Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}

	return nil
}

type CmdDrop struct {
	cmd

	Args struct {
		Trie string `positional-arg-name:"trie" required:"yes"`
	} `positional-args:"yes"`
}

func (c *CmdDrop) Execute(args []string) error {
	s, err := c.open()
	if err != nil {
		return err
	}

	return s.RemoveTrie(c.Args.Trie)
}
