package main

import (
	"errors"

	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/text/unicode/norm"

	"github.com/go-git/go-ctrie"
	"github.com/go-git/go-ctrie/plumbing/format/dict"
	"github.com/go-git/go-ctrie/storage"
	"github.com/go-git/go-ctrie/storage/filesystem"
	"github.com/go-git/go-ctrie/utils/trace"
)

// cmd holds the options shared by every command working on stored tries.
type cmd struct {
	Store       string `long:"store" short:"s" description:"Directory holding the stored tries."`
	Format      string `long:"format" description:"Format of the stored tries: json or yaml."`
	Cache       int    `long:"cache" description:"Number of decoded tries kept in memory."`
	Normalize   bool   `long:"normalize" description:"Normalize words to Unicode NFC."`
	NoNormalize bool   `long:"no-normalize" description:"Keep words as given, even if the config file normalizes them."`
	Trace       bool   `long:"trace" description:"Trace storage and format operations to stderr."`

	normalize bool
}

// settings returns the configuration file merged with the command line.
func (c *cmd) settings() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}

	flags := &Config{}
	flags.Store.Path = c.Store
	flags.Store.Format = c.Format
	flags.Store.Cache = c.Cache
	flags.Input.Normalize = c.Normalize

	if err := merge(cfg, flags); err != nil {
		return nil, err
	}

	// false is a zero value, merge never copies it
	if c.NoNormalize {
		cfg.Input.Normalize = false
	}

	return cfg, nil
}

// open returns the storage configured for the command.
func (c *cmd) open() (storage.Storer, error) {
	if c.Trace {
		trace.SetTarget(trace.General | trace.Storage | trace.Format)
	}

	cfg, err := c.settings()
	if err != nil {
		return nil, err
	}

	format, err := dict.ParseFormat(cfg.Store.Format)
	if err != nil {
		return nil, err
	}

	c.normalize = cfg.Input.Normalize
	trace.General.Printf("store %s (%s)", cfg.Store.Path, format)

	return filesystem.NewStorageWithOptions(osfs.New(cfg.Store.Path), filesystem.Options{
		Format:          format,
		MaxCacheEntries: cfg.Store.Cache,
	})
}

func (c *cmd) word(w string) string {
	if c.normalize {
		return norm.NFC.String(w)
	}

	return w
}

func (c *cmd) words(ws []string) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = c.word(w)
	}

	return out
}

// load returns the stored trie name. With create set, a missing trie is
// returned empty.
func load(s storage.Storer, name string, create bool) (*ctrie.Node, error) {
	n, err := s.Trie(name)
	if create && errors.Is(err, storage.ErrTrieNotFound) {
		return ctrie.New(), nil
	}

	return n, err
}

func answer(ok bool) error {
	if ok {
		return nil
	}

	return errFalse
}
