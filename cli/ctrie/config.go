package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/go-git/gcfg"
)

const (
	configEnv      = "CTRIE_CONFIG"
	configFileName = ".ctrieconfig"

	defaultStorePath = ".ctrie"
	defaultFormat    = "json"
)

// Config is the content of the configuration file:
//
//	[store]
//		path = /var/lib/ctrie
//		format = yaml
//		cache = 32
//	[input]
//		normalize
type Config struct {
	Store struct {
		Path   string
		Format string
		Cache  int
	}

	Input struct {
		Normalize bool
	}
}

// NewConfig returns a Config holding the default values.
func NewConfig() *Config {
	c := &Config{}
	c.Store.Path = defaultStorePath
	c.Store.Format = defaultFormat
	return c
}

// configPath returns the file named by CTRIE_CONFIG, or ~/.ctrieconfig.
func configPath() (string, error) {
	if p := os.Getenv(configEnv); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// loadConfig reads the file at path over the defaults. A missing file is not
// an error.
func loadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, err
	}

	defer f.Close()

	if err := readConfig(f, cfg); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return cfg, nil
}

func readConfig(r io.Reader, cfg *Config) error {
	return gcfg.ReadInto(cfg, r)
}

// merge overrides cfg with every non zero value of flags.
func merge(cfg, flags *Config) error {
	return mergo.Merge(cfg, flags, mergo.WithOverride)
}
