package filesystem

import (
	"errors"
	"fmt"

	"github.com/go-git/go-ctrie/plumbing/format/dict"
)

// DefaultMaxCacheEntries is the number of decoded tries kept in memory when
// Options.MaxCacheEntries is left to zero.
const DefaultMaxCacheEntries = 16

// ErrInvalidCacheSize is returned by Options.Validate for negative sizes.
var ErrInvalidCacheSize = errors.New("invalid cache size")

// Options holds configuration for the storage.
type Options struct {
	// Format is the dict format of the stored files, JSON by default.
	Format dict.Format
	// MaxCacheEntries is the maximum number of decoded tries kept in
	// memory. Zero means DefaultMaxCacheEntries.
	MaxCacheEntries int
	// DisableCache turns the decoded trie cache off, every read decodes
	// the stored file.
	DisableCache bool
}

// Validate validates the fields and sets the default values.
func (o *Options) Validate() error {
	switch o.Format {
	case dict.JSON, dict.YAML:
	default:
		return fmt.Errorf("%w: %s", dict.ErrUnknownFormat, o.Format)
	}

	if o.MaxCacheEntries < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, o.MaxCacheEntries)
	}

	if o.MaxCacheEntries == 0 {
		o.MaxCacheEntries = DefaultMaxCacheEntries
	}

	return nil
}
