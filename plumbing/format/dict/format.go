// Package dict implements encoding and decoding of the ctrie interchange
// representation: a nested mapping of the form
//
//	{"terminal": false, "children": {"foo": {"terminal": true, "children": {}}}}
//
// Files keep the exact node shape of the trie they were written from.
package dict

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when a format name is not recognised.
var ErrUnknownFormat = errors.New("unknown dict format")

// Format is a serialization of the interchange representation.
type Format int

const (
	// JSON is the default format.
	JSON Format = iota
	// YAML writes the same mapping as a YAML document.
	YAML
)

// ParseFormat returns the format with the given name or file extension,
// case insensitive, with or without the leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file extension used for the format, with a leading
// dot.
func (f Format) Extension() string {
	return "." + f.String()
}
