package dict

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/go-git/go-ctrie"
	"github.com/go-git/go-ctrie/utils/trace"
)

// json sorts map keys, so encoding the same shape twice gives the same
// bytes.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// An Encoder writes the interchange representation to an output stream.
type Encoder struct {
	w      io.Writer
	format Format
}

// NewEncoder returns a new encoder that writes to w in the given format.
func NewEncoder(w io.Writer, f Format) *Encoder {
	return &Encoder{w: w, format: f}
}

// Encode writes d to the stream.
func (e *Encoder) Encode(d *ctrie.Dict) error {
	if d == nil {
		d = ctrie.New().Dict()
	}

	trace.Format.Printf("dict: encoding %s", e.format)
	switch e.format {
	case JSON:
		enc := json.NewEncoder(e.w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case YAML:
		enc := yaml.NewEncoder(e.w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}

		return enc.Close()
	}

	return fmt.Errorf("%w: %s", ErrUnknownFormat, e.format)
}

// EncodeNode writes the interchange representation of n to the stream.
func (e *Encoder) EncodeNode(n *ctrie.Node) error {
	return e.Encode(n.Dict())
}
