package dict

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-git/go-ctrie"
	"github.com/go-git/go-ctrie/utils/trace"
)

// A Decoder reads the interchange representation from an input stream.
type Decoder struct {
	r      io.Reader
	format Format
}

// NewDecoder returns a new decoder that reads from r in the given format.
func NewDecoder(r io.Reader, f Format) *Decoder {
	return &Decoder{r: r, format: f}
}

// Decode reads the next document from its input and stores it in the value
// pointed to by d.
func (d *Decoder) Decode(v *ctrie.Dict) error {
	trace.Format.Printf("dict: decoding %s", d.format)
	switch d.format {
	case JSON:
		return json.NewDecoder(d.r).Decode(v)
	case YAML:
		return yaml.NewDecoder(d.r).Decode(v)
	}

	return fmt.Errorf("%w: %s", ErrUnknownFormat, d.format)
}

// DecodeNode reads the next document and builds the trie it describes.
func (d *Decoder) DecodeNode() (*ctrie.Node, error) {
	v := &ctrie.Dict{}
	if err := d.Decode(v); err != nil {
		return nil, err
	}

	return ctrie.FromDict(v)
}
