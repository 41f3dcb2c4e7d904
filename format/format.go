// Package format renders decoded class files.
package format

import (
	"encoding"
	"fmt"
	"io"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *Document) error
}

// Formats lists the names accepted by NewEncoder.
var Formats = []string{"line", "pool", "json", "cbor"}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w), nil
	case "pool":
		return NewPoolEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "cbor":
		return NewCBOREncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected one of %v)", name, Formats)
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
