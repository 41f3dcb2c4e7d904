package format

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// CBOREncoder writes each document as one CBOR data item. Map keys come
// from the json struct tags and are sorted, so equal documents encode to
// equal bytes.
type CBOREncoder struct {
	w   io.Writer
	doc *Document
}

func NewCBOREncoder(w io.Writer) *CBOREncoder {
	return &CBOREncoder{w: w}
}

func (e *CBOREncoder) Encode(doc *Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *CBOREncoder) MarshalText() ([]byte, error) {
	opts := cbor.EncOptions{
		Sort: cbor.SortCoreDeterministic,
	}
	em, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(e.doc)
}
