package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w   io.Writer
	doc *Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	text, err := json.MarshalIndent(e.doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
