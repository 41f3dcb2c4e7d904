package classfile

import "fmt"

// AttributeInfo is a named, length-prefixed block. Info is not
// interpreted.
type AttributeInfo struct {
	NameIndex uint16
	Info      []byte
}

func (a *AttributeInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(a.NameIndex)
}

func (a *AttributeInfo) Length() uint32 {
	return uint32(len(a.Info))
}

// readAttributes reads a u2 count followed by that many attributes.
func readAttributes(c *cursor) ([]AttributeInfo, error) {
	count := c.u2()
	if c.err != nil {
		return nil, fmt.Errorf("read attributes count: %w", c.err)
	}

	attrs := make([]AttributeInfo, count)
	for i := range attrs {
		nameIndex := c.u2()
		length := c.u4()
		if c.err != nil {
			return nil, fmt.Errorf("read attribute %d header: %w", i, c.err)
		}
		// Compare before converting: a u4 length may not fit an int on
		// 32-bit platforms.
		if uint64(length) > uint64(c.remaining()) {
			return nil, fmt.Errorf("read attribute %d: %w: declared length %d, %d bytes remain",
				i, ErrUnexpectedEndOfInput, length, c.remaining())
		}
		attrs[i] = AttributeInfo{
			NameIndex: nameIndex,
			Info:      c.bytes(int(length)),
		}
	}
	return attrs, nil
}

func findAttribute(attrs []AttributeInfo, cp ConstantPool, name string) *AttributeInfo {
	for i := range attrs {
		if attrs[i].Name(cp) == name {
			return &attrs[i]
		}
	}
	return nil
}
