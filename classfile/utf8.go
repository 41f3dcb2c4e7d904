package classfile

import "unicode/utf16"

// decodeModifiedUtf8 decodes the JVM's modified UTF-8: NUL is encoded as
// C0 80 and supplementary characters as two 3-byte surrogates. Each 1-3
// byte group is one UTF-16 unit, so surrogate pairing is left to utf16.
// Malformed bytes decode as U+FFFD.
func decodeModifiedUtf8(b []byte) string {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			units = append(units, 0xFFFD)
			i++
		}
	}
	return string(utf16.Decode(units))
}
