package classfile

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
)

// ParseFile reads and decodes the class file at path.
func ParseFile(path string) (*ClassFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	return Decode(data)
}

// ParseURL decodes the class file named by a file: URL.
func ParseURL(rawURL string) (*ClassFile, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid class file URL: %w", err)
	}
	if u.Scheme != "file" {
		return nil, fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	path := u.Path
	if path == "" {
		path = u.Opaque
	}
	return ParseFile(path)
}

// Parse reads rd to the end and decodes the result.
func Parse(rd io.Reader) (*ClassFile, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	return Decode(data)
}

// Decode decodes a complete class file. It either returns the whole
// structure or an error; nothing is returned on failure. The result does
// not share memory with data.
func Decode(data []byte) (*ClassFile, error) {
	if err := checkMagic(data); err != nil {
		return nil, err
	}
	c := newCursor(data)
	c.u4()

	cf := &ClassFile{
		MinorVersion: c.u2(),
		MajorVersion: c.u2(),
	}
	constantPoolCount := c.u2()
	if c.err != nil {
		return nil, fmt.Errorf("read version: %w", c.err)
	}

	cp, err := readConstantPool(c, constantPoolCount)
	if err != nil {
		return nil, err
	}
	cf.ConstantPool = cp

	cf.AccessFlags = AccessFlags(c.u2())
	cf.ThisClass = c.u2()
	cf.SuperClass = c.u2()

	interfacesCount := c.u2()
	if c.err != nil {
		return nil, fmt.Errorf("read class info: %w", c.err)
	}
	cf.Interfaces = make([]uint16, interfacesCount)
	for i := range cf.Interfaces {
		cf.Interfaces[i] = c.u2()
	}
	if c.err != nil {
		return nil, fmt.Errorf("read interfaces: %w", c.err)
	}

	fieldsCount := c.u2()
	if c.err != nil {
		return nil, fmt.Errorf("read fields count: %w", c.err)
	}
	cf.Fields = make([]FieldInfo, fieldsCount)
	for i := range cf.Fields {
		flags, name, desc, attrs, err := readMember(c)
		if err != nil {
			return nil, fmt.Errorf("read field %d: %w", i, err)
		}
		cf.Fields[i] = FieldInfo{AccessFlags: flags, NameIndex: name, DescriptorIndex: desc, Attributes: attrs}
	}

	methodsCount := c.u2()
	if c.err != nil {
		return nil, fmt.Errorf("read methods count: %w", c.err)
	}
	cf.Methods = make([]MethodInfo, methodsCount)
	for i := range cf.Methods {
		flags, name, desc, attrs, err := readMember(c)
		if err != nil {
			return nil, fmt.Errorf("read method %d: %w", i, err)
		}
		cf.Methods[i] = MethodInfo{AccessFlags: flags, NameIndex: name, DescriptorIndex: desc, Attributes: attrs}
	}

	cf.Attributes, err = readAttributes(c)
	if err != nil {
		return nil, fmt.Errorf("read class attributes: %w", err)
	}

	return cf, nil
}

// checkMagic rejects any buffer whose leading bytes differ from
// 0xCAFEBABE. A buffer that is a correct but short prefix is truncated
// rather than foreign.
func checkMagic(data []byte) error {
	magic := []byte{0xCA, 0xFE, 0xBA, 0xBE}
	n := min(len(data), len(magic))
	if !bytes.Equal(data[:n], magic[:n]) {
		return fmt.Errorf("%w: 0x%X (expected 0x%X)", ErrBadMagicNumber, data[:n], uint32(Magic))
	}
	if n < len(magic) {
		return fmt.Errorf("read magic: %w: have %d of 4 bytes", ErrUnexpectedEndOfInput, n)
	}
	return nil
}

// readMember reads the shape shared by field_info and method_info.
func readMember(c *cursor) (AccessFlags, uint16, uint16, []AttributeInfo, error) {
	flags := AccessFlags(c.u2())
	nameIndex := c.u2()
	descriptorIndex := c.u2()
	if c.err != nil {
		return 0, 0, 0, nil, c.err
	}
	attrs, err := readAttributes(c)
	if err != nil {
		return 0, 0, 0, nil, err
	}
	return flags, nameIndex, descriptorIndex, attrs, nil
}
