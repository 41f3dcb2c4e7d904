// Package classtest assembles class file bytes for tests.
package classtest

import (
	"bytes"
	"encoding/binary"
)

// Tag bytes, repeated here so this package does not import classfile.
const (
	TagUtf8  = 1
	TagLong  = 5
	TagClass = 7
)

type Builder struct {
	buf bytes.Buffer
}

// New starts a class file with the magic number and version 61.0.
func New() *Builder {
	b := &Builder{}
	return b.U4(0xCAFEBABE).U2(0).U2(61)
}

func (b *Builder) U1(v uint8) *Builder {
	b.buf.WriteByte(v)
	return b
}

func (b *Builder) U2(v uint16) *Builder {
	b.buf.Write(binary.BigEndian.AppendUint16(nil, v))
	return b
}

func (b *Builder) U4(v uint32) *Builder {
	b.buf.Write(binary.BigEndian.AppendUint32(nil, v))
	return b
}

func (b *Builder) U8(v uint64) *Builder {
	b.buf.Write(binary.BigEndian.AppendUint64(nil, v))
	return b
}

func (b *Builder) Raw(p []byte) *Builder {
	b.buf.Write(p)
	return b
}

func (b *Builder) Utf8(s string) *Builder {
	return b.U1(TagUtf8).U2(uint16(len(s))).Raw([]byte(s))
}

func (b *Builder) Class(nameIndex uint16) *Builder {
	return b.U1(TagClass).U2(nameIndex)
}

func (b *Builder) Attr(nameIndex uint16, payload []byte) *Builder {
	return b.U2(nameIndex).U4(uint32(len(payload))).Raw(payload)
}

// EmptyBody writes access flags 0x0021, this_class, super_class and zero
// interfaces, fields, methods and attributes.
func (b *Builder) EmptyBody(thisClass, superClass uint16) *Builder {
	return b.U2(0x0021).U2(thisClass).U2(superClass).U2(0).U2(0).U2(0).U2(0)
}

func (b *Builder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// Named is a class with nothing but a this_class entry.
func Named(internalName string) []byte {
	return New().U2(3).Utf8(internalName).Class(1).EmptyBody(2, 0).Bytes()
}

var CodePayload = []byte{0x00, 0x01, 0x00, 0x01, 0xB1}

// Sample is a small but complete class:
//
//	public class com/example/Widget extends java/lang/Object implements java/lang/Runnable
//	  public static final long count (ConstantValue #14)
//	  public void run() (Code, opaque)
//	  SourceFile: Widget.java
func Sample() []byte {
	b := New()
	b.U2(17)
	b.Utf8("com/example/Widget") // 1
	b.Class(1)                   // 2
	b.Utf8("java/lang/Object")   // 3
	b.Class(3)                   // 4
	b.Utf8("java/lang/Runnable") // 5
	b.Class(5)                   // 6
	b.Utf8("count")              // 7
	b.Utf8("J")                  // 8
	b.Utf8("run")                // 9
	b.Utf8("()V")                // 10
	b.Utf8("Code")               // 11
	b.Utf8("SourceFile")         // 12
	b.Utf8("Widget.java")        // 13
	b.U1(TagLong).U8(1 << 40)    // 14, 15
	b.Utf8("ConstantValue")      // 16

	b.U2(0x0021).U2(2).U2(4)
	b.U2(1).U2(6)

	b.U2(1)
	b.U2(0x0019).U2(7).U2(8).U2(1).Attr(16, []byte{0x00, 0x0E})

	b.U2(1)
	b.U2(0x0001).U2(9).U2(10).U2(1).Attr(11, CodePayload)

	b.U2(1).Attr(12, []byte{0x00, 0x0D})
	return b.Bytes()
}
