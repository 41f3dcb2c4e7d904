package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/classread/classfile"
	"github.com/dhamidi/classread/internal/classtest"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	cf, err := classfile.Decode(classtest.Sample())
	require.NoError(t, err)
	return NewDocument("Widget.class", cf)
}

func TestNewDocument(t *testing.T) {
	doc := sampleDocument(t)

	assert.Equal(t, "com.example.Widget", doc.Class)
	assert.Equal(t, "java.lang.Object", doc.SuperClass)
	assert.Equal(t, []string{"java.lang.Runnable"}, doc.Interfaces)
	assert.Equal(t, Version{Major: 61, Minor: 0, Release: "17"}, doc.Version)
	assert.Equal(t, []string{"ACC_PUBLIC", "ACC_SUPER"}, doc.Flags)

	require.Len(t, doc.Fields, 1)
	assert.Equal(t, "count", doc.Fields[0].Name)
	assert.Equal(t, "long", doc.Fields[0].Type)
	assert.Equal(t, []string{"ACC_PUBLIC", "ACC_STATIC", "ACC_FINAL"}, doc.Fields[0].Flags)

	require.Len(t, doc.Methods, 1)
	assert.Equal(t, "void ()", doc.Methods[0].Type)
	require.Len(t, doc.Methods[0].Attributes, 1)
	assert.Equal(t, Attribute{Name: "Code", NameIndex: 11, Length: 5, Data: classtest.CodePayload}, doc.Methods[0].Attributes[0])

	require.Len(t, doc.ConstantPool, 16)
	assert.Equal(t, PoolEntry{Index: 2, Tag: "Class", Args: "#1", Comment: "com/example/Widget"}, doc.ConstantPool[1])
	assert.Equal(t, PoolEntry{Index: 14, Tag: "Long", Args: "1099511627776l"}, doc.ConstantPool[13])
	assert.Equal(t, PoolEntry{Index: 15, Tag: "reserved"}, doc.ConstantPool[14])
}

func TestDescribe(t *testing.T) {
	b := classtest.New().U2(12)
	b.Utf8("Foo")                  // 1
	b.Class(1)                     // 2
	b.Utf8("bar")                  // 3
	b.Utf8("()V")                  // 4
	b.U1(12).U2(3).U2(4)           // 5 NameAndType
	b.U1(10).U2(2).U2(5)           // 6 Methodref
	b.U1(15).U1(6).U2(6)           // 7 MethodHandle
	b.U1(18).U2(0).U2(5)           // 8 InvokeDynamic
	b.U1(4).U4(0x3FC00000)         // 9 Float
	b.U1(6).U8(0xBFF0000000000000) // 10, 11 Double
	cf, err := classfile.Decode(b.EmptyBody(2, 0).Bytes())
	require.NoError(t, err)
	cp := cf.ConstantPool

	tests := []struct {
		index   uint16
		args    string
		comment string
	}{
		{5, "#3:#4", "bar:()V"},
		{6, "#2.#5", "Foo.bar:()V"},
		{7, "6:#6", "REF_invokeStatic Foo.bar:()V"},
		{8, "#0:#5", "#0:bar:()V"},
		{9, "1.5f", ""},
		{10, "-1d", ""},
	}
	for _, tt := range tests {
		entry, err := cp.Entry(tt.index)
		require.NoError(t, err)
		args, comment := describe(cp, entry)
		assert.Equal(t, tt.args, args, "args of #%d", tt.index)
		assert.Equal(t, tt.comment, comment, "comment of #%d", tt.index)
	}
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf).Encode(sampleDocument(t)))

	want := strings.Join([]string{
		"class\tcom.example.Widget\t61.0\tpublic,super",
		"super\tjava.lang.Object",
		"interface\tjava.lang.Runnable",
		"attribute\tcom.example.Widget\tSourceFile\t2",
		"field\tcount\tJ\tpublic,static,final",
		"attribute\tcount\tConstantValue\t2",
		"method\trun\t()V\tpublic",
		"attribute\trun()V\tCode\t5",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPoolEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPoolEncoder(&buf).Encode(sampleDocument(t)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "Constant pool of com.example.Widget (16 slots):", lines[0])
	assert.Equal(t, "    #1 = Utf8               com/example/Widget", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "    #2 = Class              #1"), lines[2])
	assert.True(t, strings.HasSuffix(lines[2], " // com/example/Widget"), lines[2])
	assert.Equal(t, "   #15 = (reserved)", lines[15])
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(sampleDocument(t)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "com.example.Widget", decoded["class"])
	assert.Equal(t, "Widget.class", decoded["source"])
	assert.Len(t, decoded["constantPool"], 16)
}

func TestCBOREncoderIsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, NewCBOREncoder(&first).Encode(sampleDocument(t)))
	require.NoError(t, NewCBOREncoder(&second).Encode(sampleDocument(t)))
	assert.Equal(t, first.Bytes(), second.Bytes())

	var decoded Document
	require.NoError(t, cbor.Unmarshal(first.Bytes(), &decoded))
	assert.Equal(t, "com.example.Widget", decoded.Class)
	assert.Equal(t, classtest.CodePayload, decoded.Methods[0].Attributes[0].Data)
}

func TestNewEncoder(t *testing.T) {
	for _, name := range Formats {
		enc, err := NewEncoder(name, &bytes.Buffer{})
		assert.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}
	_, err := NewEncoder("xml", &bytes.Buffer{})
	assert.Error(t, err)
}
