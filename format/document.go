package format

import (
	"github.com/dhamidi/classread/classfile"
)

// Document is the encoder-neutral view of one class file. Indices are
// kept next to the names they resolve to.
type Document struct {
	Source       string      `json:"source"`
	Class        string      `json:"class"`
	SuperClass   string      `json:"superClass,omitempty"`
	Interfaces   []string    `json:"interfaces,omitempty"`
	Version      Version     `json:"version"`
	AccessFlags  uint16      `json:"accessFlags"`
	Flags        []string    `json:"flags,omitempty"`
	ConstantPool []PoolEntry `json:"constantPool"`
	Fields       []Member    `json:"fields,omitempty"`
	Methods      []Member    `json:"methods,omitempty"`
	Attributes   []Attribute `json:"attributes,omitempty"`
}

type Version struct {
	Major   uint16 `json:"major"`
	Minor   uint16 `json:"minor"`
	Release string `json:"release,omitempty"`
}

// PoolEntry is one constant pool slot. Reserved slots after Long and
// Double have Tag "reserved".
type PoolEntry struct {
	Index   uint16 `json:"index"`
	Tag     string `json:"tag"`
	Args    string `json:"args,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type Member struct {
	Name        string      `json:"name"`
	Descriptor  string      `json:"descriptor"`
	Type        string      `json:"type,omitempty"`
	AccessFlags uint16      `json:"accessFlags"`
	Flags       []string    `json:"flags,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

type Attribute struct {
	Name      string `json:"name"`
	NameIndex uint16 `json:"nameIndex"`
	Length    uint32 `json:"length"`
	Data      []byte `json:"data,omitempty"`
}

// NewDocument builds the view of cf. source names where cf was read from.
func NewDocument(source string, cf *classfile.ClassFile) *Document {
	cp := cf.ConstantPool
	doc := &Document{
		Source:     source,
		Class:      classfile.InternalToSourceName(cf.ClassName()),
		SuperClass: classfile.InternalToSourceName(cf.SuperClassName()),
		Version: Version{
			Major:   cf.MajorVersion,
			Minor:   cf.MinorVersion,
			Release: classfile.JavaRelease(cf.MajorVersion),
		},
		AccessFlags:  uint16(cf.AccessFlags),
		Flags:        cf.AccessFlags.Names(classfile.ClassFlags),
		ConstantPool: poolEntries(cp),
		Attributes:   attributes(cp, cf.Attributes),
	}
	for _, name := range cf.InterfaceNames() {
		doc.Interfaces = append(doc.Interfaces, classfile.InternalToSourceName(name))
	}
	for i := range cf.Fields {
		f := &cf.Fields[i]
		m := Member{
			Name:        f.Name(cp),
			Descriptor:  f.Descriptor(cp),
			AccessFlags: uint16(f.AccessFlags),
			Flags:       f.AccessFlags.Names(classfile.FieldFlags),
			Attributes:  attributes(cp, f.Attributes),
		}
		if ft := f.ParsedDescriptor(cp); ft != nil {
			m.Type = ft.String()
		}
		doc.Fields = append(doc.Fields, m)
	}
	for i := range cf.Methods {
		meth := &cf.Methods[i]
		m := Member{
			Name:        meth.Name(cp),
			Descriptor:  meth.Descriptor(cp),
			AccessFlags: uint16(meth.AccessFlags),
			Flags:       meth.AccessFlags.Names(classfile.MethodFlags),
			Attributes:  attributes(cp, meth.Attributes),
		}
		if md := meth.ParsedDescriptor(cp); md != nil {
			m.Type = md.String()
		}
		doc.Methods = append(doc.Methods, m)
	}
	return doc
}

func attributes(cp classfile.ConstantPool, attrs []classfile.AttributeInfo) []Attribute {
	var out []Attribute
	for i := range attrs {
		a := &attrs[i]
		out = append(out, Attribute{
			Name:      a.Name(cp),
			NameIndex: a.NameIndex,
			Length:    a.Length(),
			Data:      a.Info,
		})
	}
	return out
}

func poolEntries(cp classfile.ConstantPool) []PoolEntry {
	entries := make([]PoolEntry, 0, len(cp))
	for i, entry := range cp {
		index := uint16(i + 1)
		if entry == nil {
			entries = append(entries, PoolEntry{Index: index, Tag: "reserved"})
			continue
		}
		args, comment := describe(cp, entry)
		entries = append(entries, PoolEntry{
			Index:   index,
			Tag:     entry.Tag().String(),
			Args:    args,
			Comment: comment,
		})
	}
	return entries
}
