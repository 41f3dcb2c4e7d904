package format

import (
	"fmt"
	"io"
	"strings"
)

// LineEncoder writes one tab-separated record per class, super class,
// interface, member and attribute.
type LineEncoder struct {
	w   io.Writer
	doc *Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	d := e.doc

	version := fmt.Sprintf("%d.%d", d.Version.Major, d.Version.Minor)
	fmt.Fprintf(&sb, "class\t%s\t%s\t%s\n", d.Class, version, flagsStr(d.Flags))
	if d.SuperClass != "" {
		fmt.Fprintf(&sb, "super\t%s\n", d.SuperClass)
	}
	for _, iface := range d.Interfaces {
		fmt.Fprintf(&sb, "interface\t%s\n", iface)
	}
	writeAttributes(&sb, d.Class, d.Attributes)

	for _, f := range d.Fields {
		fmt.Fprintf(&sb, "field\t%s\t%s\t%s\n", f.Name, f.Descriptor, flagsStr(f.Flags))
		writeAttributes(&sb, f.Name, f.Attributes)
	}
	for _, m := range d.Methods {
		fmt.Fprintf(&sb, "method\t%s\t%s\t%s\n", m.Name, m.Descriptor, flagsStr(m.Flags))
		writeAttributes(&sb, m.Name+m.Descriptor, m.Attributes)
	}

	return []byte(sb.String()), nil
}

func writeAttributes(sb *strings.Builder, owner string, attrs []Attribute) {
	for _, a := range attrs {
		fmt.Fprintf(sb, "attribute\t%s\t%s\t%d\n", owner, a.Name, a.Length)
	}
}

func flagsStr(flags []string) string {
	if len(flags) == 0 {
		return "-"
	}
	var short []string
	for _, f := range flags {
		short = append(short, strings.ToLower(strings.TrimPrefix(f, "ACC_")))
	}
	return strings.Join(short, ",")
}
