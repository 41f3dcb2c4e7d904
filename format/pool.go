package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/classread/classfile"
)

// PoolEncoder lists the constant pool in the style of javap -v.
type PoolEncoder struct {
	w   io.Writer
	doc *Document
}

func NewPoolEncoder(w io.Writer) *PoolEncoder {
	return &PoolEncoder{w: w}
}

func (e *PoolEncoder) Encode(doc *Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *PoolEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Constant pool of %s (%d slots):\n", e.doc.Class, len(e.doc.ConstantPool))
	for _, entry := range e.doc.ConstantPool {
		ref := "#" + strconv.Itoa(int(entry.Index))
		if entry.Tag == "reserved" {
			fmt.Fprintf(&sb, "%6s = (reserved)\n", ref)
			continue
		}
		line := fmt.Sprintf("%6s = %-18s %s", ref, entry.Tag, entry.Args)
		if entry.Comment != "" {
			line = fmt.Sprintf("%-42s // %s", line, entry.Comment)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// describe renders an entry's operands and, for references, what they
// point at. Broken references render as empty names.
func describe(cp classfile.ConstantPool, entry classfile.ConstantPoolEntry) (args, comment string) {
	switch e := entry.(type) {
	case *classfile.ConstantUtf8Info:
		return e.Value(), ""
	case *classfile.ConstantIntegerInfo:
		return strconv.FormatInt(int64(e.Value), 10), ""
	case *classfile.ConstantFloatInfo:
		return strconv.FormatFloat(float64(e.Value), 'g', -1, 32) + "f", ""
	case *classfile.ConstantLongInfo:
		return strconv.FormatInt(e.Value, 10) + "l", ""
	case *classfile.ConstantDoubleInfo:
		return strconv.FormatFloat(e.Value, 'g', -1, 64) + "d", ""
	case *classfile.ConstantClassInfo:
		return ref(e.NameIndex), cp.GetUtf8(e.NameIndex)
	case *classfile.ConstantStringInfo:
		return ref(e.StringIndex), cp.GetUtf8(e.StringIndex)
	case *classfile.ConstantFieldrefInfo:
		return ref(e.ClassIndex) + "." + ref(e.NameAndTypeIndex), memberRef(cp, e.ClassIndex, e.NameAndTypeIndex)
	case *classfile.ConstantMethodrefInfo:
		return ref(e.ClassIndex) + "." + ref(e.NameAndTypeIndex), memberRef(cp, e.ClassIndex, e.NameAndTypeIndex)
	case *classfile.ConstantInterfaceMethodrefInfo:
		return ref(e.ClassIndex) + "." + ref(e.NameAndTypeIndex), memberRef(cp, e.ClassIndex, e.NameAndTypeIndex)
	case *classfile.ConstantNameAndTypeInfo:
		return ref(e.NameIndex) + ":" + ref(e.DescriptorIndex), cp.GetUtf8(e.NameIndex) + ":" + cp.GetUtf8(e.DescriptorIndex)
	case *classfile.ConstantMethodHandleInfo:
		className, name, desc := cp.GetMemberRef(e.ReferenceIndex)
		return strconv.Itoa(int(e.ReferenceKind)) + ":" + ref(e.ReferenceIndex),
			e.ReferenceKind.String() + " " + className + "." + name + ":" + desc
	case *classfile.ConstantMethodTypeInfo:
		return ref(e.DescriptorIndex), cp.GetUtf8(e.DescriptorIndex)
	case *classfile.ConstantDynamicInfo:
		return bootstrapRef(cp, e.BootstrapMethodAttrIndex, e.NameAndTypeIndex)
	case *classfile.ConstantInvokeDynamicInfo:
		return bootstrapRef(cp, e.BootstrapMethodAttrIndex, e.NameAndTypeIndex)
	case *classfile.ConstantModuleInfo:
		return ref(e.NameIndex), cp.GetUtf8(e.NameIndex)
	case *classfile.ConstantPackageInfo:
		return ref(e.NameIndex), cp.GetUtf8(e.NameIndex)
	default:
		panic(fmt.Sprintf("format: unhandled constant %T", entry))
	}
}

func ref(index uint16) string {
	return "#" + strconv.Itoa(int(index))
}

func memberRef(cp classfile.ConstantPool, classIndex, natIndex uint16) string {
	name, desc := cp.GetNameAndType(natIndex)
	return cp.GetClassName(classIndex) + "." + name + ":" + desc
}

func bootstrapRef(cp classfile.ConstantPool, bsm, nat uint16) (args, comment string) {
	name, desc := cp.GetNameAndType(nat)
	return ref(bsm) + ":" + ref(nat), ref(bsm) + ":" + name + ":" + desc
}
