package outline

import (
	"fmt"
	"strings"

	"github.com/dhamidi/classread/classfile"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Symbols returns the class as one symbol with its fields and methods as
// children. Class files carry no source positions, so every range is empty.
func Symbols(cf *classfile.ClassFile) protocol.DocumentSymbol {
	cp := cf.ConstantPool
	detail := cf.Version()
	class := protocol.DocumentSymbol{
		Name:   classfile.InternalToSourceName(cf.ClassName()),
		Detail: &detail,
		Kind:   classKind(cf),
	}

	for i := range cf.Fields {
		f := &cf.Fields[i]
		kind := protocol.SymbolKindField
		if f.IsEnum() {
			kind = protocol.SymbolKindEnumMember
		} else if f.IsStatic() && f.IsFinal() {
			kind = protocol.SymbolKindConstant
		}
		class.Children = append(class.Children, protocol.DocumentSymbol{
			Name:   f.Name(cp),
			Detail: fieldDetail(cp, f),
			Kind:   kind,
		})
	}

	for i := range cf.Methods {
		m := &cf.Methods[i]
		if m.IsSynthetic() || m.IsStaticInitializer(cp) {
			continue
		}
		kind := protocol.SymbolKindMethod
		if m.IsConstructor(cp) {
			kind = protocol.SymbolKindConstructor
		}
		class.Children = append(class.Children, protocol.DocumentSymbol{
			Name:   m.Name(cp),
			Detail: methodDetail(cp, m),
			Kind:   kind,
		})
	}

	return class
}

func fieldDetail(cp classfile.ConstantPool, f *classfile.FieldInfo) *string {
	detail := f.Descriptor(cp)
	if ft := f.ParsedDescriptor(cp); ft != nil {
		detail = ft.String()
	}
	return &detail
}

func methodDetail(cp classfile.ConstantPool, m *classfile.MethodInfo) *string {
	detail := m.Descriptor(cp)
	if md := m.ParsedDescriptor(cp); md != nil {
		detail = md.String()
	}
	return &detail
}

func classKind(cf *classfile.ClassFile) protocol.SymbolKind {
	switch {
	case cf.IsModule():
		return protocol.SymbolKindModule
	case cf.IsEnum():
		return protocol.SymbolKindEnum
	case cf.AccessFlags.IsInterface():
		return protocol.SymbolKindInterface
	default:
		return protocol.SymbolKindClass
	}
}

// Summary is the markdown shown on hover.
func Summary(cf *classfile.ClassFile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n\n", classfile.InternalToSourceName(cf.ClassName()))
	fmt.Fprintf(&sb, "- version: %s\n", cf.Version())
	if flags := cf.AccessFlags.Names(classfile.ClassFlags); len(flags) > 0 {
		fmt.Fprintf(&sb, "- flags: %s\n", strings.Join(flags, " "))
	}
	if superName := cf.SuperClassName(); superName != "" {
		fmt.Fprintf(&sb, "- extends: %s\n", classfile.InternalToSourceName(superName))
	}
	for _, iface := range cf.InterfaceNames() {
		fmt.Fprintf(&sb, "- implements: %s\n", classfile.InternalToSourceName(iface))
	}
	fmt.Fprintf(&sb, "- %d constant pool slots, %d fields, %d methods, %d attributes\n",
		len(cf.ConstantPool), len(cf.Fields), len(cf.Methods), len(cf.Attributes))
	return sb.String()
}
