package classfile

import (
	"fmt"
	"iter"
	"math"
)

// ConstantPoolEntry is one of the Constant*Info types below. The set is
// closed: decode produces no other implementations.
type ConstantPoolEntry interface {
	Tag() ConstantTag
	constant()
}

type ConstantUtf8Info struct {
	Length uint16
	// Bytes holds the modified UTF-8 encoding exactly as stored.
	Bytes []byte
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }
func (c *ConstantUtf8Info) Value() string    { return decodeModifiedUtf8(c.Bytes) }

type ConstantIntegerInfo struct {
	Value int32
}

func (c *ConstantIntegerInfo) Tag() ConstantTag { return ConstantInteger }

type ConstantFloatInfo struct {
	Value float32
}

func (c *ConstantFloatInfo) Tag() ConstantTag { return ConstantFloat }

type ConstantLongInfo struct {
	Value int64
}

func (c *ConstantLongInfo) Tag() ConstantTag { return ConstantLong }

type ConstantDoubleInfo struct {
	Value float64
}

func (c *ConstantDoubleInfo) Tag() ConstantTag { return ConstantDouble }

type ConstantClassInfo struct {
	NameIndex uint16
}

func (c *ConstantClassInfo) Tag() ConstantTag { return ConstantClass }

type ConstantStringInfo struct {
	StringIndex uint16
}

func (c *ConstantStringInfo) Tag() ConstantTag { return ConstantString }

type ConstantFieldrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantFieldrefInfo) Tag() ConstantTag { return ConstantFieldref }

type ConstantMethodrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantMethodrefInfo) Tag() ConstantTag { return ConstantMethodref }

type ConstantInterfaceMethodrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantInterfaceMethodrefInfo) Tag() ConstantTag { return ConstantInterfaceMethodref }

type ConstantNameAndTypeInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndTypeInfo) Tag() ConstantTag { return ConstantNameAndType }

type ConstantMethodHandleInfo struct {
	ReferenceKind  MethodHandleKind
	ReferenceIndex uint16
}

func (c *ConstantMethodHandleInfo) Tag() ConstantTag { return ConstantMethodHandle }

type ConstantMethodTypeInfo struct {
	DescriptorIndex uint16
}

func (c *ConstantMethodTypeInfo) Tag() ConstantTag { return ConstantMethodType }

type ConstantDynamicInfo struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantDynamicInfo) Tag() ConstantTag { return ConstantDynamic }

type ConstantInvokeDynamicInfo struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantInvokeDynamicInfo) Tag() ConstantTag { return ConstantInvokeDynamic }

type ConstantModuleInfo struct {
	NameIndex uint16
}

func (c *ConstantModuleInfo) Tag() ConstantTag { return ConstantModule }

type ConstantPackageInfo struct {
	NameIndex uint16
}

func (c *ConstantPackageInfo) Tag() ConstantTag { return ConstantPackage }

func (*ConstantUtf8Info) constant()               {}
func (*ConstantIntegerInfo) constant()            {}
func (*ConstantFloatInfo) constant()              {}
func (*ConstantLongInfo) constant()               {}
func (*ConstantDoubleInfo) constant()             {}
func (*ConstantClassInfo) constant()              {}
func (*ConstantStringInfo) constant()             {}
func (*ConstantFieldrefInfo) constant()           {}
func (*ConstantMethodrefInfo) constant()          {}
func (*ConstantInterfaceMethodrefInfo) constant() {}
func (*ConstantNameAndTypeInfo) constant()        {}
func (*ConstantMethodHandleInfo) constant()       {}
func (*ConstantMethodTypeInfo) constant()         {}
func (*ConstantDynamicInfo) constant()            {}
func (*ConstantInvokeDynamicInfo) constant()      {}
func (*ConstantModuleInfo) constant()             {}
func (*ConstantPackageInfo) constant()            {}

// ConstantPool is addressed with the 1-based indices used throughout the
// class file: entry i lives at cp[i-1]. The slot following a Long or
// Double is nil.
type ConstantPool []ConstantPoolEntry

// readConstantPool decodes the count-1 entries that follow the declared
// constant_pool_count.
func readConstantPool(c *cursor, count uint16) (ConstantPool, error) {
	if count == 0 {
		return ConstantPool{}, nil
	}
	cp := make(ConstantPool, count-1)
	for index := 1; index < int(count); {
		entry, err := readConstant(c, index)
		if err != nil {
			return nil, fmt.Errorf("read constant pool entry %d: %w", index, err)
		}
		cp[index-1] = entry
		index += slotWidth(entry.Tag())
	}
	return cp, nil
}

// slotWidth is the number of index positions an entry consumes. Long and
// Double take two; the second is never written.
func slotWidth(tag ConstantTag) int {
	if tag == ConstantLong || tag == ConstantDouble {
		return 2
	}
	return 1
}

func readConstant(c *cursor, index int) (ConstantPoolEntry, error) {
	offset := c.off
	tag := ConstantTag(c.u1())
	if c.err != nil {
		return nil, c.err
	}

	var entry ConstantPoolEntry
	switch tag {
	case ConstantUtf8:
		length := c.u2()
		entry = &ConstantUtf8Info{Length: length, Bytes: c.bytes(int(length))}
	case ConstantInteger:
		entry = &ConstantIntegerInfo{Value: int32(c.u4())}
	case ConstantFloat:
		entry = &ConstantFloatInfo{Value: math.Float32frombits(c.u4())}
	case ConstantLong:
		entry = &ConstantLongInfo{Value: int64(c.u8())}
	case ConstantDouble:
		entry = &ConstantDoubleInfo{Value: math.Float64frombits(c.u8())}
	case ConstantClass:
		entry = &ConstantClassInfo{NameIndex: c.u2()}
	case ConstantString:
		entry = &ConstantStringInfo{StringIndex: c.u2()}
	case ConstantFieldref:
		entry = &ConstantFieldrefInfo{ClassIndex: c.u2(), NameAndTypeIndex: c.u2()}
	case ConstantMethodref:
		entry = &ConstantMethodrefInfo{ClassIndex: c.u2(), NameAndTypeIndex: c.u2()}
	case ConstantInterfaceMethodref:
		entry = &ConstantInterfaceMethodrefInfo{ClassIndex: c.u2(), NameAndTypeIndex: c.u2()}
	case ConstantNameAndType:
		entry = &ConstantNameAndTypeInfo{NameIndex: c.u2(), DescriptorIndex: c.u2()}
	case ConstantMethodHandle:
		entry = &ConstantMethodHandleInfo{ReferenceKind: MethodHandleKind(c.u1()), ReferenceIndex: c.u2()}
	case ConstantMethodType:
		entry = &ConstantMethodTypeInfo{DescriptorIndex: c.u2()}
	case ConstantDynamic:
		entry = &ConstantDynamicInfo{BootstrapMethodAttrIndex: c.u2(), NameAndTypeIndex: c.u2()}
	case ConstantInvokeDynamic:
		entry = &ConstantInvokeDynamicInfo{BootstrapMethodAttrIndex: c.u2(), NameAndTypeIndex: c.u2()}
	case ConstantModule:
		entry = &ConstantModuleInfo{NameIndex: c.u2()}
	case ConstantPackage:
		entry = &ConstantPackageInfo{NameIndex: c.u2()}
	default:
		return nil, &MalformedConstantTagError{Tag: uint8(tag), Index: index, Offset: offset}
	}
	if c.err != nil {
		return nil, c.err
	}
	return entry, nil
}

// Count is the constant_pool_count the pool was decoded from.
func (cp ConstantPool) Count() int {
	return len(cp) + 1
}

// Entry returns the entry at a 1-based index.
func (cp ConstantPool) Entry(index uint16) (ConstantPoolEntry, error) {
	if index == 0 || int(index) > len(cp) {
		return nil, fmt.Errorf("%w: %d (pool has %d slots)", ErrBadIndex, index, len(cp))
	}
	entry := cp[index-1]
	if entry == nil {
		return nil, fmt.Errorf("%w: %d", ErrReservedSlot, index)
	}
	return entry, nil
}

// All yields every populated entry with its 1-based index, skipping the
// reserved slots.
func (cp ConstantPool) All() iter.Seq2[uint16, ConstantPoolEntry] {
	return func(yield func(uint16, ConstantPoolEntry) bool) {
		for i, entry := range cp {
			if entry == nil {
				continue
			}
			if !yield(uint16(i+1), entry) {
				return
			}
		}
	}
}

func entryAs[T ConstantPoolEntry](cp ConstantPool, index uint16) (T, bool) {
	var zero T
	entry, err := cp.Entry(index)
	if err != nil {
		return zero, false
	}
	typed, ok := entry.(T)
	return typed, ok
}

func (cp ConstantPool) GetUtf8(index uint16) string {
	if entry, ok := entryAs[*ConstantUtf8Info](cp, index); ok {
		return entry.Value()
	}
	return ""
}

func (cp ConstantPool) GetClassName(index uint16) string {
	if entry, ok := entryAs[*ConstantClassInfo](cp, index); ok {
		return cp.GetUtf8(entry.NameIndex)
	}
	return ""
}

func (cp ConstantPool) GetString(index uint16) string {
	if entry, ok := entryAs[*ConstantStringInfo](cp, index); ok {
		return cp.GetUtf8(entry.StringIndex)
	}
	return ""
}

func (cp ConstantPool) GetNameAndType(index uint16) (name, descriptor string) {
	if entry, ok := entryAs[*ConstantNameAndTypeInfo](cp, index); ok {
		return cp.GetUtf8(entry.NameIndex), cp.GetUtf8(entry.DescriptorIndex)
	}
	return "", ""
}

func (cp ConstantPool) GetModuleName(index uint16) string {
	if entry, ok := entryAs[*ConstantModuleInfo](cp, index); ok {
		return cp.GetUtf8(entry.NameIndex)
	}
	return ""
}

func (cp ConstantPool) GetPackageName(index uint16) string {
	if entry, ok := entryAs[*ConstantPackageInfo](cp, index); ok {
		return cp.GetUtf8(entry.NameIndex)
	}
	return ""
}

// GetMemberRef resolves any of the three *ref kinds.
func (cp ConstantPool) GetMemberRef(index uint16) (className, name, descriptor string) {
	entry, err := cp.Entry(index)
	if err != nil {
		return "", "", ""
	}
	var classIndex, natIndex uint16
	switch e := entry.(type) {
	case *ConstantFieldrefInfo:
		classIndex, natIndex = e.ClassIndex, e.NameAndTypeIndex
	case *ConstantMethodrefInfo:
		classIndex, natIndex = e.ClassIndex, e.NameAndTypeIndex
	case *ConstantInterfaceMethodrefInfo:
		classIndex, natIndex = e.ClassIndex, e.NameAndTypeIndex
	default:
		return "", "", ""
	}
	name, descriptor = cp.GetNameAndType(natIndex)
	return cp.GetClassName(classIndex), name, descriptor
}
