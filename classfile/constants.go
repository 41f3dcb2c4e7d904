package classfile

import "fmt"

const (
	Magic = 0xCAFEBABE
)

type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSuper        AccessFlags = 0x0020
	AccSynchronized AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040
	AccBridge       AccessFlags = 0x0040
	AccTransient    AccessFlags = 0x0080
	AccVarargs      AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccStrict       AccessFlags = 0x0800
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
	AccModule       AccessFlags = 0x8000
)

func (f AccessFlags) IsPublic() bool       { return f&AccPublic != 0 }
func (f AccessFlags) IsPrivate() bool      { return f&AccPrivate != 0 }
func (f AccessFlags) IsProtected() bool    { return f&AccProtected != 0 }
func (f AccessFlags) IsStatic() bool       { return f&AccStatic != 0 }
func (f AccessFlags) IsFinal() bool        { return f&AccFinal != 0 }
func (f AccessFlags) IsSuper() bool        { return f&AccSuper != 0 }
func (f AccessFlags) IsSynchronized() bool { return f&AccSynchronized != 0 }
func (f AccessFlags) IsVolatile() bool     { return f&AccVolatile != 0 }
func (f AccessFlags) IsBridge() bool       { return f&AccBridge != 0 }
func (f AccessFlags) IsTransient() bool    { return f&AccTransient != 0 }
func (f AccessFlags) IsVarargs() bool      { return f&AccVarargs != 0 }
func (f AccessFlags) IsNative() bool       { return f&AccNative != 0 }
func (f AccessFlags) IsInterface() bool    { return f&AccInterface != 0 }
func (f AccessFlags) IsAbstract() bool     { return f&AccAbstract != 0 }
func (f AccessFlags) IsStrict() bool       { return f&AccStrict != 0 }
func (f AccessFlags) IsSynthetic() bool    { return f&AccSynthetic != 0 }
func (f AccessFlags) IsAnnotation() bool   { return f&AccAnnotation != 0 }
func (f AccessFlags) IsEnum() bool         { return f&AccEnum != 0 }
func (f AccessFlags) IsModule() bool       { return f&AccModule != 0 }

// FlagContext selects how overloaded bits (0x0020, 0x0040, 0x0080) are named.
type FlagContext int

const (
	ClassFlags FlagContext = iota
	FieldFlags
	MethodFlags
)

type flagName struct {
	flag AccessFlags
	name string
}

var flagNames = map[FlagContext][]flagName{
	ClassFlags: {
		{AccPublic, "ACC_PUBLIC"}, {AccFinal, "ACC_FINAL"}, {AccSuper, "ACC_SUPER"},
		{AccInterface, "ACC_INTERFACE"}, {AccAbstract, "ACC_ABSTRACT"}, {AccSynthetic, "ACC_SYNTHETIC"},
		{AccAnnotation, "ACC_ANNOTATION"}, {AccEnum, "ACC_ENUM"}, {AccModule, "ACC_MODULE"},
	},
	FieldFlags: {
		{AccPublic, "ACC_PUBLIC"}, {AccPrivate, "ACC_PRIVATE"}, {AccProtected, "ACC_PROTECTED"},
		{AccStatic, "ACC_STATIC"}, {AccFinal, "ACC_FINAL"}, {AccVolatile, "ACC_VOLATILE"},
		{AccTransient, "ACC_TRANSIENT"}, {AccSynthetic, "ACC_SYNTHETIC"}, {AccEnum, "ACC_ENUM"},
	},
	MethodFlags: {
		{AccPublic, "ACC_PUBLIC"}, {AccPrivate, "ACC_PRIVATE"}, {AccProtected, "ACC_PROTECTED"},
		{AccStatic, "ACC_STATIC"}, {AccFinal, "ACC_FINAL"}, {AccSynchronized, "ACC_SYNCHRONIZED"},
		{AccBridge, "ACC_BRIDGE"}, {AccVarargs, "ACC_VARARGS"}, {AccNative, "ACC_NATIVE"},
		{AccAbstract, "ACC_ABSTRACT"}, {AccStrict, "ACC_STRICT"}, {AccSynthetic, "ACC_SYNTHETIC"},
	},
}

// Names lists the set flags in declaration order. Bits that have no
// meaning in ctx are omitted.
func (f AccessFlags) Names(ctx FlagContext) []string {
	var names []string
	for _, fn := range flagNames[ctx] {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

func (f AccessFlags) String() string {
	return fmt.Sprintf("0x%04x", uint16(f))
}

type ConstantTag uint8

const (
	ConstantUtf8               ConstantTag = 1
	ConstantInteger            ConstantTag = 3
	ConstantFloat              ConstantTag = 4
	ConstantLong               ConstantTag = 5
	ConstantDouble             ConstantTag = 6
	ConstantClass              ConstantTag = 7
	ConstantString             ConstantTag = 8
	ConstantFieldref           ConstantTag = 9
	ConstantMethodref          ConstantTag = 10
	ConstantInterfaceMethodref ConstantTag = 11
	ConstantNameAndType        ConstantTag = 12
	ConstantMethodHandle       ConstantTag = 15
	ConstantMethodType         ConstantTag = 16
	ConstantDynamic            ConstantTag = 17
	ConstantInvokeDynamic      ConstantTag = 18
	ConstantModule             ConstantTag = 19
	ConstantPackage            ConstantTag = 20
)

var tagNames = map[ConstantTag]string{
	ConstantUtf8:               "Utf8",
	ConstantInteger:            "Integer",
	ConstantFloat:              "Float",
	ConstantLong:               "Long",
	ConstantDouble:             "Double",
	ConstantClass:              "Class",
	ConstantString:             "String",
	ConstantFieldref:           "Fieldref",
	ConstantMethodref:          "Methodref",
	ConstantInterfaceMethodref: "InterfaceMethodref",
	ConstantNameAndType:        "NameAndType",
	ConstantMethodHandle:       "MethodHandle",
	ConstantMethodType:         "MethodType",
	ConstantDynamic:            "Dynamic",
	ConstantInvokeDynamic:      "InvokeDynamic",
	ConstantModule:             "Module",
	ConstantPackage:            "Package",
}

func (t ConstantTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

type MethodHandleKind uint8

const (
	RefGetField         MethodHandleKind = 1
	RefGetStatic        MethodHandleKind = 2
	RefPutField         MethodHandleKind = 3
	RefPutStatic        MethodHandleKind = 4
	RefInvokeVirtual    MethodHandleKind = 5
	RefInvokeStatic     MethodHandleKind = 6
	RefInvokeSpecial    MethodHandleKind = 7
	RefNewInvokeSpecial MethodHandleKind = 8
	RefInvokeInterface  MethodHandleKind = 9
)

var refKindNames = [...]string{
	RefGetField:         "REF_getField",
	RefGetStatic:        "REF_getStatic",
	RefPutField:         "REF_putField",
	RefPutStatic:        "REF_putStatic",
	RefInvokeVirtual:    "REF_invokeVirtual",
	RefInvokeStatic:     "REF_invokeStatic",
	RefInvokeSpecial:    "REF_invokeSpecial",
	RefNewInvokeSpecial: "REF_newInvokeSpecial",
	RefInvokeInterface:  "REF_invokeInterface",
}

func (k MethodHandleKind) String() string {
	if int(k) < len(refKindNames) && refKindNames[k] != "" {
		return refKindNames[k]
	}
	return fmt.Sprintf("REF_%d", uint8(k))
}

var javaReleases = map[uint16]string{
	45: "1.1", 46: "1.2", 47: "1.3", 48: "1.4", 49: "5", 50: "6", 51: "7", 52: "8",
}

// JavaRelease names the Java SE release that introduced a major version,
// or "" for versions it does not know.
func JavaRelease(major uint16) string {
	if name, ok := javaReleases[major]; ok {
		return name
	}
	if major > 52 && major <= 69 {
		return fmt.Sprint(major - 44)
	}
	return ""
}
