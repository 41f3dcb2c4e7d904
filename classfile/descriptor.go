package classfile

import "strings"

// FieldType is a descriptor broken into its parts for display. Parsing is
// lenient: it never validates, it only gives up.
type FieldType struct {
	BaseType   string
	ClassName  string
	ArrayDepth int
}

// String renders the type in source form, e.g. java.lang.String[][].
func (ft *FieldType) String() string {
	var sb strings.Builder
	if ft.BaseType != "" {
		sb.WriteString(ft.BaseType)
	} else {
		sb.WriteString(InternalToSourceName(ft.ClassName))
	}
	for range ft.ArrayDepth {
		sb.WriteString("[]")
	}
	return sb.String()
}

type MethodDescriptor struct {
	Parameters []FieldType
	// ReturnType is nil for void.
	ReturnType *FieldType
}

func (md *MethodDescriptor) String() string {
	params := make([]string, len(md.Parameters))
	for i := range md.Parameters {
		params[i] = md.Parameters[i].String()
	}
	ret := "void"
	if md.ReturnType != nil {
		ret = md.ReturnType.String()
	}
	return ret + " (" + strings.Join(params, ", ") + ")"
}

var baseTypes = map[byte]string{
	'B': "byte", 'C': "char", 'D': "double", 'F': "float",
	'I': "int", 'J': "long", 'S': "short", 'Z': "boolean",
}

// ParseFieldDescriptor returns nil when desc is not a single field type.
func ParseFieldDescriptor(desc string) *FieldType {
	ft, n := parseFieldType(desc)
	if ft == nil || n != len(desc) {
		return nil
	}
	return ft
}

// ParseMethodDescriptor returns nil when desc does not look like
// (params)ret.
func ParseMethodDescriptor(desc string) *MethodDescriptor {
	rest, ok := strings.CutPrefix(desc, "(")
	if !ok {
		return nil
	}
	md := &MethodDescriptor{}
	for !strings.HasPrefix(rest, ")") {
		ft, n := parseFieldType(rest)
		if ft == nil {
			return nil
		}
		md.Parameters = append(md.Parameters, *ft)
		rest = rest[n:]
	}
	rest = rest[1:]
	if rest == "V" {
		return md
	}
	if md.ReturnType = ParseFieldDescriptor(rest); md.ReturnType == nil {
		return nil
	}
	return md
}

// parseFieldType parses one field type at the start of s and reports how
// many bytes it used.
func parseFieldType(s string) (*FieldType, int) {
	ft := &FieldType{}
	i := 0
	for i < len(s) && s[i] == '[' {
		ft.ArrayDepth++
		i++
	}
	if i >= len(s) {
		return nil, 0
	}
	if base, ok := baseTypes[s[i]]; ok {
		ft.BaseType = base
		return ft, i + 1
	}
	if s[i] != 'L' {
		return nil, 0
	}
	end := strings.IndexByte(s[i:], ';')
	if end < 2 {
		return nil, 0
	}
	ft.ClassName = s[i+1 : i+end]
	return ft, i + end + 1
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}
