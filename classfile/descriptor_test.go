package classfile

import "testing"

func TestParseFieldDescriptor(t *testing.T) {
	tests := []struct {
		desc       string
		baseType   string
		className  string
		arrayDepth int
		source     string
	}{
		{"I", "int", "", 0, "int"},
		{"Z", "boolean", "", 0, "boolean"},
		{"Ljava/lang/String;", "", "java/lang/String", 0, "java.lang.String"},
		{"[I", "int", "", 1, "int[]"},
		{"[[D", "double", "", 2, "double[][]"},
		{"[Ljava/lang/Object;", "", "java/lang/Object", 1, "java.lang.Object[]"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			ft := ParseFieldDescriptor(tt.desc)
			if ft == nil {
				t.Fatalf("ParseFieldDescriptor(%q) returned nil", tt.desc)
			}
			if ft.BaseType != tt.baseType {
				t.Errorf("BaseType = %q, want %q", ft.BaseType, tt.baseType)
			}
			if ft.ClassName != tt.className {
				t.Errorf("ClassName = %q, want %q", ft.ClassName, tt.className)
			}
			if ft.ArrayDepth != tt.arrayDepth {
				t.Errorf("ArrayDepth = %d, want %d", ft.ArrayDepth, tt.arrayDepth)
			}
			if got := ft.String(); got != tt.source {
				t.Errorf("String() = %q, want %q", got, tt.source)
			}
		})
	}
}

func TestParseFieldDescriptorGivesUp(t *testing.T) {
	for _, desc := range []string{"", "[", "Q", "L;", "Ljava/lang/String", "II"} {
		if ft := ParseFieldDescriptor(desc); ft != nil {
			t.Errorf("ParseFieldDescriptor(%q) = %+v, want nil", desc, ft)
		}
	}
}

func TestParseMethodDescriptor(t *testing.T) {
	tests := []struct {
		desc      string
		numParams int
		source    string
	}{
		{"()V", 0, "void ()"},
		{"()I", 0, "int ()"},
		{"(I)V", 1, "void (int)"},
		{"(II)I", 2, "int (int, int)"},
		{"(Ljava/lang/String;)V", 1, "void (java.lang.String)"},
		{"(IDLjava/lang/Thread;)Ljava/lang/Object;", 3, "java.lang.Object (int, double, java.lang.Thread)"},
		{"([[J)[Z", 1, "boolean[] (long[][])"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			md := ParseMethodDescriptor(tt.desc)
			if md == nil {
				t.Fatalf("ParseMethodDescriptor(%q) returned nil", tt.desc)
			}
			if len(md.Parameters) != tt.numParams {
				t.Errorf("len(Parameters) = %d, want %d", len(md.Parameters), tt.numParams)
			}
			if got := md.String(); got != tt.source {
				t.Errorf("String() = %q, want %q", got, tt.source)
			}
		})
	}

	for _, desc := range []string{"", "V", "(", "(I", "()", "()VV", "(X)V"} {
		if md := ParseMethodDescriptor(desc); md != nil {
			t.Errorf("ParseMethodDescriptor(%q) = %+v, want nil", desc, md)
		}
	}
}
