package outline

import (
	"archive/zip"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/classread/classfile"
	"github.com/dhamidi/classread/internal/classtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestSymbols(t *testing.T) {
	cf, err := classfile.Decode(classtest.Sample())
	require.NoError(t, err)

	sym := Symbols(cf)
	assert.Equal(t, "com.example.Widget", sym.Name)
	assert.Equal(t, protocol.SymbolKindClass, sym.Kind)
	require.NotNil(t, sym.Detail)
	assert.Equal(t, "61.0 (Java 17)", *sym.Detail)

	require.Len(t, sym.Children, 2)
	assert.Equal(t, "count", sym.Children[0].Name)
	assert.Equal(t, protocol.SymbolKindConstant, sym.Children[0].Kind)
	assert.Equal(t, "long", *sym.Children[0].Detail)
	assert.Equal(t, "run", sym.Children[1].Name)
	assert.Equal(t, protocol.SymbolKindMethod, sym.Children[1].Kind)
	assert.Equal(t, "void ()", *sym.Children[1].Detail)
}

func TestSymbolsSkipsStaticInitializer(t *testing.T) {
	b := classtest.New().U2(7)
	b.Utf8("Thing").Class(1).Utf8("<init>").Utf8("()V").Utf8("<clinit>").Utf8("(XYZ")
	b.U2(0x0201).U2(2).U2(0).U2(0).U2(0)
	b.U2(3)
	b.U2(0x0001).U2(3).U2(4).U2(0)
	b.U2(0x0008).U2(5).U2(4).U2(0)
	b.U2(0x0401).U2(1).U2(6).U2(0)
	b.U2(0)
	cf, err := classfile.Decode(b.Bytes())
	require.NoError(t, err)

	sym := Symbols(cf)
	assert.Equal(t, protocol.SymbolKindInterface, sym.Kind)
	require.Len(t, sym.Children, 2)
	assert.Equal(t, protocol.SymbolKindConstructor, sym.Children[0].Kind)
	// an unparseable descriptor is shown as stored
	assert.Equal(t, "(XYZ", *sym.Children[1].Detail)
}

func TestSummary(t *testing.T) {
	cf, err := classfile.Decode(classtest.Sample())
	require.NoError(t, err)

	summary := Summary(cf)
	assert.Contains(t, summary, "**com.example.Widget**")
	assert.Contains(t, summary, "- flags: ACC_PUBLIC ACC_SUPER\n")
	assert.Contains(t, summary, "- extends: java.lang.Object\n")
	assert.Contains(t, summary, "- implements: java.lang.Runnable\n")
	assert.Contains(t, summary, "- 16 constant pool slots, 1 fields, 1 methods, 1 attributes\n")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	classPath := filepath.Join(dir, "Widget.class")
	require.NoError(t, os.WriteFile(classPath, classtest.Sample(), 0o644))

	jarPath := filepath.Join(dir, "lib.jar")
	jar, err := os.Create(jarPath)
	require.NoError(t, err)
	w := zip.NewWriter(jar)
	member, err := w.Create("com/example/Widget.class")
	require.NoError(t, err)
	_, err = member.Write(classtest.Sample())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, jar.Close())

	fileURI := (&url.URL{Scheme: "file", Path: filepath.ToSlash(classPath)}).String()
	cf, err := Load(fileURI)
	require.NoError(t, err)
	assert.Equal(t, "com/example/Widget", cf.ClassName())

	jarURI := "jar:" + (&url.URL{Scheme: "file", Path: filepath.ToSlash(jarPath)}).String() + "!/com/example/Widget.class"
	cf, err = Load(jarURI)
	require.NoError(t, err)
	assert.Equal(t, "com/example/Widget", cf.ClassName())

	require.NoError(t, os.WriteFile(classPath, []byte("not a class"), 0o644))
	_, err = Load(fileURI)
	assert.ErrorIs(t, err, classfile.ErrBadMagicNumber)
}
