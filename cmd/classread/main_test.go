package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/classread/internal/classtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeClass(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	path := writeClass(t, dir, "Widget.class", classtest.Sample())

	t.Run("line", func(t *testing.T) {
		out, err := run(t, "dump", path)
		require.NoError(t, err)
		assert.Contains(t, out, "class\tcom.example.Widget\t61.0\t")
		assert.Contains(t, out, "super\tjava.lang.Object\n")
		assert.Contains(t, out, "interface\tjava.lang.Runnable\n")
		assert.Contains(t, out, "field\tcount\tJ\t")
		assert.Contains(t, out, "method\trun\t()V\t")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "dump", "-f", "json", path)
		require.NoError(t, err)
		assert.Contains(t, out, `"class": "com.example.Widget"`)
	})

	t.Run("cbor", func(t *testing.T) {
		out, err := run(t, "dump", "--format", "cbor", "--workers", "1", path)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "dump", "-f", "yaml", path)
		assert.Error(t, err)
	})

	t.Run("no arguments", func(t *testing.T) {
		_, err := run(t, "dump")
		assert.Error(t, err)
	})
}

func TestPool(t *testing.T) {
	dir := t.TempDir()
	path := writeClass(t, dir, "Widget.class", classtest.Sample())

	out, err := run(t, "pool", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Constant pool of com.example.Widget")
	assert.Contains(t, out, "(reserved)")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeClass(t, dir, "A.class", classtest.Named("a/A"))

	out, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok\t")
	assert.Contains(t, out, "\ta/A\n")

	bad := writeClass(t, dir, "B.class", []byte{0xCA, 0xFE, 0xBA, 0xBF})
	out, err = run(t, "check", "-w", "2", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "ok\t")
	assert.Contains(t, out, "fail\t")
	assert.Contains(t, err.Error(), "1 of 2")
}
