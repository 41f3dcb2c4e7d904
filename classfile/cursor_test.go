package classfile

import (
	"errors"
	"testing"
)

func TestCursorReads(t *testing.T) {
	c := newCursor([]byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
		0xAA, 0xBB,
	})

	if got := c.u1(); got != 0x01 {
		t.Errorf("u1() = %#x", got)
	}
	if got := c.u2(); got != 0x0203 {
		t.Errorf("u2() = %#x", got)
	}
	if got := c.u4(); got != 0x04050607 {
		t.Errorf("u4() = %#x", got)
	}
	if got := c.u8(); got != 0x08090A0B0C0D0E0F {
		t.Errorf("u8() = %#x", got)
	}
	if got := c.bytes(2); len(got) != 2 || got[0] != 0xAA || got[1] != 0xBB {
		t.Errorf("bytes(2) = %x", got)
	}
	if c.remaining() != 0 || c.err != nil {
		t.Errorf("remaining = %d, err = %v", c.remaining(), c.err)
	}
}

func TestCursorUnderflowIsSticky(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02, 0x03})

	if got := c.u4(); got != 0 {
		t.Errorf("u4() on 3 bytes = %#x, want 0", got)
	}
	if !errors.Is(c.err, ErrUnexpectedEndOfInput) {
		t.Fatalf("err = %v, want ErrUnexpectedEndOfInput", c.err)
	}
	first := c.err

	// Bytes that would fit are not handed out after a failure.
	if got := c.u1(); got != 0 {
		t.Errorf("u1() after failure = %#x, want 0", got)
	}
	if c.err != first {
		t.Error("later reads replaced the first error")
	}
}

func TestCursorRejectsNegativeLength(t *testing.T) {
	c := newCursor([]byte{0x01})
	if got := c.bytes(-1); got != nil {
		t.Errorf("bytes(-1) = %x, want nil", got)
	}
	if !errors.Is(c.err, ErrUnexpectedEndOfInput) {
		t.Errorf("err = %v, want ErrUnexpectedEndOfInput", c.err)
	}
}
