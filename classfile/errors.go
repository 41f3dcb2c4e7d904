package classfile

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagicNumber       = errors.New("bad magic number")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrMalformedConstantTag = errors.New("malformed constant pool tag")

	// ErrReservedSlot is returned when looking up the unusable slot that
	// follows a Long or Double constant.
	ErrReservedSlot = errors.New("reserved constant pool slot")
	ErrBadIndex     = errors.New("constant pool index out of range")
)

// MalformedConstantTagError reports a tag byte outside the known set.
type MalformedConstantTagError struct {
	Tag    uint8
	Index  int
	Offset int
}

func (e *MalformedConstantTagError) Error() string {
	return fmt.Sprintf("malformed constant pool tag %d at entry %d (offset %d)", e.Tag, e.Index, e.Offset)
}

func (e *MalformedConstantTagError) Is(target error) bool {
	return target == ErrMalformedConstantTag
}
