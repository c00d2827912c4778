package vm

import (
	"github.com/easyroyal/uvm/translate"
)

var f = translate.From

// ErrMalformedInstruction reports a fetch chunk that is not exactly one
// instruction word.
type ErrMalformedInstruction struct {
	Length int
}

func (err *ErrMalformedInstruction) Error() string {
	return f("instruction must be 4 bytes, got %d", err.Length)
}

func (err *ErrMalformedInstruction) Is(target error) (ok bool) {
	_, ok = target.(*ErrMalformedInstruction)
	return
}

// ErrDecode reports a word rejected during decode or re-validation.
type ErrDecode struct {
	Err error
}

func (err *ErrDecode) Error() string {
	return f("decode: %v", err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}

func (err *ErrDecode) Is(target error) (ok bool) {
	_, ok = target.(*ErrDecode)
	return
}

// ErrOutOfBounds reports a resolved data-memory address outside capacity.
type ErrOutOfBounds struct {
	Addr uint32
	Size int
}

func (err *ErrOutOfBounds) Error() string {
	return f("memory address out of range: %d (capacity %d)", err.Addr, err.Size)
}

func (err *ErrOutOfBounds) Is(target error) (ok bool) {
	_, ok = target.(*ErrOutOfBounds)
	return
}

// ErrRuntime locates a terminal execution failure by step index and pc.
type ErrRuntime struct {
	Step int
	Pc   uint32
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d pc %d: %v", err.Step, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
