package isa

import (
	"github.com/easyroyal/uvm/translate"
)

var f = translate.From

// ErrInvalidOpcode reports an opcode outside the closed set.
type ErrInvalidOpcode struct {
	Opcode Opcode
}

func (err *ErrInvalidOpcode) Error() string {
	return f("unknown opcode: %d", uint32(err.Opcode))
}

func (err *ErrInvalidOpcode) Is(target error) (ok bool) {
	_, ok = target.(*ErrInvalidOpcode)
	return
}

// ErrOperandRange reports an operand outside its family's bit width.
type ErrOperandRange struct {
	Field string
	Value uint32
	Max   uint32
}

func (err *ErrOperandRange) Error() string {
	return f("operand %v=%d out of range 0..0x%X", err.Field, err.Value, err.Max)
}

func (err *ErrOperandRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrOperandRange)
	return
}
