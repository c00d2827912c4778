package asm

import (
	"errors"

	"github.com/easyroyal/uvm/translate"
)

var f = translate.From

var (
	// Front-end errors
	ErrProgramEmpty   = errors.New(f("program has no commands"))
	ErrCommandMissing = errors.New(f("command or opcode required"))
)

type ErrCommandUnknown string

func (err ErrCommandUnknown) Error() string {
	return f("'%v' is not a command", string(err))
}

type ErrFieldMissing string

func (err ErrFieldMissing) Error() string {
	return f("field '%v' missing", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrCommand locates a front-end or validation failure by command index.
type ErrCommand struct {
	Index int
	Err   error
}

func (err *ErrCommand) Error() string {
	return f("command %d: %v", err.Index, err.Err)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}
