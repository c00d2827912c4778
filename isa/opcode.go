package isa

import (
	"fmt"
)

// Opcode identifies an instruction kind. The numeric value is part of the
// wire format.
type Opcode uint32

const (
	OP_LOAD_CONST = Opcode(29) // Load a constant into a register.
	OP_READ_MEM   = Opcode(18) // Read a data-memory word into a register.
	OP_WRITE_MEM  = Opcode(9)  // Write a register into data memory.
	OP_ABS        = Opcode(25) // Absolute value (reserved, executes as a no-op).
)

const (
	WORD_SIZE      = 4  // Size of every encoded instruction, in bytes.
	REGISTER_COUNT = 32 // Number of general-purpose registers.

	CONST_MAX    = 0xFFFFF // Largest LOAD_CONST constant (20 bits).
	REGISTER_MAX = 31      // Largest register index (5 bits).
)

// The opcode values are sparse wire constants, so the name table is
// explicit rather than generated.
var opcodeNames = map[Opcode]string{
	OP_LOAD_CONST: "LOAD_CONST",
	OP_READ_MEM:   "READ_MEM",
	OP_WRITE_MEM:  "WRITE_MEM",
	OP_ABS:        "ABS",
}

// Valid returns true if the opcode is a member of the closed set.
func (op Opcode) Valid() bool {
	_, ok := opcodeNames[op]
	return ok
}

// Immediate returns true if the opcode uses the immediate layout family.
func (op Opcode) Immediate() bool {
	return op == OP_LOAD_CONST
}

func (op Opcode) String() string {
	name, ok := opcodeNames[op]
	if !ok {
		return fmt.Sprintf("UNKNOWN(%d)", uint32(op))
	}
	return name
}

// Operands is the canonical B/C operand pair of the intermediate command
// form. The meaning of each field depends on the opcode.
type Operands struct {
	B uint32
	C uint32
}

// Describe returns the human-readable command text. Purely informational;
// never consulted for control decisions.
func Describe(op Opcode, args Operands) string {
	switch op {
	case OP_LOAD_CONST:
		return f("%v: load constant %d into register R%d", op, args.B, args.C)
	case OP_READ_MEM:
		return f("%v: read memory at address R%d into register R%d", op, args.C, args.B)
	case OP_WRITE_MEM:
		return f("%v: write register R%d to memory at address R%d", op, args.C, args.B)
	case OP_ABS:
		return f("%v: absolute value of register R%d to memory at address R%d", op, args.C, args.B)
	default:
		return f("%v: unknown command", op)
	}
}
