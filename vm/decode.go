package vm

import (
	"encoding/binary"

	"github.com/easyroyal/uvm/isa"
)

// Instruction is one decoded instruction word.
type Instruction struct {
	Opcode   isa.Opcode
	Operands isa.Operands
}

// Describe returns the human-readable text for the instruction.
func (inst Instruction) Describe() string {
	return isa.Describe(inst.Opcode, inst.Operands)
}

// Decode unpacks one 4-byte little-endian instruction word. The B/C
// widths depend on the opcode's family, so the opcode field is extracted
// and checked before any operand extraction. Extracted operands are
// re-validated against the ISA; a rejection surfaces as ErrDecode.
func Decode(chunk []byte) (inst Instruction, err error) {
	if len(chunk) != isa.WORD_SIZE {
		err = &ErrMalformedInstruction{Length: len(chunk)}
		return
	}

	word := binary.LittleEndian.Uint32(chunk)

	opcode := isa.Opcode(isa.OpcodeField.Extract(word))
	if !opcode.Valid() {
		err = &ErrDecode{Err: &isa.ErrInvalidOpcode{Opcode: opcode}}
		return
	}

	layout := isa.LayoutOf(opcode)
	args := isa.Operands{
		B: layout.B.Extract(word),
		C: layout.C.Extract(word),
	}

	err = isa.Validate(opcode, args)
	if err != nil {
		err = &ErrDecode{Err: err}
		return
	}

	inst = Instruction{Opcode: opcode, Operands: args}

	return
}
