package vm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easyroyal/uvm/isa"
)

func word(value uint32) []byte {
	chunk := make([]byte, 4)
	binary.LittleEndian.PutUint32(chunk, value)
	return chunk
}

func TestDecode_Fixtures(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		chunk []byte
		op    isa.Opcode
		args  isa.Operands
	}){
		{"load_const", []byte{0xDD, 0x80, 0x00, 0x10}, isa.OP_LOAD_CONST, isa.Operands{B: 515, C: 4}},
		{"read_mem", []byte{0x12, 0x10, 0x00, 0x00}, isa.OP_READ_MEM, isa.Operands{B: 0, C: 2}},
		{"write_mem", []byte{0x49, 0xC3, 0x00, 0x00}, isa.OP_WRITE_MEM, isa.Operands{B: 13, C: 24}},
		{"abs", []byte{0x99, 0xB6, 0x00, 0x00}, isa.OP_ABS, isa.Operands{B: 26, C: 22}},
	}

	for _, entry := range table {
		inst, err := Decode(entry.chunk)
		assert.NoError(err, entry.name)
		assert.Equal(entry.op, inst.Opcode, entry.name)
		assert.Equal(entry.args, inst.Operands, entry.name)
	}
}

func TestDecode_WrongLength(t *testing.T) {
	assert := assert.New(t)

	for _, chunk := range [][]byte{nil, {}, {0x1D}, {0x1D, 0x00}, {0x1D, 0x00, 0x00}, {0x1D, 0, 0, 0, 0}} {
		_, err := Decode(chunk)
		assert.ErrorIs(err, &ErrMalformedInstruction{}, "len %d", len(chunk))
	}
}

func TestDecode_UnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	// Opcodes outside {29, 18, 9, 25} are rejected before any operand
	// extraction.
	for _, op := range []uint32{0, 1, 7, 63} {
		_, err := Decode(word(op))
		assert.ErrorIs(err, &ErrDecode{}, "opcode %d", op)
		assert.ErrorIs(err, &isa.ErrInvalidOpcode{}, "opcode %d", op)
	}
}

// The reserved bits of each family do not leak into the decoded operands.
func TestDecode_ReservedBits(t *testing.T) {
	assert := assert.New(t)

	// Register family: bits 16-31 reserved.
	inst, err := Decode(word(uint32(isa.OP_READ_MEM) | 3<<6 | 5<<11 | 0xFFFF<<16))
	assert.NoError(err)
	assert.Equal(isa.Operands{B: 3, C: 5}, inst.Operands)

	// Immediate family: bit 31 reserved.
	inst, err = Decode(word(uint32(isa.OP_LOAD_CONST) | 515<<6 | 4<<26 | 1<<31))
	assert.NoError(err)
	assert.Equal(isa.Operands{B: 515, C: 4}, inst.Operands)
}

// The same opcode field position decodes to different operand widths per
// family: the discriminant decision happens before field extraction.
func TestDecode_FamilyDiscriminant(t *testing.T) {
	assert := assert.New(t)

	// Identical operand bit patterns, different opcodes.
	pattern := uint32(0x1043) & ^uint32(0x3F) // bits 6.. only

	imm, err := Decode(word(pattern | uint32(isa.OP_LOAD_CONST)))
	assert.NoError(err)

	reg, err := Decode(word(pattern | uint32(isa.OP_READ_MEM)))
	assert.NoError(err)

	// The immediate family reads 20 bits of B; the register family 5.
	assert.Equal(uint32(0x41), imm.Operands.B)
	assert.Equal(uint32(0x1), reg.Operands.B)
	assert.Equal(uint32(0x2), reg.Operands.C)
}
