package isa

// Field is one bit field within an encoded instruction word.
type Field struct {
	Mask  uint32 // Width of the field, as a value mask.
	Shift uint32 // Bit position of the field's least significant bit.
}

// Extract pulls the field's value out of a packed word.
func (fd Field) Extract(word uint32) uint32 {
	return (word >> fd.Shift) & fd.Mask
}

// Pack places a value at the field's bit positions.
func (fd Field) Pack(value uint32) uint32 {
	return (value & fd.Mask) << fd.Shift
}

// OpcodeField is the opcode position, shared by both layout families.
var OpcodeField = Field{Mask: 0x3F, Shift: 0}

// Layout is the bit-field layout of one instruction family.
type Layout struct {
	A Field // Opcode.
	B Field
	C Field
}

// The two layout families. The opcode position is shared; the operand
// widths are not.
var (
	immediateLayout = Layout{
		A: OpcodeField,
		B: Field{Mask: 0xFFFFF, Shift: 6}, // 20-bit constant.
		C: Field{Mask: 0x1F, Shift: 26},   // 5-bit register index. Bit 31 reserved.
	}
	registerLayout = Layout{
		A: OpcodeField,
		B: Field{Mask: 0x1F, Shift: 6},  // 5-bit register index.
		C: Field{Mask: 0x1F, Shift: 11}, // 5-bit register index. Bits 16-31 reserved.
	}
)

// LayoutOf returns the bit-field layout for the opcode's family:
// the immediate layout for LOAD_CONST, the register layout otherwise.
func LayoutOf(op Opcode) Layout {
	if op.Immediate() {
		return immediateLayout
	}
	return registerLayout
}

// Validate checks the opcode for set membership and the operands against
// the declared bit widths of the opcode's family.
func Validate(op Opcode, args Operands) (err error) {
	if !op.Valid() {
		err = &ErrInvalidOpcode{Opcode: op}
		return
	}

	layout := LayoutOf(op)
	if args.B > layout.B.Mask {
		err = &ErrOperandRange{Field: "B", Value: args.B, Max: layout.B.Mask}
		return
	}
	if args.C > layout.C.Mask {
		err = &ErrOperandRange{Field: "C", Value: args.C, Max: layout.C.Mask}
		return
	}

	return
}
