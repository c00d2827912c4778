package asm

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/easyroyal/uvm/isa"
)

// Command is one validated intermediate command: the canonical
// {opcode, B, C} form handed to the encoder by the front-end.
type Command struct {
	Opcode   isa.Opcode
	Operands isa.Operands

	Index int // 1-based position in the source program, for diagnostics.
}

// Describe returns the human-readable text for the command.
func (cmd Command) Describe() string {
	return isa.Describe(cmd.Opcode, cmd.Operands)
}

// Encode packs a single command into its 4-byte little-endian word.
// The command is validated before packing.
func Encode(cmd Command) (word []byte, err error) {
	err = isa.Validate(cmd.Opcode, cmd.Operands)
	if err != nil {
		return
	}

	layout := isa.LayoutOf(cmd.Opcode)

	var value uint32
	value |= layout.A.Pack(uint32(cmd.Opcode))
	value |= layout.B.Pack(cmd.Operands.B)
	value |= layout.C.Pack(cmd.Operands.C)

	word = make([]byte, isa.WORD_SIZE)
	binary.LittleEndian.PutUint32(word, value)

	return
}

// EncodeProgram encodes a command list into a flat binary, in input order.
// Every command is validated before any byte is produced, so a failing
// command aborts the whole encode with no output. The result is always
// WORD_SIZE times the command count.
func EncodeProgram(cmds []Command) (binaryData []byte, err error) {
	for _, cmd := range cmds {
		err = isa.Validate(cmd.Opcode, cmd.Operands)
		if err != nil {
			err = &ErrCommand{Index: cmd.Index, Err: err}
			return
		}
	}

	binaryData = make([]byte, 0, len(cmds)*isa.WORD_SIZE)
	for _, cmd := range cmds {
		var word []byte
		word, err = Encode(cmd)
		if err != nil {
			binaryData = nil
			err = &ErrCommand{Index: cmd.Index, Err: err}
			return
		}
		binaryData = append(binaryData, word...)
	}

	return
}

// Program is the parsed intermediate representation of a source program.
type Program struct {
	Commands []Command
}

// Describe returns the intermediate-representation listing of the program.
func (prog *Program) Describe() string {
	var sb strings.Builder
	for _, cmd := range prog.Commands {
		fmt.Fprintf(&sb, "%3d: opcode=%d B=%d C=%d  %v\n",
			cmd.Index, uint32(cmd.Opcode), cmd.Operands.B, cmd.Operands.C, cmd.Describe())
	}
	return sb.String()
}
