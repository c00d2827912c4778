package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easyroyal/uvm/isa"
)

func TestSnapshot_Sparse(t *testing.T) {
	assert := assert.New(t)

	binaryData := program(t,
		command(isa.OP_LOAD_CONST, 100, 0),
		command(isa.OP_LOAD_CONST, 5, 1),
		command(isa.OP_WRITE_MEM, 0, 1),
	)

	mach := NewMachine(0)
	mach.Load(binaryData)
	res := mach.Run(0)
	assert.True(res.Completed())

	snap := mach.Snapshot(0, len(mach.DataMemory))

	// Only the two touched registers and the one touched cell appear.
	assert.Equal(2, len(snap.Registers))
	assert.Equal(SnapshotRegister{Id: 0, Value: 100, Hex: "0x64"}, snap.Registers[0])
	assert.Equal(SnapshotRegister{Id: 1, Value: 5, Hex: "0x5"}, snap.Registers[1])

	assert.Equal(1, len(snap.Memory.Cells))
	assert.Equal(SnapshotCell{Address: 100, Value: 5, Hex: "0x5"}, snap.Memory.Cells[0])

	assert.Equal(3, snap.Info.InstructionsExecuted)
	assert.Equal(0, snap.Info.MemoryReads)
	assert.Equal(1, snap.Info.MemoryWrites)
	assert.Equal(uint32(12), snap.Info.ProgramCounter)

	assert.Equal(0, snap.Memory.StartAddress)
	assert.Equal(DATA_SIZE, snap.Memory.EndAddress)
	assert.Equal(DATA_SIZE, snap.Memory.TotalSize)
}

// Two snapshots of an unmodified machine are byte-for-byte identical, and
// zero-valued entries never appear in either.
func TestSnapshot_Idempotent(t *testing.T) {
	assert := assert.New(t)

	binaryData := program(t,
		command(isa.OP_LOAD_CONST, 17, 3),
	)

	mach := NewMachine(0)
	mach.Load(binaryData)
	mach.Run(0)

	first, err := mach.Snapshot(0, 32).Marshal()
	assert.NoError(err)

	second, err := mach.Snapshot(0, 32).Marshal()
	assert.NoError(err)

	assert.True(bytes.Equal(first, second))

	text := string(first)
	assert.Contains(text, `<register id="3" value="17" hex="0x11">`)
	assert.NotContains(text, `id="0"`)
	assert.NotContains(text, `value="0"`)
	assert.NotContains(text, "memory_cell")
}

func TestSnapshot_Range(t *testing.T) {
	assert := assert.New(t)

	mach := NewMachine(64)
	mach.DataMemory[10] = 1
	mach.DataMemory[20] = 2
	mach.DataMemory[30] = 3

	snap := mach.Snapshot(15, 25)
	assert.Equal(1, len(snap.Memory.Cells))
	assert.Equal(20, snap.Memory.Cells[0].Address)
	assert.Equal(15, snap.Memory.StartAddress)
	assert.Equal(25, snap.Memory.EndAddress)
	assert.Equal(64, snap.Memory.TotalSize)
}

func TestSnapshot_RangeClamped(t *testing.T) {
	assert := assert.New(t)

	mach := NewMachine(16)
	mach.DataMemory[15] = 9

	snap := mach.Snapshot(-5, 100)
	assert.Equal(0, snap.Memory.StartAddress)
	assert.Equal(16, snap.Memory.EndAddress)
	assert.Equal(1, len(snap.Memory.Cells))

	snap = mach.Snapshot(20, 10)
	assert.Equal(snap.Memory.StartAddress, snap.Memory.EndAddress)
	assert.Empty(snap.Memory.Cells)
}

func TestWriteSnapshot(t *testing.T) {
	assert := assert.New(t)

	mach := NewMachine(16)
	mach.DataMemory[2] = 0xABCD

	var buf bytes.Buffer
	err := mach.WriteSnapshot(&buf, 0, 16)
	assert.NoError(err)

	text := buf.String()
	assert.True(strings.HasPrefix(text, "<?xml"))
	assert.Contains(text, "<uvm_memory_dump>")
	assert.Contains(text, "<program_info>")
	assert.Contains(text, `<data_memory start_address="0" end_address="16" total_size="16">`)
	assert.Contains(text, `<memory_cell address="2" value="43981" hex="0xABCD">`)
	assert.True(strings.HasSuffix(text, "\n"))
}
