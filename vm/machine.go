package vm

import (
	"log"

	"github.com/easyroyal/uvm/isa"
)

const (
	DATA_SIZE  = 1024 // Default data-memory capacity, in 32-bit words.
	STEP_LIMIT = 1000 // Default run step ceiling.
)

// Stats are the execution counters.
type Stats struct {
	InstructionsExecuted int
	MemoryReads          int
	MemoryWrites         int
}

// Machine is the UVM state: registers, data memory, code memory, program
// counter and counters. Data memory is an address space distinct from
// code memory.
type Machine struct {
	Verbose bool // Set to enable per-step logging.

	CodeMemory []byte                     // Flat binary program.
	DataMemory []uint32                   // Data words.
	Register   [isa.REGISTER_COUNT]uint32 // General-purpose registers.

	Pc     uint32 // Byte offset of the next instruction fetch.
	Halted bool

	Stats Stats
}

// NewMachine creates a machine with the given data-memory capacity.
// dataSize <= 0 selects the DATA_SIZE default.
func NewMachine(dataSize int) (mach *Machine) {
	if dataSize <= 0 {
		dataSize = DATA_SIZE
	}
	mach = &Machine{
		DataMemory: make([]uint32, dataSize),
	}

	return
}

// Reset clears all mutable state, keeping the loaded program.
func (mach *Machine) Reset() {
	clear(mach.Register[:])
	clear(mach.DataMemory)
	mach.Pc = 0
	mach.Halted = false
	mach.Stats = Stats{}
}

// Load installs the flat binary as code memory and resets execution
// state. A length that is not a multiple of the word size is legal to
// load; the trailing partial word halts the run when fetched. aligned
// reports whether the binary is whole words.
func (mach *Machine) Load(binaryData []byte) (aligned bool) {
	mach.CodeMemory = binaryData
	mach.Reset()

	aligned = len(binaryData)%isa.WORD_SIZE == 0
	if !aligned && mach.Verbose {
		log.Printf("vm: program size %d is not a multiple of %d", len(binaryData), isa.WORD_SIZE)
	}

	return
}
