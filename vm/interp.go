package vm

import (
	"fmt"
	"log"

	"github.com/easyroyal/uvm/isa"
)

// HaltCause identifies why a run stopped.
type HaltCause int

const (
	HALT_NONE    = HaltCause(0) // Still running.
	HALT_END     = HaltCause(1) // Normal end of program.
	HALT_TAIL    = HaltCause(2) // Fewer than 4 bytes remained at pc.
	HALT_DECODE  = HaltCause(3) // Instruction failed to decode.
	HALT_FAULT   = HaltCause(4) // Instruction failed to execute.
	HALT_CEILING = HaltCause(5) // Caller step ceiling reached.
)

var haltNames = map[HaltCause]string{
	HALT_NONE:    "running",
	HALT_END:     "end of program",
	HALT_TAIL:    "malformed tail",
	HALT_DECODE:  "decode failure",
	HALT_FAULT:   "execution fault",
	HALT_CEILING: "step ceiling reached",
}

func (hc HaltCause) String() string {
	name, ok := haltNames[hc]
	if !ok {
		return fmt.Sprintf("halt(%d)", int(hc))
	}
	return name
}

// Step executes one fetch/decode/execute cycle. It returns the halt cause
// that stopped this step, or HALT_NONE when the machine may continue.
// The pc advances by one word only after a full successful fetch.
func (mach *Machine) Step() (cause HaltCause, err error) {
	if mach.Halted {
		cause = HALT_END
		return
	}

	remain := len(mach.CodeMemory) - int(mach.Pc)
	switch {
	case remain <= 0:
		mach.Halted = true
		cause = HALT_END
		return
	case remain < isa.WORD_SIZE:
		// Trailing partial word: halt, never a crash.
		mach.Halted = true
		cause = HALT_TAIL
		return
	}

	chunk := mach.CodeMemory[mach.Pc : mach.Pc+isa.WORD_SIZE]
	mach.Pc += isa.WORD_SIZE

	inst, err := Decode(chunk)
	if err != nil {
		mach.Halted = true
		cause = HALT_DECODE
		return
	}

	if mach.Verbose {
		log.Printf("vm: pc=%04d %v", mach.Pc-isa.WORD_SIZE, inst.Describe())
	}

	err = mach.execute(inst)
	if err != nil {
		mach.Halted = true
		cause = HALT_FAULT
		return
	}

	mach.Stats.InstructionsExecuted++

	return
}

// execute applies one decoded instruction to the machine state. Register
// indices are already range-checked by decode; memory addresses resolved
// through registers are bounds-checked here, before any mutation, so a
// failing instruction leaves the state intact.
func (mach *Machine) execute(inst Instruction) (err error) {
	args := inst.Operands

	switch inst.Opcode {
	case isa.OP_LOAD_CONST:
		mach.Register[args.C] = args.B
	case isa.OP_READ_MEM:
		addr := mach.Register[args.C]
		if int(addr) >= len(mach.DataMemory) {
			err = &ErrOutOfBounds{Addr: addr, Size: len(mach.DataMemory)}
			return
		}
		mach.Register[args.B] = mach.DataMemory[addr]
		mach.Stats.MemoryReads++
	case isa.OP_WRITE_MEM:
		addr := mach.Register[args.B]
		if int(addr) >= len(mach.DataMemory) {
			err = &ErrOutOfBounds{Addr: addr, Size: len(mach.DataMemory)}
			return
		}
		mach.DataMemory[addr] = mach.Register[args.C]
		mach.Stats.MemoryWrites++
	case isa.OP_ABS:
		// Reserved in the reference machine: consumes a step and must
		// not touch registers, memory, or the access counters.
		if mach.Verbose {
			log.Printf("vm: %v not implemented, treated as no-op", isa.OP_ABS)
		}
	default:
		err = &ErrDecode{Err: &isa.ErrInvalidOpcode{Opcode: inst.Opcode}}
	}

	return
}

// Result reports how a run ended.
type Result struct {
	Cause HaltCause
	Steps int    // Instructions executed by this run.
	Pc    uint32 // Program counter at the stop point.
	Err   error  // Terminal failure, located by step index and pc.
}

// Completed returns true for a natural halt at the end of the program.
func (res Result) Completed() bool {
	return res.Cause == HALT_END
}

// Run drives the step loop until the machine halts or maxSteps
// instructions have executed. maxSteps <= 0 selects STEP_LIMIT. Reaching
// the ceiling is a distinct, non-error outcome. Any failure is terminal:
// a bad word is never skipped.
func (mach *Machine) Run(maxSteps int) (res Result) {
	if maxSteps <= 0 {
		maxSteps = STEP_LIMIT
	}

	for steps := 0; ; steps++ {
		if steps >= maxSteps {
			res = Result{Cause: HALT_CEILING, Steps: steps, Pc: mach.Pc}
			return
		}

		pc := mach.Pc
		cause, err := mach.Step()
		if err != nil {
			res = Result{
				Cause: cause,
				Steps: steps,
				Pc:    pc,
				Err:   &ErrRuntime{Step: steps, Pc: pc, Err: err},
			}
			return
		}
		if cause != HALT_NONE {
			res = Result{Cause: cause, Steps: steps, Pc: mach.Pc}
			return
		}
	}
}
