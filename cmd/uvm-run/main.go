package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/easyroyal/uvm/vm"
)

func main() {
	var maxSteps int
	var dataSize int
	var dump bool
	var dumpStart int
	var dumpEnd int
	var dumpOutput string
	var verbose bool

	flag.IntVar(&maxSteps, "max-steps", vm.STEP_LIMIT, "Maximum instructions to execute")
	flag.IntVar(&dataSize, "data-size", vm.DATA_SIZE, "Data memory capacity in words")
	flag.BoolVar(&dump, "dump", false, "Write an XML memory dump after the run")
	flag.IntVar(&dumpStart, "dump-start", 0, "First data address to dump")
	flag.IntVar(&dumpEnd, "dump-end", 32, "Data address to dump up to (exclusive)")
	flag.StringVar(&dumpOutput, "dump-output", "memory_dump.xml", "Dump file path")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected exactly one binary file", os.Args[0])
	}
	input := flag.Arg(0)

	binaryData, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	mach := vm.NewMachine(dataSize)
	mach.Verbose = verbose

	if aligned := mach.Load(binaryData); !aligned {
		fmt.Fprintf(os.Stderr, "warning: %v: size %d is not a multiple of 4\n", input, len(binaryData))
	}

	res := mach.Run(maxSteps)
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", input, res.Err)
	}

	fmt.Printf("halt: %v\n", res.Cause)
	fmt.Printf("instructions executed: %d\n", mach.Stats.InstructionsExecuted)
	fmt.Printf("memory reads: %d\n", mach.Stats.MemoryReads)
	fmt.Printf("memory writes: %d\n", mach.Stats.MemoryWrites)
	fmt.Printf("program counter: %d\n", mach.Pc)

	if dump {
		ouf, err := os.Create(dumpOutput)
		if err != nil {
			log.Fatalf("%v: %v", dumpOutput, err)
		}
		defer ouf.Close()

		err = mach.WriteSnapshot(ouf, dumpStart, dumpEnd)
		if err != nil {
			log.Fatalf("%v: %v", dumpOutput, err)
		}
	}

	if res.Err != nil {
		os.Exit(1)
	}
}
