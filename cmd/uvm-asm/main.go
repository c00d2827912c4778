package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/easyroyal/uvm/asm"
	"github.com/easyroyal/uvm/isa"
)

func main() {
	var output string
	var test bool
	var verbose bool

	flag.StringVar(&output, "o", "program.bin", "Output binary file")
	flag.BoolVar(&test, "test", false, "Print the intermediate representation and encoded bytes")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected exactly one program file", os.Args[0])
	}
	input := flag.Arg(0)

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if test {
		fmt.Print(prog.Describe())
	}

	binaryData, err := asm.EncodeProgram(prog.Commands)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if test {
		for n, cmd := range prog.Commands {
			word := binaryData[n*isa.WORD_SIZE : (n+1)*isa.WORD_SIZE]
			fmt.Printf("%3d: % 02X  %v\n", cmd.Index, word, cmd.Describe())
		}
	}

	// Written only after the whole program encoded in memory.
	err = os.WriteFile(output, binaryData, 0o644)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	fmt.Printf("%d commands, %d bytes -> %v\n", len(prog.Commands), len(binaryData), output)
}
