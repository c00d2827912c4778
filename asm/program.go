package asm

import (
	"errors"
	"io"
	"iter"
	"log"
	"maps"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/easyroyal/uvm/internal"
	"github.com/easyroyal/uvm/isa"
)

// Assembler translates the textual program form into the validated
// intermediate command list. The front-end performs the mapping from
// human-level field names to the canonical B/C operands; the encoder
// never sees the human names.
type Assembler struct {
	Verbose bool // If set, logs each parsed command.

	predefine map[string]string
}

// Predefine adds (or replaces) a named constant visible to $() expressions.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// equates is the expression environment: ISA defines plus user predefines.
func (asm *Assembler) equates() iter.Seq2[string, string] {
	return internal.ConcatSeq2(isa.Defines(), maps.All(asm.predefine))
}

// commandMap maps the human-level command names to opcodes.
var commandMap = map[string]isa.Opcode{
	"LOAD":       isa.OP_LOAD_CONST,
	"LOAD_CONST": isa.OP_LOAD_CONST,
	"READ":       isa.OP_READ_MEM,
	"READ_MEM":   isa.OP_READ_MEM,
	"WRITE":      isa.OP_WRITE_MEM,
	"WRITE_MEM":  isa.OP_WRITE_MEM,
	"ABS":        isa.OP_ABS,
}

// yamlValue is an operand value: an integer, an equate name, or a $()
// expression. The scalar text is kept verbatim for the evaluator.
type yamlValue string

func (v *yamlValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return ErrParseValue(node.Tag)
	}
	*v = yamlValue(node.Value)
	return nil
}

// yamlCommand is one source command, in either the canonical
// (opcode + operands) or the human-named form.
type yamlCommand struct {
	Command  string               `yaml:"command"`
	Opcode   *uint32              `yaml:"opcode"`
	Operands map[string]yamlValue `yaml:"operands"`

	Value        *yamlValue `yaml:"value"`
	Register     *yamlValue `yaml:"register"`
	DestRegister *yamlValue `yaml:"dest_register"`
	AddrRegister *yamlValue `yaml:"addr_register"`
	SrcRegister  *yamlValue `yaml:"src_register"`
}

type yamlProgram struct {
	Commands []yamlCommand `yaml:"commands"`
}

// Parse reads a YAML program and produces the intermediate command list.
// Any command failure aborts the parse, reported with the command index.
func (asm *Assembler) Parse(r io.Reader) (prog *Program, err error) {
	var src yamlProgram

	dec := yaml.NewDecoder(r)
	err = dec.Decode(&src)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrProgramEmpty
		}
		return
	}
	if len(src.Commands) == 0 {
		err = ErrProgramEmpty
		return
	}

	prog = &Program{}
	for n, yc := range src.Commands {
		var cmd Command
		cmd, err = asm.parseCommand(n+1, yc)
		if err != nil {
			err = &ErrCommand{Index: n + 1, Err: err}
			prog = nil
			return
		}

		if asm.Verbose {
			log.Printf("asm: %3d: %v", cmd.Index, cmd.Describe())
		}

		prog.Commands = append(prog.Commands, cmd)
	}

	return
}

// parseCommand maps one source command to its canonical form and
// validates it.
func (asm *Assembler) parseCommand(index int, src yamlCommand) (cmd Command, err error) {
	cmd.Index = index

	switch {
	case src.Opcode != nil:
		cmd.Opcode = isa.Opcode(*src.Opcode)
		cmd.Operands, err = asm.canonicalOperands(src.Operands)
	case src.Command != "":
		var ok bool
		cmd.Opcode, ok = commandMap[strings.ToUpper(src.Command)]
		if !ok {
			err = ErrCommandUnknown(src.Command)
			return
		}
		cmd.Operands, err = asm.namedOperands(cmd.Opcode, src)
	default:
		err = ErrCommandMissing
	}
	if err != nil {
		return
	}

	err = isa.Validate(cmd.Opcode, cmd.Operands)

	return
}

// canonicalOperands reads the already-mapped B/C pair.
func (asm *Assembler) canonicalOperands(src map[string]yamlValue) (args isa.Operands, err error) {
	for _, field := range []string{"B", "C"} {
		value, ok := src[field]
		if !ok {
			err = ErrFieldMissing(field)
			return
		}
		var v32 uint32
		v32, err = asm.valueOf(string(value))
		if err != nil {
			return
		}
		if field == "B" {
			args.B = v32
		} else {
			args.C = v32
		}
	}

	return
}

// namedOperands maps the human-level field names of the command to the
// canonical B/C pair:
//
//	LOAD_CONST   value -> B, register -> C
//	READ_MEM     dest_register -> B, addr_register -> C
//	WRITE_MEM    addr_register -> B, src_register -> C
//	ABS          addr_register -> B, src_register -> C
func (asm *Assembler) namedOperands(op isa.Opcode, src yamlCommand) (args isa.Operands, err error) {
	var bVal, cVal *yamlValue
	var bName, cName string

	switch op {
	case isa.OP_LOAD_CONST:
		bVal, bName = src.Value, "value"
		cVal, cName = src.Register, "register"
	case isa.OP_READ_MEM:
		bVal, bName = src.DestRegister, "dest_register"
		cVal, cName = src.AddrRegister, "addr_register"
	default:
		bVal, bName = src.AddrRegister, "addr_register"
		cVal, cName = src.SrcRegister, "src_register"
	}

	if bVal == nil {
		err = ErrFieldMissing(bName)
		return
	}
	if cVal == nil {
		err = ErrFieldMissing(cName)
		return
	}

	args.B, err = asm.valueOf(string(*bVal))
	if err != nil {
		return
	}
	args.C, err = asm.valueOf(string(*cVal))

	return
}

// valueOf resolves an operand value: a $() expression, an equate name,
// or a plain number in any Go-recognized base.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return asm.parenEval(word[2 : len(word)-1])
	}

	for key, str := range asm.equates() {
		if key == word {
			word = str
			break
		}
	}

	v64, perr := strconv.ParseUint(word, 0, 32)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}
	value = uint32(v64)

	return
}
