package isa

import (
	"fmt"
	"iter"
	"maps"
)

var _isa_defines = map[string]string{
	"LOAD_CONST":     fmt.Sprintf("%d", uint32(OP_LOAD_CONST)),
	"READ_MEM":       fmt.Sprintf("%d", uint32(OP_READ_MEM)),
	"WRITE_MEM":      fmt.Sprintf("%d", uint32(OP_WRITE_MEM)),
	"ABS":            fmt.Sprintf("%d", uint32(OP_ABS)),
	"WORD_SIZE":      fmt.Sprintf("%d", WORD_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"REGISTER_MAX":   fmt.Sprintf("%d", REGISTER_MAX),
	"CONST_MAX":      fmt.Sprintf("%d", CONST_MAX),
}

// Defines returns the named ISA constants visible to assembler expressions.
func Defines() iter.Seq2[string, string] {
	return maps.All(_isa_defines)
}
