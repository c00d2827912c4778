// Package isa defines the UVM instruction set: the closed opcode set, the
// per-family bit-field layouts, and operand validation.
//
// Every instruction packs into a single 32-bit little-endian word. The
// opcode occupies bits 0-5 in both layout families, but the widths of the
// B and C operand fields differ by family, so a decoder must discriminate
// on the opcode before extracting operands.
package isa
