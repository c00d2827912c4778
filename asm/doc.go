// Package asm implements the UVM assembler: the YAML program front-end
// that produces the validated intermediate command list, and the encoder
// that packs commands into 4-byte little-endian instruction words.
package asm
