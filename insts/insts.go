// Package insts provides RISC-V instruction word decoding and classification.
//
// This package turns 32-bit RISC-V machine words into a flat field view and
// assigns each word one functional category. It supports:
//   - Hexadecimal text parsing and formatting of instruction words
//   - Fixed-offset field extraction: opcode, rd, rs1, rs2
//   - Opcode classification: ALU, Jump, Branch, Memory, Other
//
// Fields are read unconditionally. No distinction between the R/I/S/B/U/J
// encoding formats is made, so rd and rs2 are extracted even for formats
// where those bits hold immediates.
//
// Usage:
//
//	word, err := insts.ParseHex("00A00093") // addi x1, x0, 10
//	inst := insts.NewDecoder().Decode(word)
//	fmt.Printf("Rd: %d, Rs1: %d, Category: %v\n", inst.Rd, inst.Rs1, inst.Category)
package insts
