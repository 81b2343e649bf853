package insts

// Field describes a contiguous bit range within an instruction word.
// Offset is the position of the least-significant bit of the field.
type Field struct {
	Offset uint8
	Width  uint8
}

// Instruction fields. Bit 0 is the least-significant bit of the word.
var (
	FieldOpcode = Field{Offset: 0, Width: 7}  // bits [6:0]
	FieldRd     = Field{Offset: 7, Width: 5}  // bits [11:7]
	FieldRs1    = Field{Offset: 15, Width: 5} // bits [19:15]
	FieldRs2    = Field{Offset: 20, Width: 5} // bits [24:20]
)

// Mask returns the unshifted mask for the field width.
func (f Field) Mask() uint32 {
	return (uint32(1) << f.Width) - 1
}

// Extract returns the value of the field in word.
func (f Field) Extract(word uint32) uint32 {
	return (word >> f.Offset) & f.Mask()
}

// NOP is the canonical RISC-V no-op, addi x0, x0, 0.
const NOP uint32 = 0x00000013

// Instruction represents a decoded RISC-V instruction word.
type Instruction struct {
	Word     uint32   // Raw 32-bit encoding
	Opcode   uint8    // bits [6:0]
	Rd       uint8    // Destination register, bits [11:7]
	Rs1      uint8    // First source register, bits [19:15]
	Rs2      uint8    // Second source register, bits [24:20]
	Category Category // Functional category derived from Opcode
}

// Decoder decodes RISC-V machine words into instructions.
type Decoder struct{}

// NewDecoder creates a new RISC-V instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit instruction word. Decoding never fails: every
// word has an opcode, and unknown opcodes classify as CategoryOther.
func (d *Decoder) Decode(word uint32) Instruction {
	opcode := uint8(FieldOpcode.Extract(word))

	return Instruction{
		Word:     word,
		Opcode:   opcode,
		Rd:       uint8(FieldRd.Extract(word)),
		Rs1:      uint8(FieldRs1.Extract(word)),
		Rs2:      uint8(FieldRs2.Extract(word)),
		Category: Classify(opcode),
	}
}

// DecodeAll decodes a sequence of words in order.
func (d *Decoder) DecodeAll(words []uint32) []Instruction {
	out := make([]Instruction, len(words))
	for i, w := range words {
		out[i] = d.Decode(w)
	}
	return out
}
