package insts

// Category is the functional class of an instruction.
type Category uint8

// Instruction categories.
const (
	CategoryALU Category = iota
	CategoryJump
	CategoryBranch
	CategoryMemory
	CategoryOther

	// NumCategories is the number of categories. Keep it last.
	NumCategories
)

var categoryNames = [NumCategories]string{
	CategoryALU:    "ALU",
	CategoryJump:   "Jump",
	CategoryBranch: "Branch",
	CategoryMemory: "Memory",
	CategoryOther:  "Other",
}

// String returns the display name of the category.
func (c Category) String() string {
	if c >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// RISC-V base opcodes.
const (
	OpcodeLoad   uint8 = 0b0000011
	OpcodeOpImm  uint8 = 0b0010011
	OpcodeStore  uint8 = 0b0100011
	OpcodeOp     uint8 = 0b0110011
	OpcodeBranch uint8 = 0b1100011
	OpcodeJALR   uint8 = 0b1100111
	OpcodeJAL    uint8 = 0b1101111
)

// opcodeTable pairs a category with the opcodes that select it.
type opcodeTable struct {
	category Category
	opcodes  []uint8
}

// classifyOrder is the lookup order. The sets are disjoint, so the order
// only matters for determinism.
var classifyOrder = [...]opcodeTable{
	{CategoryALU, []uint8{OpcodeOp, OpcodeOpImm}},
	{CategoryJump, []uint8{OpcodeJAL, OpcodeJALR}},
	{CategoryBranch, []uint8{OpcodeBranch}},
	{CategoryMemory, []uint8{OpcodeLoad, OpcodeStore}},
}

// opcodeCategory is built once from classifyOrder and never written again.
var opcodeCategory = buildOpcodeCategory()

func buildOpcodeCategory() [128]Category {
	var table [128]Category
	for i := range table {
		table[i] = CategoryOther
	}

	// Walk in reverse so that earlier tables win on overlap.
	for i := len(classifyOrder) - 1; i >= 0; i-- {
		for _, op := range classifyOrder[i].opcodes {
			table[op&0x7F] = classifyOrder[i].category
		}
	}

	return table
}

// Classify returns the category of a 7-bit opcode. Bits above bit 6 are
// ignored.
func Classify(opcode uint8) Category {
	return opcodeCategory[opcode&0x7F]
}

// ClassifyWord returns the category of an instruction word.
func ClassifyWord(word uint32) Category {
	return Classify(uint8(FieldOpcode.Extract(word)))
}
