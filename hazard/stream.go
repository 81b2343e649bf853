package hazard

import "github.com/sarchlab/rvhazard/insts"

// StallIndex marks an Entry that was inserted rather than read from input.
const StallIndex = -1

// Entry is one line of a rewritten stream.
type Entry struct {
	// Word is the instruction encoding.
	Word uint32
	// Index is the zero-based position in the original program, or
	// StallIndex for an inserted stall.
	Index int
}

// IsStall reports whether the entry was inserted to resolve a hazard.
func (e Entry) IsStall() bool {
	return e.Index == StallIndex
}

// Stream is an append-only program listing with inserted stalls.
type Stream []Entry

// Words returns the instruction words of the stream in order.
func (s Stream) Words() []uint32 {
	words := make([]uint32, len(s))
	for i, e := range s {
		words[i] = e.Word
	}
	return words
}

// Originals returns the original instruction indices in stream order.
func (s Stream) Originals() []int {
	var idx []int
	for _, e := range s {
		if !e.IsStall() {
			idx = append(idx, e.Index)
		}
	}
	return idx
}

// Stalls counts inserted entries.
func (s Stream) Stalls() int {
	n := 0
	for _, e := range s {
		if e.IsStall() {
			n++
		}
	}
	return n
}

func stallEntry() Entry {
	return Entry{Word: insts.NOP, Index: StallIndex}
}
