package hazard

import (
	"fmt"

	"github.com/sarchlab/rvhazard/insts"
)

// Hazard is a read-after-write conflict between two adjacent original
// instructions.
type Hazard struct {
	// Producer is the zero-based index of the writing instruction.
	Producer int
	// Consumer is the zero-based index of the reading instruction.
	Consumer int
}

// String returns the diagnostic line for the hazard.
func (h Hazard) String() string {
	return fmt.Sprintf("hazard between instruction %d and instruction %d",
		h.Producer, h.Consumer)
}

// Result is the outcome of one analysis pass.
type Result struct {
	Stats   Statistics
	Hazards []Hazard
	Streams [NumPolicies]Stream
}

// Stream returns the rewritten stream for policy p.
func (r *Result) Stream(p Policy) Stream {
	return r.Streams[p]
}

// Detect reports whether cur reads the register that prev writes.
//
// The comparison is plain field equality on the 5-bit register slices.
// Register x0 is not special-cased and the instruction format is ignored, so
// immediates sitting in the rd or rs2 slots take part in the comparison.
func Detect(prev, cur insts.Instruction) bool {
	return prev.Rd == cur.Rs1 || prev.Rd == cur.Rs2
}

// accumulator is the fold state of Analyze. prev always holds the last
// original instruction; inserted stalls never become prev.
type accumulator struct {
	prev    insts.Instruction
	hasPrev bool
	result  *Result
}

func newAccumulator(n int) accumulator {
	r := &Result{}
	for _, p := range Policies {
		r.Streams[p] = make(Stream, 0, n)
	}
	return accumulator{result: r}
}

// step folds the instruction at original position index into the state.
func (a accumulator) step(index int, inst insts.Instruction) accumulator {
	r := a.result

	r.Stats.Total++
	r.Stats.Categories[inst.Category]++

	if a.hasPrev && Detect(a.prev, inst) {
		r.Hazards = append(r.Hazards, Hazard{Producer: index - 1, Consumer: index})
		r.Stats.Hazards++

		for _, p := range Policies {
			for k := 0; k < p.StallsPerHazard(); k++ {
				r.Streams[p] = append(r.Streams[p], stallEntry())
				r.Stats.Stalls[p]++
			}
		}
	}

	for _, p := range Policies {
		r.Streams[p] = append(r.Streams[p], Entry{Word: inst.Word, Index: index})
	}

	a.prev = inst
	a.hasPrev = true
	return a
}

// Analyze classifies every instruction, flags hazards against the
// immediately preceding original instruction, and builds one stall-padded
// stream per policy. The input is not modified.
func Analyze(program []insts.Instruction) *Result {
	acc := newAccumulator(len(program))
	for i, inst := range program {
		acc = acc.step(i, inst)
	}
	return acc.result
}

// AnalyzeWords decodes words and analyzes them.
func AnalyzeWords(words []uint32) *Result {
	return Analyze(insts.NewDecoder().DecodeAll(words))
}
