package hazard

import "github.com/sarchlab/rvhazard/insts"

// Statistics holds the counters of one analysis pass.
type Statistics struct {
	// Total is the number of original instructions.
	Total uint64
	// Categories counts instructions per category.
	Categories [insts.NumCategories]uint64
	// Hazards is the number of adjacent pairs flagged.
	Hazards uint64
	// Stalls counts inserted stalls per policy.
	Stalls [NumPolicies]uint64
}

// Count returns the number of instructions in category c.
func (s Statistics) Count(c insts.Category) uint64 {
	if c >= insts.NumCategories {
		return 0
	}
	return s.Categories[c]
}

// CategorySum sums the per-category counters. It equals Total after a pass.
func (s Statistics) CategorySum() uint64 {
	var sum uint64
	for _, n := range s.Categories {
		sum += n
	}
	return sum
}

// StallsFor returns the stalls inserted under policy p.
func (s Statistics) StallsFor(p Policy) uint64 {
	if p >= NumPolicies {
		return 0
	}
	return s.Stalls[p]
}
