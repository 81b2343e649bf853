// Package report formats analysis results for the console and as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sarchlab/rvhazard/fetch"
	"github.com/sarchlab/rvhazard/hazard"
	"github.com/sarchlab/rvhazard/insts"
)

// Run bundles everything reported about one analyzer run.
type Run struct {
	// Input is the instruction file that was analyzed.
	Input string
	// Result is the analysis outcome.
	Result *hazard.Result
	// Outputs holds the result file path per policy. Empty entries are
	// omitted from the report.
	Outputs [hazard.NumPolicies]string
	// Fetch holds fetch replay statistics per policy, or nil when replay
	// was disabled.
	Fetch *[hazard.NumPolicies]fetch.Statistics
}

// Reporter writes reports to an output stream.
type Reporter struct {
	out io.Writer
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// PrintHazards writes one diagnostic line per hazard.
func (r *Reporter) PrintHazards(hazards []hazard.Hazard) {
	for _, h := range hazards {
		_, _ = fmt.Fprintln(r.out, h.String())
	}
}

// PrintSummary writes the instruction and stall counters.
func (r *Reporter) PrintSummary(stats hazard.Statistics) {
	_, _ = fmt.Fprintf(r.out, "Total instructions: %d\n", stats.Total)
	for c := insts.Category(0); c < insts.NumCategories; c++ {
		_, _ = fmt.Fprintf(r.out, "%s instructions: %d\n", c, stats.Count(c))
	}
	_, _ = fmt.Fprintf(r.out, "Hazards detected: %d\n", stats.Hazards)
	for _, p := range hazard.Policies {
		_, _ = fmt.Fprintf(r.out, "NOPs inserted %s: %d\n", p, stats.StallsFor(p))
	}
}

// PrintFetch writes fetch replay statistics per policy.
func (r *Reporter) PrintFetch(stats *[hazard.NumPolicies]fetch.Statistics) {
	if stats == nil {
		return
	}

	_, _ = fmt.Fprintln(r.out, "Instruction fetch:")
	for _, p := range hazard.Policies {
		s := stats[p]
		_, _ = fmt.Fprintf(r.out, "  %s:\n", p)
		_, _ = fmt.Fprintf(r.out, "    Fetches: %d\n", s.Accesses)
		_, _ = fmt.Fprintf(r.out, "    Hits:    %d\n", s.Hits)
		_, _ = fmt.Fprintf(r.out, "    Misses:  %d\n", s.Misses)
		_, _ = fmt.Fprintf(r.out, "    Cycles:  %d\n", s.Cycles)
		_, _ = fmt.Fprintf(r.out, "    Hit rate: %.1f%%\n", 100.0*s.HitRate())
	}
}

// PrintListing writes a numbered listing of a stream. Entries are numbered
// from 1. Inserted stalls are recognized by position, so an original word
// equal to the NOP encoding is still listed with its category.
func (r *Reporter) PrintListing(title string, stream hazard.Stream) {
	_, _ = fmt.Fprintf(r.out, "%s:\n", title)
	for i, e := range stream {
		if e.IsStall() {
			_, _ = fmt.Fprintf(r.out, "%d. NOP inserted\n", i+1)
			continue
		}
		_, _ = fmt.Fprintf(r.out, "%d. Hex: %s - Type: %s\n",
			i+1, insts.FormatHex(e.Word), insts.ClassifyWord(e.Word))
	}
	_, _ = fmt.Fprintln(r.out, "")
}

// PrintRun writes hazards followed by the summary, then fetch statistics if
// present.
func (r *Reporter) PrintRun(run Run) {
	r.PrintHazards(run.Result.Hazards)
	r.PrintSummary(run.Result.Stats)
	r.PrintFetch(run.Fetch)
}

// HazardJSON is the JSON form of a hazard.
type HazardJSON struct {
	Producer int `json:"producer"`
	Consumer int `json:"consumer"`
}

// PolicyJSON is the JSON form of one rewritten stream.
type PolicyJSON struct {
	Name            string            `json:"name"`
	StallsPerHazard int               `json:"stalls_per_hazard"`
	Stalls          uint64            `json:"stalls"`
	StreamLength    int               `json:"stream_length"`
	Output          string            `json:"output,omitempty"`
	Fetch           *fetch.Statistics `json:"fetch,omitempty"`
}

// RunJSON is the JSON form of a run.
type RunJSON struct {
	Input             string            `json:"input,omitempty"`
	TotalInstructions uint64            `json:"total_instructions"`
	Categories        map[string]uint64 `json:"categories"`
	Hazards           []HazardJSON      `json:"hazards"`
	Policies          []PolicyJSON      `json:"policies"`
}

// NewRunJSON converts a run to its JSON form.
func NewRunJSON(run Run) RunJSON {
	res := run.Result
	out := RunJSON{
		Input:             run.Input,
		TotalInstructions: res.Stats.Total,
		Categories:        make(map[string]uint64, insts.NumCategories),
		Hazards:           make([]HazardJSON, 0, len(res.Hazards)),
	}

	for c := insts.Category(0); c < insts.NumCategories; c++ {
		out.Categories[c.String()] = res.Stats.Count(c)
	}

	for _, h := range res.Hazards {
		out.Hazards = append(out.Hazards, HazardJSON{Producer: h.Producer, Consumer: h.Consumer})
	}

	for _, p := range hazard.Policies {
		pj := PolicyJSON{
			Name:            p.String(),
			StallsPerHazard: p.StallsPerHazard(),
			Stalls:          res.Stats.StallsFor(p),
			StreamLength:    len(res.Stream(p)),
			Output:          run.Outputs[p],
		}
		if run.Fetch != nil {
			s := run.Fetch[p]
			pj.Fetch = &s
		}
		out.Policies = append(out.Policies, pj)
	}

	return out
}

// WriteJSON writes the run as indented JSON.
func (r *Reporter) WriteJSON(run Run) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewRunJSON(run))
}
