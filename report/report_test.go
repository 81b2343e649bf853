package report_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvhazard/fetch"
	"github.com/sarchlab/rvhazard/hazard"
	"github.com/sarchlab/rvhazard/insts"
	"github.com/sarchlab/rvhazard/report"
)

var _ = Describe("Reporter", func() {
	var (
		buf      *bytes.Buffer
		reporter *report.Reporter
		result   *hazard.Result
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		reporter = report.New(buf)
		// addi x1, x0, 10 ; add x2, x1, x1
		result = hazard.AnalyzeWords([]uint32{0x00A00093, 0x00108133})
	})

	Describe("PrintHazards", func() {
		It("should print one line per hazard", func() {
			reporter.PrintHazards(result.Hazards)
			Expect(buf.String()).To(Equal("hazard between instruction 0 and instruction 1\n"))
		})
	})

	Describe("PrintSummary", func() {
		It("should print every counter", func() {
			reporter.PrintSummary(result.Stats)

			Expect(buf.String()).To(Equal(
				"Total instructions: 2\n" +
					"ALU instructions: 2\n" +
					"Jump instructions: 0\n" +
					"Branch instructions: 0\n" +
					"Memory instructions: 0\n" +
					"Other instructions: 0\n" +
					"Hazards detected: 1\n" +
					"NOPs inserted without forwarding: 2\n" +
					"NOPs inserted with forwarding: 1\n"))
		})
	})

	Describe("PrintListing", func() {
		It("should number entries and mark stalls", func() {
			reporter.PrintListing("With forwarding", result.Stream(hazard.PolicyForwarding))

			Expect(buf.String()).To(Equal(
				"With forwarding:\n" +
					"1. Hex: 00A00093 - Type: ALU\n" +
					"2. NOP inserted\n" +
					"3. Hex: 00108133 - Type: ALU\n" +
					"\n"))
		})

		It("should list an original NOP as an instruction", func() {
			stream := hazard.AnalyzeWords([]uint32{insts.NOP}).Stream(hazard.PolicyForwarding)
			reporter.PrintListing("x", stream)

			Expect(buf.String()).To(ContainSubstring("1. Hex: 00000013 - Type: ALU"))
		})
	})

	Describe("PrintFetch", func() {
		It("should print nothing when replay is disabled", func() {
			reporter.PrintFetch(nil)
			Expect(buf.Len()).To(BeZero())
		})

		It("should print each policy", func() {
			stats := [hazard.NumPolicies]fetch.Statistics{
				{Accesses: 4, Hits: 3, Misses: 1, Cycles: 15},
				{Accesses: 3, Hits: 2, Misses: 1, Cycles: 14},
			}
			reporter.PrintFetch(&stats)

			out := buf.String()
			Expect(out).To(ContainSubstring("without forwarding:\n    Fetches: 4"))
			Expect(out).To(ContainSubstring("with forwarding:\n    Fetches: 3"))
			Expect(out).To(ContainSubstring("Hit rate: 75.0%"))
		})
	})

	Describe("PrintRun", func() {
		It("should print hazards before the summary", func() {
			reporter.PrintRun(report.Run{Result: result})

			out := buf.String()
			Expect(out).To(HavePrefix("hazard between instruction 0 and instruction 1\n"))
			Expect(out).To(ContainSubstring("Total instructions: 2"))
			Expect(out).NotTo(ContainSubstring("Instruction fetch"))
		})
	})

	Describe("WriteJSON", func() {
		It("should encode counters, hazards and policies", func() {
			stats := [hazard.NumPolicies]fetch.Statistics{{Accesses: 4}, {Accesses: 3}}
			run := report.Run{
				Input:   "prog.hex",
				Result:  result,
				Outputs: [hazard.NumPolicies]string{"a.hex", "b.hex"},
				Fetch:   &stats,
			}
			Expect(reporter.WriteJSON(run)).To(Succeed())

			var decoded report.RunJSON
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())

			Expect(decoded.Input).To(Equal("prog.hex"))
			Expect(decoded.TotalInstructions).To(Equal(uint64(2)))
			Expect(decoded.Categories).To(HaveKeyWithValue("ALU", uint64(2)))
			Expect(decoded.Categories).To(HaveLen(int(insts.NumCategories)))
			Expect(decoded.Hazards).To(Equal([]report.HazardJSON{{Producer: 0, Consumer: 1}}))

			Expect(decoded.Policies).To(HaveLen(2))
			Expect(decoded.Policies[0].Name).To(Equal("without forwarding"))
			Expect(decoded.Policies[0].Stalls).To(Equal(uint64(2)))
			Expect(decoded.Policies[0].StreamLength).To(Equal(4))
			Expect(decoded.Policies[0].Output).To(Equal("a.hex"))
			Expect(decoded.Policies[0].Fetch.Accesses).To(Equal(uint64(4)))
			Expect(decoded.Policies[1].StallsPerHazard).To(Equal(1))
			Expect(decoded.Policies[1].StreamLength).To(Equal(3))
		})

		It("should encode an empty hazard list as an array", func() {
			run := report.Run{Result: hazard.Analyze(nil)}
			Expect(reporter.WriteJSON(run)).To(Succeed())

			Expect(buf.String()).To(ContainSubstring(`"hazards": []`))
			Expect(buf.String()).NotTo(ContainSubstring(`"fetch"`))
		})
	})
})
