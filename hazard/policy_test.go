package hazard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvhazard/hazard"
)

var _ = Describe("Policy", func() {
	It("should stall twice without forwarding", func() {
		Expect(hazard.PolicyNoForwarding.StallsPerHazard()).To(Equal(2))
	})

	It("should stall once with forwarding", func() {
		Expect(hazard.PolicyForwarding.StallsPerHazard()).To(Equal(1))
	})

	It("should not stall for unknown policies", func() {
		Expect(hazard.NumPolicies.StallsPerHazard()).To(Equal(0))
		Expect(hazard.NumPolicies.String()).To(Equal("unknown"))
	})

	It("should list policies in output order", func() {
		Expect(hazard.Policies[0]).To(Equal(hazard.PolicyNoForwarding))
		Expect(hazard.Policies[1]).To(Equal(hazard.PolicyForwarding))
	})
})
