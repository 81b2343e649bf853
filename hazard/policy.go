// Package hazard detects read-after-write hazards between adjacent
// instructions and rewrites the program into one stall-padded stream per
// forwarding policy.
package hazard

// Policy is a forwarding policy of the modeled pipeline.
type Policy uint8

// Forwarding policies.
const (
	// PolicyNoForwarding waits for writeback: two stalls per hazard.
	PolicyNoForwarding Policy = iota
	// PolicyForwarding bypasses the result from EX/MEM: one stall per hazard.
	PolicyForwarding

	// NumPolicies is the number of policies. Keep it last.
	NumPolicies
)

// Policies lists every policy in output order.
var Policies = [NumPolicies]Policy{PolicyNoForwarding, PolicyForwarding}

// StallsPerHazard returns how many stalls the policy inserts for one hazard.
func (p Policy) StallsPerHazard() int {
	switch p {
	case PolicyNoForwarding:
		return 2
	case PolicyForwarding:
		return 1
	default:
		return 0
	}
}

// String returns the display name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyNoForwarding:
		return "without forwarding"
	case PolicyForwarding:
		return "with forwarding"
	default:
		return "unknown"
	}
}
