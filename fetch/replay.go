package fetch

// Replay fetches n sequential instructions starting at base through a cold
// cache and returns the resulting statistics.
func Replay(config Config, base uint64, n int) Statistics {
	c := New(config)
	for i := 0; i < n; i++ {
		c.Fetch(base + uint64(i)*InstructionSize)
	}
	return c.Stats()
}
