// Package fetch replays instruction fetches of a rewritten stream through an
// L1 instruction cache model built on Akita cache components.
//
// Inserted stalls lengthen a stream and so widen its fetch footprint. The
// replay reports how many extra lines that costs.
package fetch

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// InstructionSize is the width of one fetched instruction in bytes.
const InstructionSize = 4

// Config holds cache configuration parameters.
type Config struct {
	// Size in bytes
	Size int
	// Associativity (number of ways)
	Associativity int
	// BlockSize in bytes (cache line size)
	BlockSize int
	// HitLatency in cycles
	HitLatency uint64
	// MissLatency in cycles (includes next-level access time)
	MissLatency uint64
}

// DefaultConfig returns a small 32KB, 4-way L1I with 64B lines.
func DefaultConfig() Config {
	return Config{
		Size:          32 * 1024,
		Associativity: 4,
		BlockSize:     64,
		HitLatency:    1,
		MissLatency:   12,
	}
}

// AccessResult contains the result of one fetch.
type AccessResult struct {
	// Hit indicates whether the fetch hit.
	Hit bool
	// Latency is the number of cycles the fetch takes.
	Latency uint64
	// Evicted is true if a valid line was replaced.
	Evicted bool
	// EvictedAddr is the line address of the replaced line.
	EvictedAddr uint64
}

// Statistics holds fetch statistics.
type Statistics struct {
	Accesses  uint64 `json:"accesses"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
	// Cycles is the summed latency of all fetches.
	Cycles uint64 `json:"cycles"`
}

// HitRate returns hits over accesses, or 0 with no accesses.
func (s Statistics) HitRate() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Accesses)
}

// ICache is a read-only instruction cache. It tracks tags only; the
// instruction words themselves live in the stream being replayed.
type ICache struct {
	config    Config
	directory *akitacache.DirectoryImpl
	stats     Statistics
}

// New creates a new instruction cache with the given configuration.
func New(config Config) *ICache {
	numSets := config.Size / (config.Associativity * config.BlockSize)

	return &ICache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
	}
}

// Config returns the cache configuration.
func (c *ICache) Config() Config {
	return c.config
}

// Stats returns fetch statistics.
func (c *ICache) Stats() Statistics {
	return c.stats
}

func (c *ICache) lineAddr(addr uint64) uint64 {
	return (addr / uint64(c.config.BlockSize)) * uint64(c.config.BlockSize)
}

// Fetch looks up the line holding addr and allocates it on a miss.
func (c *ICache) Fetch(addr uint64) AccessResult {
	c.stats.Accesses++

	lineAddr := c.lineAddr(addr)
	block := c.directory.Lookup(0, lineAddr)

	if block != nil && block.IsValid {
		c.stats.Hits++
		c.stats.Cycles += c.config.HitLatency
		c.directory.Visit(block) // Update LRU

		return AccessResult{
			Hit:     true,
			Latency: c.config.HitLatency,
		}
	}

	c.stats.Misses++
	c.stats.Cycles += c.config.MissLatency
	return c.allocate(lineAddr)
}

// allocate fills a victim way with the line at lineAddr.
func (c *ICache) allocate(lineAddr uint64) AccessResult {
	result := AccessResult{
		Hit:     false,
		Latency: c.config.MissLatency,
	}

	victim := c.directory.FindVictim(lineAddr)
	if victim == nil {
		return result
	}

	if victim.IsValid {
		c.stats.Evictions++
		result.Evicted = true
		result.EvictedAddr = victim.Tag
	}

	victim.Tag = lineAddr
	victim.IsValid = true
	victim.IsDirty = false

	c.directory.Visit(victim)

	return result
}

// Invalidate drops the line holding addr.
func (c *ICache) Invalidate(addr uint64) {
	block := c.directory.Lookup(0, c.lineAddr(addr))
	if block != nil && block.IsValid {
		block.IsValid = false
	}
}

// Reset invalidates all lines and clears statistics.
func (c *ICache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}
