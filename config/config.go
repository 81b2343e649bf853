// Package config holds the run configuration of the hazard analyzer.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ICacheConfig describes the instruction cache used to replay fetches of the
// rewritten streams.
type ICacheConfig struct {
	// Size is the capacity in bytes. Default: 32KB.
	Size int `json:"size"`

	// Associativity is the number of ways per set. Default: 4.
	Associativity int `json:"associativity"`

	// BlockSize is the line size in bytes. Default: 64.
	BlockSize int `json:"block_size"`

	// HitLatency is the fetch latency on a hit. Default: 1 cycle.
	HitLatency uint64 `json:"hit_latency"`

	// MissLatency is the fetch latency on a miss. Default: 12 cycles.
	MissLatency uint64 `json:"miss_latency"`
}

// Config holds the analyzer settings.
type Config struct {
	// InputPath is the instruction list read when no path is given on the
	// command line.
	InputPath string `json:"input_path"`

	// NoForwardingOutput is the result file for the pipeline without
	// forwarding.
	NoForwardingOutput string `json:"no_forwarding_output"`

	// ForwardingOutput is the result file for the pipeline with forwarding.
	ForwardingOutput string `json:"forwarding_output"`

	// EnableICache turns on fetch replay of the rewritten streams.
	EnableICache bool `json:"enable_icache"`

	// FetchBase is the address of the first instruction of each stream.
	FetchBase uint64 `json:"fetch_base"`

	// ICache configures the replayed instruction cache.
	ICache ICacheConfig `json:"icache"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		InputPath:          "teste.hex",
		NoForwardingOutput: "modified_without_forwarding.hex",
		ForwardingOutput:   "modified_with_forwarding.hex",
		EnableICache:       true,
		FetchBase:          0,
		ICache: ICacheConfig{
			Size:          32 * 1024,
			Associativity: 4,
			BlockSize:     64,
			HitLatency:    1,
			MissLatency:   12,
		},
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig writes the Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that paths are set and the cache geometry is usable.
func (c *Config) Validate() error {
	if c.NoForwardingOutput == "" {
		return fmt.Errorf("no_forwarding_output must be set")
	}
	if c.ForwardingOutput == "" {
		return fmt.Errorf("forwarding_output must be set")
	}
	if c.NoForwardingOutput == c.ForwardingOutput {
		return fmt.Errorf("no_forwarding_output and forwarding_output must differ")
	}
	if c.FetchBase%4 != 0 {
		return fmt.Errorf("fetch_base must be 4-byte aligned")
	}

	if !c.EnableICache {
		return nil
	}

	ic := c.ICache
	if ic.BlockSize < 4 || ic.BlockSize&(ic.BlockSize-1) != 0 {
		return fmt.Errorf("icache.block_size must be a power of two >= 4")
	}
	if ic.Associativity <= 0 {
		return fmt.Errorf("icache.associativity must be > 0")
	}
	if ic.Size <= 0 || ic.Size%(ic.Associativity*ic.BlockSize) != 0 {
		return fmt.Errorf("icache.size must be a positive multiple of associativity * block_size")
	}
	if ic.HitLatency == 0 {
		return fmt.Errorf("icache.hit_latency must be > 0")
	}
	if ic.MissLatency < ic.HitLatency {
		return fmt.Errorf("icache.miss_latency must be >= hit_latency")
	}

	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
