// cmd/config.go
package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelConfig is the declarative description of the alphabet and per-base
// modification counts a matrix file was produced against. Nil/absent
// CanNMods means the model carries no modification channel.
type ModelConfig struct {
	Alphabet string `yaml:"alphabet"`
	CanNMods []int  `yaml:"can_nmods"`
}

// LoadModelConfig reads and validates a YAML model config from path.
func LoadModelConfig(path string) (*ModelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model config: %w", err)
	}
	var cfg ModelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing model config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks internal consistency: CanNMods, if present, must have one
// entry per alphabet symbol and no negative counts.
func (c *ModelConfig) Validate() error {
	if c.Alphabet == "" {
		return fmt.Errorf("model config: alphabet must not be empty")
	}
	if c.CanNMods != nil {
		if len(c.CanNMods) != len(c.Alphabet) {
			return fmt.Errorf("model config: can_nmods has %d entries, alphabet has %d symbols", len(c.CanNMods), len(c.Alphabet))
		}
		for b, n := range c.CanNMods {
			if n < 0 {
				return fmt.Errorf("model config: can_nmods[%d]=%d must be non-negative", b, n)
			}
		}
	}
	return nil
}

// CanModsOffsets returns the prefix-sum offsets vector O[0..B] used to
// address a modification category for canonical base b at column
// T+O[b]+c. Returns nil when the config carries no modification channel.
func (c *ModelConfig) CanModsOffsets() []int {
	if c.CanNMods == nil {
		return nil
	}
	offsets := make([]int, len(c.CanNMods)+1)
	for b, n := range c.CanNMods {
		offsets[b+1] = offsets[b] + n
	}
	return offsets
}
