package randsrc

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings of the default source.
type Config struct {
	// Seed is the decimal seed of the default source. An empty value selects
	// a random seed.
	Seed string `env:"SANITY_SEED"`
}

// LoadConfig parses the environment into a [Config].
// Returns an error wrapping [ErrInvalidSeed] when SANITY_SEED is set but is
// not a valid unsigned integer.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("randsrc: failed to parse environment: %w", err)
	}
	if _, _, err := cfg.seed(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts cfg into constructor options for [New].
// A config without a seed yields no options, which selects a random key.
func (c Config) Options() []Option {
	seed, ok, err := c.seed()
	if err != nil || !ok {
		return nil
	}
	return []Option{WithSeed(seed)}
}

func (c Config) seed() (uint64, bool, error) {
	if c.Seed == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidSeed, c.Seed)
	}
	return v, true, nil
}
