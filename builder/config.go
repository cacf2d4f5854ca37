package builder

import (
	"fmt"
	"math/rand"
)

// defaultSeed freezes the stochastic paths when the caller does not care.
const defaultSeed = int64(42)

// builderConfig is the immutable, resolved configuration every
// Constructor receives. It is produced once per BuildGraph call.
type builderConfig struct {
	idFn func(i int) string // vertex ID scheme
	rng  *rand.Rand         // seeded source for stochastic constructors
}

// BuilderOption mutates the configuration during resolution.
type BuilderOption func(*builderConfig)

// WithSeed fixes the random source handed to constructors so stochastic
// constructors replay identically. ShuffleIDs does not read it; it takes
// its own seed argument.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDFn overrides the vertex ID scheme. The default is "V0", "V1", ….
func WithIDFn(fn func(i int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// newBuilderConfig resolves options left-to-right over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: func(i int) string { return fmt.Sprintf("V%d", i) },
		rng:  rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
