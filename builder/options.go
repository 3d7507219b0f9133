// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// IDFn maps a node index to its id (or label).
type IDFn func(int) string

// Option customizes a builderConfig before construction.
type Option func(*builderConfig)

type builderConfig struct {
	idFn    IDFn
	labelFn IDFn
	rng     *rand.Rand
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.labelFn == nil {
		cfg.labelFn = cfg.idFn
	}

	return cfg
}

// DefaultIDFn yields "0", "1", "2", ...
func DefaultIDFn(i int) string { return strconv.Itoa(i) }

// PrefixIDFn yields prefix+"0", prefix+"1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(i int) string { return prefix + strconv.Itoa(i) }
}

// GridIDFn formats grid coordinates as "r_c".
func GridIDFn(r, c int) string { return fmt.Sprintf("%d_%d", r, c) }

// WithIDScheme sets the node id generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithLabelScheme sets the node label generator (defaults to the id scheme).
// Panics on nil.
func WithLabelScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}

	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}
