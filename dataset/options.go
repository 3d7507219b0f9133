// SPDX-License-Identifier: MIT

package dataset

// Option customizes Load.
type Option func(*loadConfig)

type loadConfig struct {
	directed  bool
	rootLabel string
}

// WithDirected makes Load build a directed store (single-direction edges).
// The default is undirected.
func WithDirected(directed bool) Option {
	return func(c *loadConfig) {
		c.directed = directed
	}
}

// WithRootLabel sets the label whose nodes receive the root display hint.
func WithRootLabel(label string) Option {
	return func(c *loadConfig) {
		c.rootLabel = label
	}
}
