// SPDX-License-Identifier: MIT
// Package: lvnet/nn
//
// options.go - functional options for network construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil sources/hooks);
//     New and the training methods themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package nn

import (
	"math/rand"

	"github.com/katalvlaran/lvnet/matrix"
)

// Option customizes a Network before its weights are drawn.
type Option func(*config)

// EpochHook observes training progress. epoch is zero-based; loss is the
// mean squared error of the epoch's examples measured before each update.
type EpochHook func(epoch int, loss float64)

// config holds the resolved options.
type config struct {
	rng     matrix.RandSource // weight/bias initialisation draws
	onEpoch EpochHook         // optional progress hook
}

// newConfig applies opts over the defaults (shared math/rand source, no hook).
func newConfig(opts ...Option) config {
	cfg := config{rng: matrix.DefaultRandSource}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit random source for weight initialisation.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(src matrix.RandSource) Option {
	if src == nil {
		panic("nn: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = src
	}
}

// WithSeed initialises weights from a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOnEpoch registers a hook called after every training epoch.
// Panics on nil.
func WithOnEpoch(fn EpochHook) Option {
	if fn == nil {
		panic("nn: WithOnEpoch(nil)")
	}
	return func(c *config) {
		c.onEpoch = fn
	}
}
