// SPDX-License-Identifier: MIT

// Package nn - fully connected feed-forward network on top of matrix.Dense.
//
// Purpose:
//   - Own the layer widths, one weight and one bias matrix per transition,
//     the activation variant and the learning rate.
//   - Forward: a[i+1] = act(W[i]·a[i] + b[i]), recording every a[i].
//   - Backward: online gradient step on the recorded activations.
//
// Shapes (L = len(layers)):
//   - W[i]: layers[i+1] × layers[i]; b[i]: layers[i+1] × 1; i in [0, L-1).
//   - cache[0] = input (layers[0] × 1); cache[i+1] = activated output of W[i].

package nn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/matrix"
)

// Network is a feed-forward network trained by per-example backpropagation.
// A Network is not safe for concurrent use.
type Network struct {
	layers  []int           // widths, len >= 2, all > 0
	weights []*matrix.Dense // weights[i]: layers[i+1] × layers[i]
	biases  []*matrix.Dense // biases[i]:  layers[i+1] × 1
	cache   []*matrix.Dense // activations of the pending forward pass (nil when none)

	act     Activation
	fn      func(float64) float64 // resolved act.Func
	deriv   func(float64) float64 // resolved act.Derivative (of the output)
	lr      float64
	onEpoch EpochHook
}

// New builds a network with the given layer widths, activation and learning rate.
// MAIN DESCRIPTION:
//   - For each adjacent pair (cur, next) draws a next×cur weight matrix and a
//     next×1 bias matrix uniformly from [0,1) using the configured source.
//
// Errors:
//   - ErrInvalidConfig: len(layers) < 2, a width <= 0, learningRate <= 0,
//     NaN or Inf, or an unknown activation.
//
// Complexity:
//   - Time and space O(Σ layers[i]*layers[i+1]).
func New(layers []int, act Activation, learningRate float64, opts ...Option) (*Network, error) {
	if len(layers) < 2 {
		return nil, nnErrorf(opNew, fmt.Errorf("%d layers, need at least 2: %w", len(layers), ErrInvalidConfig))
	}
	for i, w := range layers {
		if w <= 0 {
			return nil, nnErrorf(opNew, fmt.Errorf("layer %d has width %d: %w", i, w, ErrInvalidConfig))
		}
	}
	if !(learningRate > 0) || math.IsInf(learningRate, 0) {
		return nil, nnErrorf(opNew, fmt.Errorf("learning rate %v: %w", learningRate, ErrInvalidConfig))
	}
	if !act.Valid() {
		return nil, nnErrorf(opNew, fmt.Errorf("%v: %w", act, ErrInvalidConfig))
	}

	cfg := newConfig(opts...)
	f := act.funcs()
	n := &Network{
		layers:  append([]int(nil), layers...),
		weights: make([]*matrix.Dense, len(layers)-1),
		biases:  make([]*matrix.Dense, len(layers)-1),
		act:     act,
		fn:      f.fn,
		deriv:   f.deriv,
		lr:      learningRate,
		onEpoch: cfg.onEpoch,
	}

	var err error
	for i := 0; i < len(layers)-1; i++ {
		if n.weights[i], err = matrix.NewRandom(layers[i+1], layers[i], cfg.rng); err != nil {
			return nil, nnErrorf(opNew, err)
		}
		if n.biases[i], err = matrix.NewRandom(layers[i+1], 1, cfg.rng); err != nil {
			return nil, nnErrorf(opNew, err)
		}
	}

	return n, nil
}

// Layers returns a copy of the layer widths.
func (n *Network) Layers() []int { return append([]int(nil), n.layers...) }

// Activation returns the network's activation variant.
func (n *Network) Activation() Activation { return n.act }

// LearningRate returns the step size used by BackPropagate.
func (n *Network) LearningRate() float64 { return n.lr }

// Weights returns a copy of the weight matrix of transition i.
func (n *Network) Weights(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(n.weights) {
		return nil, fmt.Errorf("nn.Weights(%d): %w", i, ErrLayerIndex)
	}
	return n.weights[i].Clone(), nil
}

// Biases returns a copy of the bias column of transition i.
func (n *Network) Biases(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(n.biases) {
		return nil, fmt.Errorf("nn.Biases(%d): %w", i, ErrLayerIndex)
	}
	return n.biases[i].Clone(), nil
}

// SetLayer replaces the parameters of transition i with copies of w and b.
// w must be layers[i+1]×layers[i] and b layers[i+1]×1. Any pending forward
// pass is discarded since it no longer matches the parameters.
func (n *Network) SetLayer(i int, w, b *matrix.Dense) error {
	if i < 0 || i >= len(n.weights) {
		return nnErrorf(opSetLayer, fmt.Errorf("%d: %w", i, ErrLayerIndex))
	}
	if err := matrix.ValidateShape(w, n.layers[i+1], n.layers[i]); err != nil {
		return nnErrorf(opSetLayer, fmt.Errorf("weights: %w", err))
	}
	if err := matrix.ValidateShape(b, n.layers[i+1], 1); err != nil {
		return nnErrorf(opSetLayer, fmt.Errorf("biases: %w", err))
	}
	n.weights[i] = w.Clone()
	n.biases[i] = b.Clone()
	n.cache = nil

	return nil
}

// FeedForward runs input through every layer and returns the output column.
// MAIN DESCRIPTION:
//   - Replaces the activation cache with [input, a1, ..., aL-1]; the next
//     BackPropagate consumes it.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - matrix.ErrDimensionMismatch unless input is layers[0]×1.
//
// Returns:
//   - A copy of the final activation (layers[L-1]×1); the cache keeps its own.
func (n *Network) FeedForward(input *matrix.Dense) (*matrix.Dense, error) {
	out, cache, err := n.forward(input, true)
	if err != nil {
		return nil, nnErrorf(opFeedForward, err)
	}
	n.cache = cache

	return out.Clone(), nil
}

// forward computes the activations of input. When record is set the
// returned slice holds every activation starting with a copy of input;
// otherwise it is nil and only the output is kept.
func (n *Network) forward(input *matrix.Dense, record bool) (*matrix.Dense, []*matrix.Dense, error) {
	if err := matrix.ValidateShape(input, n.layers[0], 1); err != nil {
		return nil, nil, err
	}

	current := input.Clone()
	var cache []*matrix.Dense
	if record {
		cache = make([]*matrix.Dense, 1, len(n.layers))
		cache[0] = current
	}

	var pre *matrix.Dense
	var err error
	for i := range n.weights {
		if pre, err = matrix.Mul(n.weights[i], current); err != nil {
			return nil, nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if pre, err = matrix.Add(pre, n.biases[i]); err != nil {
			return nil, nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if current, err = matrix.Map(pre, n.fn); err != nil {
			return nil, nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if record {
			cache = append(cache, current)
		}
	}

	return current, cache, nil
}

// BackPropagate applies one learning-rate scaled gradient step towards target
// using the activations recorded by the last FeedForward.
// MAIN DESCRIPTION:
//   - error = target − output; then for i = L-2 down to 0:
//     gradient = deriv(cache[i+1]) ⊙ error · lr
//     W[i] += gradient · cache[i]ᵀ,  b[i] += gradient
//     error = W[i]ᵀ(before the update) · error
//
// Behavior highlights:
//   - The recorded pass is consumed on success; a second call without a new
//     FeedForward fails with ErrNoForwardPass.
//   - Parameters are only replaced after every new matrix of a layer has
//     been computed, so a failure never leaves a layer half-updated.
//
// Errors:
//   - ErrNoForwardPass, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch
//     (target shape differs from the output shape).
func (n *Network) BackPropagate(target *matrix.Dense) error {
	if len(n.cache) != len(n.layers) {
		return nnErrorf(opBackPropagate, ErrNoForwardPass)
	}
	output := n.cache[len(n.cache)-1]
	if err := matrix.ValidateShape(target, output.Rows(), output.Cols()); err != nil {
		return nnErrorf(opBackPropagate, err)
	}

	errSignal, err := matrix.Sub(target, output)
	if err != nil {
		return nnErrorf(opBackPropagate, err)
	}
	for i := len(n.weights) - 1; i >= 0; i-- {
		if errSignal, err = n.step(i, errSignal); err != nil {
			return nnErrorf(opBackPropagate, fmt.Errorf("layer %d: %w", i, err))
		}
	}
	n.cache = nil

	return nil
}

// step updates transition i from the error at its output and returns the
// error propagated to its input.
func (n *Network) step(i int, errSignal *matrix.Dense) (*matrix.Dense, error) {
	slope, err := matrix.Map(n.cache[i+1], n.deriv)
	if err != nil {
		return nil, err
	}
	gradient, err := matrix.Hadamard(slope, errSignal)
	if err != nil {
		return nil, err
	}
	if gradient, err = matrix.Scale(gradient, n.lr); err != nil {
		return nil, err
	}

	inputT, err := matrix.Transpose(n.cache[i])
	if err != nil {
		return nil, err
	}
	delta, err := matrix.Mul(gradient, inputT)
	if err != nil {
		return nil, err
	}

	// propagate through the weights as they were during the forward pass
	weightsT, err := matrix.Transpose(n.weights[i])
	if err != nil {
		return nil, err
	}
	prev, err := matrix.Mul(weightsT, errSignal)
	if err != nil {
		return nil, err
	}

	w, err := matrix.Add(n.weights[i], delta)
	if err != nil {
		return nil, err
	}
	b, err := matrix.Add(n.biases[i], gradient)
	if err != nil {
		return nil, err
	}
	n.weights[i], n.biases[i] = w, b

	return prev, nil
}
