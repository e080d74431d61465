// SPDX-License-Identifier: MIT
// Package nn: sentinel error set.
//
// Shape failures are reported with matrix.ErrDimensionMismatch (wrapped with
// the nn operation) so that one errors.Is check covers the whole stack.

package nn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a network that cannot be built or trained:
	// fewer than two layers, a non-positive width, a non-positive or
	// non-finite learning rate, an unknown activation or negative epochs.
	ErrInvalidConfig = errors.New("nn: invalid configuration")

	// ErrNoForwardPass indicates BackPropagate without a pending FeedForward.
	ErrNoForwardPass = errors.New("nn: back-propagation requires a prior forward pass")

	// ErrLayerIndex indicates an accessor was given a transition index
	// outside [0, len(layers)-1).
	ErrLayerIndex = errors.New("nn: layer index out of range")
)

// Operation name constants for uniform error wrapping.
const (
	opNew           = "New"
	opFeedForward   = "FeedForward"
	opBackPropagate = "BackPropagate"
	opTrain         = "Train"
	opPredict       = "Predict"
	opLoss          = "Loss"
	opSetLayer      = "SetLayer"
)

// nnErrorf wraps err with an operation tag, preserving it for errors.Is.
func nnErrorf(tag string, err error) error {
	return fmt.Errorf("nn.%s: %w", tag, err)
}
