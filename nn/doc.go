// SPDX-License-Identifier: MIT

// Package nn implements a small fully connected feed-forward neural network
// trained by online backpropagation, built on the matrix package.
//
// What:
//
//   - Network: layer widths [n0, n1, ..., nL-1] with one weight matrix
//     (n[i+1]×n[i]) and one bias column (n[i+1]×1) per transition.
//   - Activation: a closed set of nonlinearities (Sigmoid, ReLU, Tanh,
//     Softplus), each with a derivative expressed through the activated value.
//   - FeedForward / BackPropagate: one forward pass recorded in a cache, then
//     one learning-rate scaled gradient step that consumes it.
//   - Train / Predict / Loss: dataset-level helpers over [][]float64.
//
// Why:
//
//   - Teaching-sized networks where every intermediate is an inspectable
//     matrix.Dense rather than an opaque tensor.
//
// Determinism:
//
//   - Weights and biases start uniform in [0,1). Pass WithSeed or WithRand to
//     New for reproducible runs; the default draws from the shared math/rand
//     source.
//
// Errors:
//
//   - ErrInvalidConfig, ErrNoForwardPass, ErrLayerIndex from this package.
//   - matrix.ErrDimensionMismatch and matrix.ErrNilMatrix for shape problems,
//     wrapped with the nn operation name; test with errors.Is.
//
// Quick start:
//
//	net, _ := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(1))
//	_ = net.Train(inputs, targets, 5000)
//	out, _ := net.Predict([]float64{1, 0})
//
// A Network is not safe for concurrent use.
package nn
