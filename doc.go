// Package lvnet is a small playground for dense linear algebra and the
// feed-forward neural networks built on top of it.
//
// 🚀 What is lvnet?
//
//	A compact, readable library that brings together:
//		• Dense matrices: row-major float64 storage, bounds-checked access
//		• Arithmetic: add, subtract, multiply, Hadamard, transpose, scale, map
//		• Elimination: Gaussian forward elimination with partial pivoting
//		• Determinants: sign-corrected product of pivots
//		• Neural networks: layered feed-forward nets with online backprop
//
// ✨ Why choose lvnet?
//
//   - Beginner-friendly – every intermediate is a plain *matrix.Dense
//   - Explicit errors – sentinel errors you can test with errors.Is
//   - Reproducible – seedable weight initialisation
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ - Dense type, validators, arithmetic, elimination & determinants
//	nn/     - Activation set, Network (FeedForward, BackPropagate, Train)
//
// Quick ASCII example:
//
//	  [x1]      [h1]
//	  [x2] ──▶  [h2] ──▶ [y]
//	            [h3]
//
//	a 2-3-1 network: two weight matrices (3×2, 1×3) and two bias columns.
//
// See examples/xor for training on XOR and examples/elimination for the
// determinant walkthrough.
//
//	go get github.com/katalvlaran/lvnet
package lvnet
