// SPDX-License-Identifier: MIT

// Package matrix: shared types and numeric constants.
// Errors live in errors.go, storage in dense.go, kernels in linear_algebra.go
// and elimination.go.
package matrix

import "math/rand"

// PivotTolerance is the magnitude below which a column is treated as holding
// no usable pivot during forward elimination. The column is skipped, not
// reported as an error.
const PivotTolerance = 1e-12

// RandSource supplies independent uniform draws in [0, 1).
// *math/rand.Rand satisfies it; tests seed one for reproducibility.
type RandSource interface {
	Float64() float64
}

// globalRand adapts the package-level math/rand functions to RandSource.
// It is the source used by NewRandom when the caller passes nil.
type globalRand struct{}

// Float64 draws from the shared math/rand source (goroutine-safe).
func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRandSource is used whenever a nil RandSource is supplied.
var DefaultRandSource RandSource = globalRand{}
