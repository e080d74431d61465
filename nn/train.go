// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
	"gonum.org/v1/gonum/floats"
)

// Train runs epochs passes of online learning over the dataset.
// MAIN DESCRIPTION:
//   - For every epoch and every index k in order: FeedForward(inputs[k]),
//     then BackPropagate(targets[k]). Parameters change after each example.
//   - When an epoch hook is set it is called once per epoch with the mean
//     squared error of the outputs seen during that epoch (each measured
//     before its own update).
//
// Errors:
//   - matrix.ErrDimensionMismatch: len(inputs) != len(targets) or an example
//     whose width does not match the input or output layer.
//   - ErrInvalidConfig: epochs < 0.
//
// Notes:
//   - epochs == 0 or an empty dataset is a no-op.
//   - On error the parameters reflect every update applied so far.
func (n *Network) Train(inputs, targets [][]float64, epochs int) error {
	if len(inputs) != len(targets) {
		return nnErrorf(opTrain, fmt.Errorf("%d inputs, %d targets: %w", len(inputs), len(targets), matrix.ErrDimensionMismatch))
	}
	if epochs < 0 {
		return nnErrorf(opTrain, fmt.Errorf("epochs %d: %w", epochs, ErrInvalidConfig))
	}

	xs, ys, err := n.columns(inputs, targets)
	if err != nil {
		return nnErrorf(opTrain, err)
	}

	for epoch := 0; epoch < epochs; epoch++ {
		var sum float64
		for k := range xs {
			out, ferr := n.FeedForward(xs[k])
			if ferr != nil {
				return nnErrorf(opTrain, fmt.Errorf("example %d: %w", k, ferr))
			}
			sum += squaredError(out, ys[k])
			if berr := n.BackPropagate(ys[k]); berr != nil {
				return nnErrorf(opTrain, fmt.Errorf("example %d: %w", k, berr))
			}
		}
		if n.onEpoch != nil {
			n.onEpoch(epoch, meanOf(sum, len(xs), n.outputs()))
		}
	}

	return nil
}

// Predict evaluates the network on one example without recording it.
// A pending FeedForward stays available to BackPropagate.
func (n *Network) Predict(input []float64) ([]float64, error) {
	out, _, err := n.forward(matrix.NewColumn(input), false)
	if err != nil {
		return nil, nnErrorf(opPredict, err)
	}

	return out.Data(), nil
}

// Loss returns the mean squared error of the network over the dataset,
// averaged over every output component of every example. It does not
// modify the network. An empty dataset has zero loss.
func (n *Network) Loss(inputs, targets [][]float64) (float64, error) {
	if len(inputs) != len(targets) {
		return 0, nnErrorf(opLoss, fmt.Errorf("%d inputs, %d targets: %w", len(inputs), len(targets), matrix.ErrDimensionMismatch))
	}
	xs, ys, err := n.columns(inputs, targets)
	if err != nil {
		return 0, nnErrorf(opLoss, err)
	}

	var sum float64
	for k := range xs {
		out, _, ferr := n.forward(xs[k], false)
		if ferr != nil {
			return 0, nnErrorf(opLoss, fmt.Errorf("example %d: %w", k, ferr))
		}
		sum += squaredError(out, ys[k])
	}

	return meanOf(sum, len(xs), n.outputs()), nil
}

// columns converts a dataset into column matrices and checks every width
// up front, so training never stops half-way on a malformed example.
func (n *Network) columns(inputs, targets [][]float64) ([]*matrix.Dense, []*matrix.Dense, error) {
	xs := make([]*matrix.Dense, len(inputs))
	ys := make([]*matrix.Dense, len(targets))
	for k := range inputs {
		if len(inputs[k]) != n.layers[0] {
			return nil, nil, fmt.Errorf("input %d has %d values, want %d: %w",
				k, len(inputs[k]), n.layers[0], matrix.ErrDimensionMismatch)
		}
		if len(targets[k]) != n.outputs() {
			return nil, nil, fmt.Errorf("target %d has %d values, want %d: %w",
				k, len(targets[k]), n.outputs(), matrix.ErrDimensionMismatch)
		}
		xs[k] = matrix.NewColumn(inputs[k])
		ys[k] = matrix.NewColumn(targets[k])
	}

	return xs, ys, nil
}

// outputs is the width of the output layer.
func (n *Network) outputs() int { return n.layers[len(n.layers)-1] }

// squaredError is Σ (target - out)²; shapes are checked by the caller.
func squaredError(out, target *matrix.Dense) float64 {
	d := floats.Distance(target.Data(), out.Data(), 2)

	return d * d
}

func meanOf(sum float64, examples, width int) float64 {
	if examples == 0 {
		return 0
	}

	return sum / float64(examples*width)
}
