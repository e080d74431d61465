// Package nn_test contains dataset-level tests: Train, Predict and Loss.
package nn_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/nn"
	"github.com/stretchr/testify/require"
)

var (
	toyInputs  = [][]float64{{0, 0, 0}, {1, 1, 1}}
	toyTargets = [][]float64{{0}, {1}}
)

// TestTrain_ReducesError trains the [3,2,1] sigmoid network on two examples
// and expects the dataset error to drop.
func TestTrain_ReducesError(t *testing.T) {
	t.Parallel()

	n := MustNetwork(t, []int{3, 2, 1}, nn.Sigmoid, 0.1, nn.WithSeed(2024))

	before, err := n.Loss(toyInputs, toyTargets)
	require.NoError(t, err)

	require.NoError(t, n.Train(toyInputs, toyTargets, 1000))

	after, err := n.Loss(toyInputs, toyTargets)
	require.NoError(t, err)
	require.Less(t, after, before)

	lo, err := n.Predict(toyInputs[0])
	require.NoError(t, err)
	hi, err := n.Predict(toyInputs[1])
	require.NoError(t, err)
	require.Len(t, lo, 1)
	require.Less(t, lo[0], hi[0])
}

func TestTrain_EpochHook(t *testing.T) {
	t.Parallel()

	var (
		calls  []int
		losses []float64
	)
	hook := func(epoch int, loss float64) {
		calls = append(calls, epoch)
		losses = append(losses, loss)
	}
	n := MustNetwork(t, []int{3, 2, 1}, nn.Sigmoid, 0.5, nn.WithSeed(7), nn.WithOnEpoch(hook))

	require.NoError(t, n.Train(toyInputs, toyTargets, 200))
	require.Len(t, calls, 200)
	require.Equal(t, 0, calls[0])
	require.Equal(t, 199, calls[199])
	require.Less(t, losses[199], losses[0])

	// zero epochs: no updates, no calls
	w, _ := n.Weights(0)
	require.NoError(t, n.Train(toyInputs, toyTargets, 0))
	require.Len(t, calls, 200)
	again, _ := n.Weights(0)
	require.True(t, matrix.Equal(w, again))
}

func TestTrain_Errors(t *testing.T) {
	t.Parallel()

	n := MustNetwork(t, []int{3, 2, 1}, nn.Sigmoid, 0.1, nn.WithSeed(1))
	w, _ := n.Weights(0)

	err := n.Train(toyInputs, toyTargets[:1], 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = n.Train(toyInputs, toyTargets, -1)
	require.ErrorIs(t, err, nn.ErrInvalidConfig)

	// a malformed second example is caught before any update
	err = n.Train([][]float64{{0, 0, 0}, {1, 1}}, toyTargets, 5)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	err = n.Train(toyInputs, [][]float64{{0}, {1, 1}}, 5)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	again, _ := n.Weights(0)
	require.True(t, matrix.Equal(w, again))

	// empty dataset is a no-op
	require.NoError(t, n.Train(nil, nil, 3))
}

func TestPredict_LeavesPendingPass(t *testing.T) {
	t.Parallel()

	n := MustNetwork(t, []int{3, 2, 1}, nn.Tanh, 0.1, nn.WithSeed(9))

	out, err := n.FeedForward(matrix.NewColumn([]float64{1, 1, 1}))
	require.NoError(t, err)

	p, err := n.Predict([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, out.Data(), p)

	_, err = n.Predict([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.NoError(t, n.BackPropagate(matrix.NewColumn([]float64{0})))
}

func TestLoss(t *testing.T) {
	t.Parallel()

	// zero parameters with sigmoid: every output is exactly 0.5
	n := MustNetwork(t, []int{3, 1}, nn.Sigmoid, 0.1, nn.WithRand(constSource(0)))

	loss, err := n.Loss(toyInputs, toyTargets)
	require.NoError(t, err)
	require.InDelta(t, 0.25, loss, 1e-15)

	loss, err = n.Loss(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, loss)

	_, err = n.Loss(toyInputs, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
