package nn

import (
	"fmt"
	"math"
)

// Activation selects the elementwise nonlinearity of a Network.
// The set is closed; each variant resolves to a pair of pure functions.
type Activation int

const (
	// Sigmoid squashes to (0, 1): 1/(1+e^-x).
	Sigmoid Activation = iota
	// ReLU keeps positives and zeroes negatives.
	ReLU
	// Tanh squashes to (-1, 1).
	Tanh
	// Softplus is the smooth ReLU ln(1+e^x).
	Softplus
)

// softplusCutoff is where ln(1+e^x) equals x to double precision.
const softplusCutoff = 36.0

// activationFuncs pairs a function with its derivative.
// deriv takes the function's OUTPUT y = fn(x), since the network caches
// activated values rather than pre-activations.
type activationFuncs struct {
	fn    func(x float64) float64
	deriv func(y float64) float64
}

var activations = [...]activationFuncs{
	Sigmoid: {
		fn:    func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		deriv: func(y float64) float64 { return y * (1 - y) },
	},
	ReLU: {
		fn: func(x float64) float64 {
			if x > 0 {
				return x
			}
			return 0
		},
		deriv: func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return 0
		},
	},
	Tanh: {
		fn:    math.Tanh,
		deriv: func(y float64) float64 { return 1 - y*y },
	},
	Softplus: {
		fn: func(x float64) float64 {
			if x > softplusCutoff {
				return x
			}
			return math.Log1p(math.Exp(x))
		},
		// d/dx ln(1+e^x) = sigmoid(x) = 1 - e^-y
		deriv: func(y float64) float64 { return -math.Expm1(-y) },
	},
}

var activationNames = [...]string{
	Sigmoid:  "sigmoid",
	ReLU:     "relu",
	Tanh:     "tanh",
	Softplus: "softplus",
}

// Valid reports whether a names one of the defined variants.
func (a Activation) Valid() bool { return a >= 0 && int(a) < len(activations) }

// String returns the lowercase variant name.
func (a Activation) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Activation(%d)", int(a))
	}
	return activationNames[a]
}

// Func applies the activation to a pre-activation value x.
// Unknown variants return NaN.
func (a Activation) Func(x float64) float64 {
	if !a.Valid() {
		return math.NaN()
	}
	return activations[a].fn(x)
}

// Derivative returns d fn/dx expressed through the activated value y = Func(x).
// Unknown variants return NaN.
func (a Activation) Derivative(y float64) float64 {
	if !a.Valid() {
		return math.NaN()
	}
	return activations[a].deriv(y)
}

// funcs resolves the function pair once; callers check Valid first.
func (a Activation) funcs() activationFuncs { return activations[a] }
