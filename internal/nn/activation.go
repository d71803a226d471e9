package nn

import (
	"fmt"

	"github.com/born-ml/smallgrad/internal/autodiff"
)

// Activation selects the non-linearity applied by a neuron.
type Activation string

// Supported activations.
const (
	Linear  Activation = "linear"
	ReLU    Activation = "relu"
	Tanh    Activation = "tanh"
	Sigmoid Activation = "sigmoid"
)

// Validate reports ErrActivation for unknown names. The empty Activation is
// valid and means Linear.
func (a Activation) Validate() error {
	switch a {
	case "", Linear, ReLU, Tanh, Sigmoid:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrActivation, string(a))
}

// Apply applies the activation to v.
func (a Activation) Apply(v autodiff.Value) autodiff.Value {
	switch a {
	case ReLU:
		return v.ReLU()
	case Tanh:
		return v.Tanh()
	case Sigmoid:
		return v.Sigmoid()
	default:
		return v
	}
}
