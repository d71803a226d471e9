package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/smallgrad/internal/autodiff"
)

// Neuron computes act(Σ wᵢxᵢ + b).
//
// Weights and bias are drawn from N(0, 1). A neuron created with noBias has
// no bias parameter.
type Neuron struct {
	weights []*Parameter
	bias    *Parameter // nil when noBias
	act     Activation
}

// NewNeuron creates a neuron with the given input width.
//
// Parameters are named "<name>.w<i>" and "<name>.b".
func NewNeuron(name string, inputs int, act Activation, noBias bool, rng *rand.Rand) *Neuron {
	w0 := Randn(inputs+1, rng)

	n := &Neuron{
		weights: make([]*Parameter, inputs),
		act:     act,
	}
	for i := range n.weights {
		n.weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), w0[i])
	}
	if !noBias {
		n.bias = NewParameter(name+".b", w0[inputs])
	}
	return n
}

// InputWidth returns the number of inputs the neuron consumes.
func (n *Neuron) InputWidth() int {
	return len(n.weights)
}

// Activation returns the neuron's activation.
func (n *Neuron) Activation() Activation {
	return n.act
}

// Forward computes the neuron output.
// It returns ErrInputWidth if len(inputs) differs from the input width.
func (n *Neuron) Forward(b *Binding, inputs []autodiff.Value) (autodiff.Value, error) {
	if len(inputs) != len(n.weights) {
		return autodiff.Value{}, fmt.Errorf("neuron: %w: got %d, want %d", ErrInputWidth, len(inputs), len(n.weights))
	}

	terms := make([]autodiff.Value, 0, len(n.weights)+1)
	for i, w := range n.weights {
		terms = append(terms, inputs[i].Mul(b.Value(w)))
	}
	if n.bias != nil {
		terms = append(terms, b.Value(n.bias))
	}
	if len(terms) == 0 {
		// Zero-width neuron without bias.
		return n.act.Apply(b.Graph().Const(0)), nil
	}

	return n.act.Apply(autodiff.Sum(terms...)), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	if n.bias != nil {
		params = append(params, n.bias)
	}
	return params
}
