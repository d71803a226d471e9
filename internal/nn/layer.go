package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/smallgrad/internal/autodiff"
)

// Layer is a row of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of outputs neurons, each reading inputs values.
// It returns ErrLayerWidth if outputs < 1.
func NewLayer(name string, inputs, outputs int, act Activation, noBias bool, rng *rand.Rand) (*Layer, error) {
	if outputs < 1 {
		return nil, fmt.Errorf("layer %s: %w (got %d)", name, ErrLayerWidth, outputs)
	}

	l := &Layer{neurons: make([]*Neuron, outputs)}
	for i := range l.neurons {
		l.neurons[i] = NewNeuron(fmt.Sprintf("%s.n%d", name, i), inputs, act, noBias, rng)
	}
	return l, nil
}

// InputWidth returns the number of inputs each neuron consumes.
func (l *Layer) InputWidth() int {
	return l.neurons[0].InputWidth()
}

// OutputWidth returns the number of neurons.
func (l *Layer) OutputWidth() int {
	return len(l.neurons)
}

// Forward computes one output per neuron.
func (l *Layer) Forward(b *Binding, inputs []autodiff.Value) ([]autodiff.Value, error) {
	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		v, err := n.Forward(b, inputs)
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
