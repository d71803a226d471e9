package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/smallgrad/internal/autodiff"
)

// MLP is a stack of fully connected layers.
//
// Hidden layers use the given activation; the last layer is linear.
//
// Example:
//
//	model, _ := nn.NewMLP([]int{2, 8, 1}, nn.Tanh, rng) // 2 inputs, 8 hidden, 1 output
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with len(sizes)-1 layers; sizes[0] is the input width.
func NewMLP(sizes []int, act Activation, rng *rand.Rand) (*MLP, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("mlp: need at least input and output sizes, got %v", sizes)
	}
	if err := act.Validate(); err != nil {
		return nil, fmt.Errorf("mlp: %w", err)
	}

	m := &MLP{layers: make([]*Layer, len(sizes)-1)}
	for i := range m.layers {
		layerAct := act
		if i == len(m.layers)-1 {
			layerAct = Linear
		}
		l, err := NewLayer(fmt.Sprintf("layer%d", i), sizes[i], sizes[i+1], layerAct, false, rng)
		if err != nil {
			return nil, fmt.Errorf("mlp: %w", err)
		}
		m.layers[i] = l
	}
	return m, nil
}

// Forward runs the inputs through every layer.
func (m *MLP) Forward(b *Binding, inputs []autodiff.Value) ([]autodiff.Value, error) {
	x := inputs
	for i, l := range m.layers {
		out, err := l.Forward(b, x)
		if err != nil {
			return nil, fmt.Errorf("mlp layer %d: %w", i, err)
		}
		x = out
	}
	return x, nil
}

// Parameters returns the parameters of every layer in order.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
