package nn

import (
	"fmt"

	"github.com/born-ml/smallgrad/internal/autodiff"
)

// Parameter represents a trainable scalar in a neural network.
//
// The gradient accumulates across AddGrad calls until ZeroGrad.
type Parameter struct {
	name string
	data float64
	grad float64
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{name: name, data: data}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.data
}

// SetData overwrites the parameter value.
func (p *Parameter) SetData(v float64) {
	p.data = v
}

// Grad returns the accumulated gradient.
func (p *Parameter) Grad() float64 {
	return p.grad
}

// AddGrad adds g to the accumulated gradient.
func (p *Parameter) AddGrad(g float64) {
	p.grad += g
}

// ZeroGrad clears the accumulated gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = 0
}

// String formats the parameter like "w0=0.5 (grad 0.1)".
func (p *Parameter) String() string {
	return fmt.Sprintf("%s=%g (grad %g)", p.name, p.data, p.grad)
}

// Binding holds the graph leaves created for a parameter set.
//
// Binding reads parameter values but never writes them, so several
// goroutines may bind the same parameters into their own graphs.
type Binding struct {
	g      *autodiff.Graph
	params []*Parameter
	leaves map[*Parameter]autodiff.Value
}

// Bind creates one leaf requiring a gradient per parameter in g.
func Bind(g *autodiff.Graph, params []*Parameter) *Binding {
	b := &Binding{
		g:      g,
		params: params,
		leaves: make(map[*Parameter]autodiff.Value, len(params)),
	}
	for _, p := range params {
		b.leaves[p] = g.Var(p.data)
	}
	return b
}

// Graph returns the graph the parameters are bound to.
func (b *Binding) Graph() *autodiff.Graph {
	return b.g
}

// Value returns the leaf bound for p. It panics with ErrUnbound if p was
// not part of the bound set.
func (b *Binding) Value(p *Parameter) autodiff.Value {
	v, ok := b.leaves[p]
	if !ok {
		panic(fmt.Errorf("%s: %w", p.name, ErrUnbound))
	}
	return v
}

// Inputs creates constant leaves for the given input values.
func (b *Binding) Inputs(x []float64) []autodiff.Value {
	in := make([]autodiff.Value, len(x))
	for i, v := range x {
		in[i] = b.g.Const(v)
	}
	return in
}

// Gradients returns the gradient of each bound parameter after Backward,
// in the order the parameters were bound.
func (b *Binding) Gradients() []float64 {
	grads := make([]float64, len(b.params))
	for i, p := range b.params {
		grads[i] = b.leaves[p].Grad()
	}
	return grads
}

// Accumulate adds the bound gradients to the parameters.
func (b *Binding) Accumulate() {
	for _, p := range b.params {
		p.AddGrad(b.leaves[p].Grad())
	}
}
