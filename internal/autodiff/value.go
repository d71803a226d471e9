package autodiff

import (
	"fmt"

	"github.com/born-ml/smallgrad/internal/autodiff/ops"
)

// Value is a handle to a node of a Graph.
//
// Value methods build new nodes through Graph.CreateOp, so expressions can
// be written as chained calls:
//
//	g := autodiff.NewGraph()
//	x := g.Var(1)
//	y := x.Exp().DivScalar(2)
//
// Combining Values from different graphs panics with ErrForeignNode.
// The zero Value is invalid.
type Value struct {
	g   *Graph
	ref NodeRef
}

// Var creates a leaf that requires a gradient.
func (g *Graph) Var(x float64) Value {
	return Value{g: g, ref: g.CreateLeaf(x, true)}
}

// Const creates a leaf that does not require a gradient.
func (g *Graph) Const(x float64) Value {
	return Value{g: g, ref: g.CreateLeaf(x, false)}
}

// At returns the Value handle for an existing node.
func (g *Graph) At(ref NodeRef) Value {
	g.at(ref)
	return Value{g: g, ref: ref}
}

// Ref returns the node this Value refers to.
func (v Value) Ref() NodeRef { return v.ref }

// Graph returns the graph owning the node.
func (v Value) Graph() *Graph { return v.g }

// Data returns the cached forward value.
func (v Value) Data() float64 { return v.g.Value(v.ref) }

// Grad returns the gradient accumulated by the last Backward.
func (v Value) Grad() float64 { return v.g.GradientOf(v.ref) }

// RequiresGrad reports whether the node depends on a Var.
func (v Value) RequiresGrad() bool { return v.g.RequiresGrad(v.ref) }

// Backward differentiates v with respect to every node it depends on.
func (v Value) Backward() {
	if err := v.g.Backward(v.ref); err != nil {
		panic(err)
	}
}

// String formats the value like "Value(data=20, grad=1)".
func (v Value) String() string {
	if v.g == nil {
		return "Value(<nil>)"
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.Data(), v.Grad())
}

// Add returns v + o.
func (v Value) Add(o Value) Value { return v.apply(ops.Add, o) }

// Sub returns v - o.
func (v Value) Sub(o Value) Value { return v.apply(ops.Sub, o) }

// Mul returns v * o.
func (v Value) Mul(o Value) Value { return v.apply(ops.Mul, o) }

// Div returns v / o.
func (v Value) Div(o Value) Value { return v.apply(ops.Div, o) }

// Neg returns -v.
func (v Value) Neg() Value { return v.apply(ops.Neg) }

// Pow returns v^p for the constant exponent p.
func (v Value) Pow(p float64) Value { return v.apply(ops.Pow(p)) }

// Inv returns 1/v, expressed as v^-1.
func (v Value) Inv() Value { return v.Pow(-1) }

// Exp returns e^v.
func (v Value) Exp() Value { return v.apply(ops.Exp) }

// Tanh returns tanh(v).
func (v Value) Tanh() Value { return v.apply(ops.Tanh) }

// ReLU returns max(0, v).
func (v Value) ReLU() Value { return v.apply(ops.ReLU) }

// Sigmoid returns 1 / (1 + e^-v), composed from neg, exp, add and pow.
func (v Value) Sigmoid() Value {
	return v.Neg().Exp().AddScalar(1).Inv()
}

// AddScalar returns v + x, with x as a constant leaf.
func (v Value) AddScalar(x float64) Value { return v.Add(v.g.Const(x)) }

// SubScalar returns v - x, with x as a constant leaf.
func (v Value) SubScalar(x float64) Value { return v.Sub(v.g.Const(x)) }

// MulScalar returns v * x, with x as a constant leaf.
func (v Value) MulScalar(x float64) Value { return v.Mul(v.g.Const(x)) }

// DivScalar returns v / x, with x as a constant leaf.
func (v Value) DivScalar(x float64) Value { return v.Div(v.g.Const(x)) }

// Sum returns the sum of values, folded left to right.
// It panics if values is empty.
func Sum(values ...Value) Value {
	if len(values) == 0 {
		panic("autodiff: Sum of no values")
	}
	out := values[0]
	for _, v := range values[1:] {
		out = out.Add(v)
	}
	return out
}

func (v Value) apply(op ops.Operator, others ...Value) Value {
	if v.g == nil {
		panic(fmt.Errorf("%s: %w", op, ErrInvalidNode))
	}
	refs := make([]NodeRef, 0, 1+len(others))
	refs = append(refs, v.ref)
	for _, o := range others {
		if o.g != v.g {
			panic(fmt.Errorf("%s: %w", op, ErrForeignNode))
		}
		refs = append(refs, o.ref)
	}

	ref, err := v.g.CreateOp(op, refs...)
	if err != nil {
		panic(err)
	}
	return Value{g: v.g, ref: ref}
}
