// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// A Graph owns every node of an expression. Nodes are evaluated eagerly when
// they are created; Backward then propagates the gradient of one output to
// every node it depends on in a single reverse sweep.
//
// Example:
//
//	import "github.com/born-ml/smallgrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a, b, c := g.Var(2), g.Var(3), g.Var(4)
//
//	    out := a.Add(b).Mul(c) // 20
//	    out.Backward()
//
//	    fmt.Println(a.Grad(), b.Grad(), c.Grad()) // 4 4 5
//	}
//
// The low-level API works with node references and explicit operators:
//
//	x := g.CreateLeaf(1, true)
//	y, err := g.CreateOp(autodiff.Exp, x)
package autodiff

import (
	"github.com/born-ml/smallgrad/internal/autodiff"
	"github.com/born-ml/smallgrad/internal/autodiff/ops"
)

// Graph owns the nodes of one expression.
type Graph = autodiff.Graph

// NodeRef identifies a node inside its Graph.
type NodeRef = autodiff.NodeRef

// Value is a node handle with arithmetic methods.
type Value = autodiff.Value

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// NewGraphWithCapacity creates an empty graph with room for n nodes.
func NewGraphWithCapacity(n int) *Graph {
	return autodiff.NewGraphWithCapacity(n)
}

// Sum folds values with addition. All values must belong to one graph.
func Sum(values ...Value) Value {
	return autodiff.Sum(values...)
}

// Operators

// Operator is an operation kind accepted by Graph.CreateOp.
type Operator = ops.Operator

// Built-in operators.
var (
	Add  = ops.Add
	Sub  = ops.Sub
	Mul  = ops.Mul
	Div  = ops.Div
	Neg  = ops.Neg
	Exp  = ops.Exp
	Tanh = ops.Tanh
	ReLU = ops.ReLU
)

// Pow returns the operator raising its operand to the constant power p.
func Pow(p float64) Operator {
	return ops.Pow(p)
}

// Errors

// Sentinel errors.
var (
	ErrInvalidNode      = autodiff.ErrInvalidNode
	ErrForeignNode      = autodiff.ErrForeignNode
	ErrArity            = autodiff.ErrArity
	ErrUnknownOperator  = autodiff.ErrUnknownOperator
	ErrGradientMismatch = autodiff.ErrGradientMismatch
)

// ArityError reports an operand count that does not match the operator.
type ArityError = autodiff.ArityError

// UnknownOperatorError reports an operator outside the supported set.
type UnknownOperatorError = autodiff.UnknownOperatorError

// Gradient checking

// BuildFunc builds an expression from input leaves.
type BuildFunc = autodiff.BuildFunc

// GradCheckConfig configures CheckGradients.
type GradCheckConfig = autodiff.GradCheckConfig

// GradientMismatchError reports the first input whose gradients disagree.
type GradientMismatchError = autodiff.GradientMismatchError

// Gradients evaluates build at the given inputs and returns the output and
// the gradient of each input.
func Gradients(build BuildFunc, at []float64) (float64, []float64) {
	return autodiff.Gradients(build, at)
}

// CheckGradients compares analytic gradients with central finite differences.
//
// Example:
//
//	err := autodiff.CheckGradients(func(_ *autodiff.Graph, in []autodiff.Value) autodiff.Value {
//	    return in[0].Mul(in[1]).Tanh()
//	}, []float64{0.5, -1.5}, autodiff.GradCheckConfig{})
func CheckGradients(build BuildFunc, at []float64, cfg GradCheckConfig) error {
	return autodiff.CheckGradients(build, at, cfg)
}

// NumericalGradient estimates ∂f/∂x[i] with a central difference.
func NumericalGradient(f func([]float64) float64, x []float64, i int, eps float64) float64 {
	return autodiff.NumericalGradient(f, x, i, eps)
}
