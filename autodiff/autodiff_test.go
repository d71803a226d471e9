// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/smallgrad/autodiff"
)

func TestPublicAPI_Builder(t *testing.T) {
	g := autodiff.NewGraph()
	a, b := g.Var(1), g.Var(2)

	out := a.Exp().Div(b)
	out.Backward()

	if math.Abs(out.Data()-1.3591409142295225) > 1e-12 {
		t.Errorf("out = %v", out.Data())
	}
	if math.Abs(a.Grad()-1.3591409142295225) > 1e-12 {
		t.Errorf("da = %v", a.Grad())
	}
	if math.Abs(b.Grad()+0.6795704571147613) > 1e-12 {
		t.Errorf("db = %v", b.Grad())
	}
}

func TestPublicAPI_LowLevel(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.CreateLeaf(3, true)

	y, err := g.CreateOp(autodiff.Pow(2), x)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Backward(y); err != nil {
		t.Fatal(err)
	}
	if got := g.GradientOf(x); got != 6 {
		t.Errorf("GradientOf(x) = %v, want 6", got)
	}

	_, err = g.CreateOp(autodiff.Add, x)
	var arity *autodiff.ArityError
	if !errors.As(err, &arity) || !errors.Is(err, autodiff.ErrArity) {
		t.Errorf("CreateOp(Add, x) error = %v, want ArityError", err)
	}

	_, err = g.CreateOp(autodiff.Operator{}, x)
	if !errors.Is(err, autodiff.ErrUnknownOperator) {
		t.Errorf("CreateOp(zero, x) error = %v, want ErrUnknownOperator", err)
	}
}

func TestPublicAPI_CheckGradients(t *testing.T) {
	build := func(_ *autodiff.Graph, in []autodiff.Value) autodiff.Value {
		return autodiff.Sum(in[0].Mul(in[1]).Tanh(), in[1].ReLU(), in[0].Pow(3))
	}
	if err := autodiff.CheckGradients(build, []float64{0.5, -1.5}, autodiff.GradCheckConfig{}); err != nil {
		t.Error(err)
	}
}
