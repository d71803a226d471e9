package ops_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/smallgrad/internal/autodiff/ops"
)

// TestOperator_Forward tests the forward rule of every operator.
func TestOperator_Forward(t *testing.T) {
	tests := []struct {
		op   ops.Operator
		in   []float64
		want float64
	}{
		{ops.Add, []float64{3, 4}, 7},
		{ops.Sub, []float64{3, 4}, -1},
		{ops.Mul, []float64{3, 4}, 12},
		{ops.Div, []float64{3, 4}, 0.75},
		{ops.Neg, []float64{3}, -3},
		{ops.Pow(3), []float64{2}, 8},
		{ops.Pow(-1), []float64{4}, 0.25},
		{ops.Exp, []float64{0}, 1},
		{ops.Tanh, []float64{0}, 0},
		{ops.ReLU, []float64{-2}, 0},
		{ops.ReLU, []float64{2}, 2},
	}

	for _, tt := range tests {
		got, err := tt.op.Forward(tt.in)
		if err != nil {
			t.Fatalf("%s.Forward(%v): unexpected error %v", tt.op, tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s.Forward(%v) = %v, want %v", tt.op, tt.in, got, tt.want)
		}
	}
}

// TestOperator_Local tests the local-derivative rule of every operator.
func TestOperator_Local(t *testing.T) {
	tests := []struct {
		op   ops.Operator
		in   []float64
		want []float64
	}{
		{ops.Add, []float64{3, 4}, []float64{1, 1}},
		{ops.Sub, []float64{3, 4}, []float64{1, -1}},
		{ops.Mul, []float64{3, 4}, []float64{4, 3}},
		{ops.Div, []float64{3, 4}, []float64{0.25, -3.0 / 16}},
		{ops.Neg, []float64{3}, []float64{-1}},
		{ops.Pow(3), []float64{2}, []float64{12}},
		{ops.Pow(-3), []float64{2}, []float64{-3.0 / 16}},
		{ops.Exp, []float64{1}, []float64{math.E}},
		{ops.Tanh, []float64{0}, []float64{1}},
		{ops.ReLU, []float64{2}, []float64{1}},
		{ops.ReLU, []float64{-2}, []float64{0}},
		{ops.ReLU, []float64{0}, []float64{0}},
	}

	for _, tt := range tests {
		z, err := tt.op.Forward(tt.in)
		if err != nil {
			t.Fatalf("%s.Forward(%v): unexpected error %v", tt.op, tt.in, err)
		}
		d := make([]float64, len(tt.in))
		if err := tt.op.Local(tt.in, z, d); err != nil {
			t.Fatalf("%s.Local(%v): unexpected error %v", tt.op, tt.in, err)
		}
		for i := range d {
			if math.Abs(d[i]-tt.want[i]) > 1e-12 {
				t.Errorf("%s.Local(%v)[%d] = %v, want %v", tt.op, tt.in, i, d[i], tt.want[i])
			}
		}
	}
}

// TestOperator_Arity tests operand-count validation.
func TestOperator_Arity(t *testing.T) {
	_, err := ops.Mul.Forward([]float64{1})
	var arityErr *ops.ArityError
	if !errors.As(err, &arityErr) {
		t.Fatalf("Mul with 1 operand: got %v, want *ArityError", err)
	}
	if arityErr.Want != 2 || arityErr.Got != 1 {
		t.Errorf("ArityError = %+v, want Want=2 Got=1", arityErr)
	}
	if !errors.Is(err, ops.ErrArity) {
		t.Error("ArityError should unwrap to ErrArity")
	}

	if _, err := ops.Exp.Forward([]float64{1, 2}); !errors.Is(err, ops.ErrArity) {
		t.Errorf("Exp with 2 operands: got %v, want ErrArity", err)
	}

	if n, _ := ops.Pow(2).Arity(); n != 1 {
		t.Errorf("Pow arity = %d, want 1", n)
	}
}

// TestOperator_Unknown tests that the zero Operator is rejected.
func TestOperator_Unknown(t *testing.T) {
	var op ops.Operator

	_, err := op.Forward([]float64{1})
	if !errors.Is(err, ops.ErrUnknownOperator) {
		t.Fatalf("zero Operator: got %v, want ErrUnknownOperator", err)
	}
	if _, err := op.Arity(); err == nil {
		t.Error("Arity of zero Operator should fail")
	}
	if op.Kind() != ops.KindInvalid {
		t.Errorf("Kind() = %v, want KindInvalid", op.Kind())
	}
}

// TestOperator_String tests operator names.
func TestOperator_String(t *testing.T) {
	if got := ops.Mul.String(); got != "mul" {
		t.Errorf("Mul.String() = %q, want %q", got, "mul")
	}
	if got := ops.Pow(-3).String(); got != "pow(-3)" {
		t.Errorf("Pow(-3).String() = %q, want %q", got, "pow(-3)")
	}
	if got := ops.Pow(0.5).Exponent(); got != 0.5 {
		t.Errorf("Pow(0.5).Exponent() = %v, want 0.5", got)
	}
}

// TestOperator_IEEE tests that degenerate inputs propagate Inf/NaN without error.
func TestOperator_IEEE(t *testing.T) {
	z, err := ops.Div.Forward([]float64{1, 0})
	if err != nil {
		t.Fatalf("Div by zero should not error: %v", err)
	}
	if !math.IsInf(z, 1) {
		t.Errorf("1/0 = %v, want +Inf", z)
	}

	z, _ = ops.Pow(-1).Forward([]float64{0})
	if !math.IsInf(z, 1) {
		t.Errorf("0^-1 = %v, want +Inf", z)
	}

	z, _ = ops.Pow(0.5).Forward([]float64{-1})
	if !math.IsNaN(z) {
		t.Errorf("(-1)^0.5 = %v, want NaN", z)
	}

	d := make([]float64, 2)
	if err := ops.Div.Local([]float64{0, 0}, math.NaN(), d); err != nil {
		t.Fatalf("Div.Local: %v", err)
	}
	if !math.IsInf(d[0], 1) || !math.IsNaN(d[1]) {
		t.Errorf("Div.Local(0, 0) = %v, want [+Inf NaN]", d)
	}
}

// TestOperator_LocalBuffer tests that a short derivative buffer is rejected.
func TestOperator_LocalBuffer(t *testing.T) {
	if err := ops.Mul.Local([]float64{1, 2}, 2, make([]float64, 1)); err == nil {
		t.Error("Local with short buffer should fail")
	}
}
