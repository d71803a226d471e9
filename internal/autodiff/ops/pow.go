package ops

import "math"

// powRule implements z = x^p for the constant exponent carried by the Operator.
//
// Local derivative:
//   - ∂z/∂x = p * x^(p-1)
//
// The exponent is not a graph node, so no gradient flows to it.
// 0 raised to a negative power yields +Inf, a negative base with a
// fractional exponent yields NaN.
type powRule struct{}

func (powRule) name() string { return "pow" }
func (powRule) arity() int   { return 1 }

func (powRule) forward(op Operator, x []float64) float64 {
	return math.Pow(x[0], op.exponent)
}

func (powRule) local(op Operator, x []float64, _ float64, d []float64) {
	p := op.exponent
	d[0] = p * math.Pow(x[0], p-1)
}
