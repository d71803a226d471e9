package ops

import "math"

// expRule implements z = e^x.
//
// Local derivative:
//   - ∂z/∂x = e^x = z, so the cached output is reused
type expRule struct{}

func (expRule) name() string { return "exp" }
func (expRule) arity() int   { return 1 }

func (expRule) forward(_ Operator, x []float64) float64 {
	return math.Exp(x[0])
}

func (expRule) local(_ Operator, _ []float64, z float64, d []float64) {
	d[0] = z
}
