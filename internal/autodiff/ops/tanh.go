package ops

import "math"

// tanhRule implements the hyperbolic tangent: z = tanh(x).
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// ∂z/∂x = 1 - z².
type tanhRule struct{}

func (tanhRule) name() string { return "tanh" }
func (tanhRule) arity() int   { return 1 }

func (tanhRule) forward(_ Operator, x []float64) float64 {
	return math.Tanh(x[0])
}

func (tanhRule) local(_ Operator, _ []float64, z float64, d []float64) {
	d[0] = 1 - z*z
}
