package ops

// mulRule implements z = x * y.
//
// Local derivatives:
//   - ∂z/∂x = y
//   - ∂z/∂y = x
type mulRule struct{}

func (mulRule) name() string { return "mul" }
func (mulRule) arity() int   { return 2 }

func (mulRule) forward(_ Operator, x []float64) float64 {
	return x[0] * x[1]
}

func (mulRule) local(_ Operator, x []float64, _ float64, d []float64) {
	d[0] = x[1]
	d[1] = x[0]
}
