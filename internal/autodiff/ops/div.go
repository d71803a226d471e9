package ops

// divRule implements z = x / y.
//
// Local derivatives:
//   - ∂z/∂x = 1/y
//   - ∂z/∂y = -x/y²
//
// y = 0 yields ±Inf or NaN, propagated unchanged.
type divRule struct{}

func (divRule) name() string { return "div" }
func (divRule) arity() int   { return 2 }

func (divRule) forward(_ Operator, x []float64) float64 {
	return x[0] / x[1]
}

func (divRule) local(_ Operator, x []float64, _ float64, d []float64) {
	a, b := x[0], x[1]
	d[0] = 1 / b
	d[1] = -a / (b * b)
}
