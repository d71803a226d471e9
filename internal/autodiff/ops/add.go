package ops

// addRule implements z = x + y.
//
// Local derivatives:
//   - ∂z/∂x = 1
//   - ∂z/∂y = 1
type addRule struct{}

func (addRule) name() string { return "add" }
func (addRule) arity() int   { return 2 }

func (addRule) forward(_ Operator, x []float64) float64 {
	return x[0] + x[1]
}

func (addRule) local(_ Operator, _ []float64, _ float64, d []float64) {
	d[0] = 1
	d[1] = 1
}
