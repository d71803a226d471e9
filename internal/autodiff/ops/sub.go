package ops

// subRule implements z = x - y.
//
// Local derivatives:
//   - ∂z/∂x = 1
//   - ∂z/∂y = -1
type subRule struct{}

func (subRule) name() string { return "sub" }
func (subRule) arity() int   { return 2 }

func (subRule) forward(_ Operator, x []float64) float64 {
	return x[0] - x[1]
}

func (subRule) local(_ Operator, _ []float64, _ float64, d []float64) {
	d[0] = 1
	d[1] = -1
}
