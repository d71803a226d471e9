package ops

// reluRule implements the rectified linear unit: z = max(0, x).
//
// Local derivative:
//   - ∂z/∂x = 1 if x > 0, else 0
//
// The kink at x = 0 takes derivative 0. NaN input compares false and so
// yields z = 0 and a zero derivative.
type reluRule struct{}

func (reluRule) name() string { return "relu" }
func (reluRule) arity() int   { return 1 }

func (reluRule) forward(_ Operator, x []float64) float64 {
	if x[0] > 0 {
		return x[0]
	}
	return 0
}

func (reluRule) local(_ Operator, x []float64, _ float64, d []float64) {
	if x[0] > 0 {
		d[0] = 1
		return
	}
	d[0] = 0
}
