package ops

// negRule implements z = -x.
type negRule struct{}

func (negRule) name() string { return "neg" }
func (negRule) arity() int   { return 1 }

func (negRule) forward(_ Operator, x []float64) float64 {
	return -x[0]
}

func (negRule) local(_ Operator, _ []float64, _ float64, d []float64) {
	d[0] = -1
}
