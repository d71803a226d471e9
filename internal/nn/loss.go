package nn

import (
	"fmt"

	"github.com/born-ml/smallgrad/internal/autodiff"
)

// MSELoss computes the Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Targets enter the graph as constants. It returns ErrOutputWidth if the
// lengths differ or are zero.
func MSELoss(predictions []autodiff.Value, targets []float64) (autodiff.Value, error) {
	if len(predictions) != len(targets) || len(predictions) == 0 {
		return autodiff.Value{}, fmt.Errorf("mse: %w: %d predictions, %d targets", ErrOutputWidth, len(predictions), len(targets))
	}

	terms := make([]autodiff.Value, len(predictions))
	for i, p := range predictions {
		terms[i] = p.SubScalar(targets[i]).Pow(2)
	}
	return autodiff.Sum(terms...).DivScalar(float64(len(terms))), nil
}
