package optim

import "github.com/born-ml/smallgrad/internal/nn"

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad := p.Grad()
		if s.momentum == 0 {
			p.SetData(p.Data() - s.lr*grad)
			continue
		}

		v := s.momentum*s.velocities[p] + grad
		s.velocities[p] = v
		p.SetData(p.Data() - s.lr*v)
	}
}

// ZeroGrad clears the gradients of all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR sets the learning rate (for scheduling).
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
