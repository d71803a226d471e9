// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradients accumulated on nn.Parameter values, so a
// training step is:
//
//	optimizer.ZeroGrad()
//	loss, err := nn.BatchGradients(model, samples, cfg)
//	optimizer.Step()
package optim

import (
	"fmt"

	"github.com/born-ml/smallgrad/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies the accumulated parameter gradients.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// Kind names an optimizer in configuration files.
type Kind string

// Optimizer kinds.
const (
	KindSGD  Kind = "sgd"
	KindAdam Kind = "adam"
)

// New creates the optimizer named by kind. Momentum applies to SGD only.
// The empty kind selects SGD.
func New(kind Kind, params []*nn.Parameter, lr, momentum float64) (Optimizer, error) {
	switch kind {
	case "", KindSGD:
		return NewSGD(params, SGDConfig{LR: lr, Momentum: momentum}), nil
	case KindAdam:
		return NewAdam(params, AdamConfig{LR: lr}), nil
	}
	return nil, fmt.Errorf("optim: unknown optimizer %q", string(kind))
}

func zeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
