// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for scalar parameters.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	model, _ := nn.NewMLP([]int{2, 4, 1}, nn.Tanh, nil)
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
//
//	for epoch := 0; epoch < 100; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss, _ := nn.BatchGradients(model, samples, 0)
//	    optimizer.Step()
//	}
package optim
