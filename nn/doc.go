// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network building blocks on top of
// package autodiff.
//
// # Overview
//
// This package contains:
//   - Neurons, layers and multi-layer perceptrons
//   - Activations: Linear, ReLU, Tanh, Sigmoid
//   - Loss functions: MSELoss
//   - GraphModel: a DAG of neurons and layers described in YAML
//   - BatchGradients: parallel per-sample backward passes
//
// # Basic Usage
//
//	import "github.com/born-ml/smallgrad/nn"
//
//	func main() {
//	    model, _ := nn.NewMLP([]int{2, 4, 1}, nn.Tanh, nil)
//
//	    // Forward pass in a fresh graph
//	    out, _ := nn.Predict(model, []float64{0.5, -1})
//	}
//
// # Parameters and graphs
//
// Parameters live outside any graph. Each forward pass binds them into a
// Graph as gradient-requiring leaves; after Backward the Binding copies the
// leaf gradients back:
//
//	g := autodiff.NewGraph()
//	b := nn.Bind(g, model.Parameters())
//	out, _ := model.Forward(b, b.Inputs(x))
//	loss, _ := nn.MSELoss(out, y)
//	loss.Backward()
//	b.Accumulate()
//
// # Graph specs
//
// A GraphSpec names input, neuron and layer nodes and the edges between
// them:
//
//	metadata:
//	  input_width: 2
//	  activation: tanh
//	nodes:
//	  - {name: x, kind: input, width: 2}
//	  - {name: h, kind: layer, width: 4}
//	  - {name: y, kind: neuron, activation: linear}
//	edges:
//	  - {from: x, to: h}
//	  - {from: h, to: y}
package nn
