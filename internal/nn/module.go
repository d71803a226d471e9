// Package nn implements neural network building blocks on the scalar autodiff engine.
//
// This package provides:
//   - Parameter: trainable scalar with an accumulated gradient
//   - Binding: a parameter set bound into one autodiff.Graph
//   - Neuron, Layer, MLP: dense units with relu, tanh, sigmoid or linear activation
//   - GraphModel: neurons and layers wired by a DAG description (YAML)
//   - MSELoss and BatchGradients for training
//
// Parameters live outside any graph. Each forward pass binds them into a
// fresh Graph, so independent samples can be differentiated concurrently.
package nn

import "github.com/born-ml/smallgrad/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs within a bound graph
//   - Parameters: Return all trainable parameters
type Module interface {
	// Forward computes the module outputs for the given inputs.
	//
	// The inputs and the parameters bound in b must belong to the same graph.
	Forward(b *Binding, inputs []autodiff.Value) ([]autodiff.Value, error)

	// Parameters returns all trainable parameters of this module in a
	// stable order.
	Parameters() []*Parameter
}
