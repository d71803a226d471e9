// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"
	"math/rand"

	"github.com/born-ml/smallgrad/autodiff"
	"github.com/born-ml/smallgrad/internal/nn"
	"github.com/born-ml/smallgrad/internal/parallel"
)

// Module interface defines the common interface for all models.
type Module = nn.Module

// Parameter represents a trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// Binding maps parameters to leaves of one graph.
type Binding = nn.Binding

// Bind creates gradient-requiring leaves for params in g.
func Bind(g *autodiff.Graph, params []*Parameter) *Binding {
	return nn.Bind(g, params)
}

// Activations

// Activation selects the non-linearity applied by a neuron.
type Activation = nn.Activation

// Supported activations.
const (
	Linear  = nn.Linear
	ReLU    = nn.ReLU
	Tanh    = nn.Tanh
	Sigmoid = nn.Sigmoid
)

// Layers

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with normally distributed weights.
func NewNeuron(name string, inputs int, act Activation, noBias bool, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(name, inputs, act, noBias, rng)
}

// Layer is a set of neurons sharing their inputs.
type Layer = nn.Layer

// NewLayer creates a layer of outputs neurons.
func NewLayer(name string, inputs, outputs int, act Activation, noBias bool, rng *rand.Rand) (*Layer, error) {
	return nn.NewLayer(name, inputs, outputs, act, noBias, rng)
}

// MLP is a stack of fully connected layers.
type MLP = nn.MLP

// NewMLP creates a multi-layer perceptron.
//
// Example:
//
//	model, err := nn.NewMLP([]int{3, 4, 4, 1}, nn.ReLU, nil)
func NewMLP(sizes []int, act Activation, rng *rand.Rand) (*MLP, error) {
	return nn.NewMLP(sizes, act, rng)
}

// Loss Functions

// MSELoss returns the mean squared error between predictions and targets.
func MSELoss(predictions []autodiff.Value, targets []float64) (autodiff.Value, error) {
	return nn.MSELoss(predictions, targets)
}

// Graph models

// GraphSpec describes a GraphModel and optionally its training samples.
type GraphSpec = nn.GraphSpec

// Metadata holds model io widths and training hyperparameters.
type Metadata = nn.Metadata

// NodeSpec describes one node of a GraphSpec.
type NodeSpec = nn.NodeSpec

// Edge connects two nodes of a GraphSpec.
type Edge = nn.Edge

// GraphModel evaluates a DAG of neurons and layers.
type GraphModel = nn.GraphModel

// LoadGraphSpec decodes, defaults and validates a YAML GraphSpec.
func LoadGraphSpec(r io.Reader) (*GraphSpec, error) {
	return nn.LoadGraphSpec(r)
}

// LoadGraphSpecFile reads a GraphSpec from a YAML file.
func LoadGraphSpecFile(path string) (*GraphSpec, error) {
	return nn.LoadGraphSpecFile(path)
}

// NewGraphModel builds the model described by spec.
func NewGraphModel(spec *GraphSpec, rng *rand.Rand) (*GraphModel, error) {
	return nn.NewGraphModel(spec, rng)
}

// Batches

// Sample is one training example.
type Sample = nn.Sample

// Predict evaluates model on one input.
func Predict(model Module, input []float64) ([]float64, error) {
	return nn.Predict(model, input)
}

// BatchGradients computes the mean loss over samples and accumulates its
// gradient into the model parameters, spreading samples over workers goroutines.
func BatchGradients(model Module, samples []Sample, workers int) (float64, error) {
	cfg := parallel.DefaultConfig()
	if workers > 0 {
		cfg.NumWorkers = workers
		cfg.Enabled = workers > 1
	}
	cfg.MinChunkSize = 1
	return nn.BatchGradients(model, samples, cfg)
}
