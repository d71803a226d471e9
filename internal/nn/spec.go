package nn

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeKind identifies the role of a node in a GraphSpec.
type NodeKind string

// Node kinds.
const (
	NodeInput  NodeKind = "input"  // Width consecutive model inputs
	NodeNeuron NodeKind = "neuron" // A single neuron (width 1)
	NodeLayer  NodeKind = "layer"  // Width neurons sharing their inputs
)

// Loss function names accepted in Metadata.
const (
	LossMSE            = "mse"
	LossMeanSquaredErr = "meanSquaredError"
)

// Metadata describes the model externally: its io widths and training
// hyperparameters.
type Metadata struct {
	InputWidth   int        `yaml:"input_width"`
	OutputWidth  int        `yaml:"output_width"`
	LearningRate float64    `yaml:"learning_rate"`
	Momentum     float64    `yaml:"momentum"`
	Optimizer    string     `yaml:"optimizer"` // sgd (default) or adam
	Activation   Activation `yaml:"activation"`
	Loss         string     `yaml:"loss"`
	Epochs       int        `yaml:"epochs"`
	Seed         int64      `yaml:"seed"`
}

// NodeSpec declares one node of the model DAG.
type NodeSpec struct {
	Name       string     `yaml:"name"`
	Kind       NodeKind   `yaml:"kind"`
	Width      int        `yaml:"width"`      // Inputs and layers (default: 1)
	Activation Activation `yaml:"activation"` // Default: Metadata.Activation
	NoBias     bool       `yaml:"no_bias"`
}

// Edge feeds the outputs of From into To.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// GraphSpec is the YAML description of a GraphModel and, optionally, the
// samples to train it on.
//
// Example:
//
//	metadata:
//	  input_width: 2
//	  output_width: 1
//	  activation: tanh
//	nodes:
//	  - {name: x, kind: input, width: 2}
//	  - {name: hidden, kind: layer, width: 4}
//	  - {name: out, kind: neuron, activation: linear}
//	edges:
//	  - {from: x, to: hidden}
//	  - {from: hidden, to: out}
type GraphSpec struct {
	Metadata Metadata   `yaml:"metadata"`
	Nodes    []NodeSpec `yaml:"nodes"`
	Edges    []Edge     `yaml:"edges"`
	Samples  []Sample   `yaml:"samples"`
}

// LoadGraphSpec decodes a GraphSpec from YAML, fills defaults and
// validates it. Unknown fields are rejected.
func LoadGraphSpec(r io.Reader) (*GraphSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec GraphSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("graph spec: decode: %w", err)
	}

	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadGraphSpecFile reads a GraphSpec from a YAML file.
func LoadGraphSpecFile(path string) (*GraphSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph spec: %w", err)
	}
	defer f.Close()

	return LoadGraphSpec(f)
}

// ApplyDefaults fills zero-valued settings:
//   - LearningRate: 0.01
//   - Epochs: 100
//   - Loss: mse
//   - Activation: relu
//   - node Width: 1, node Activation: Metadata.Activation
func (s *GraphSpec) ApplyDefaults() {
	m := &s.Metadata
	if m.LearningRate == 0 {
		m.LearningRate = 0.01
	}
	if m.Epochs == 0 {
		m.Epochs = 100
	}
	if m.Loss == "" {
		m.Loss = LossMSE
	}
	if m.Activation == "" {
		m.Activation = ReLU
	}
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.Width == 0 {
			n.Width = 1
		}
		if n.Activation == "" {
			n.Activation = m.Activation
		}
	}
}

// Validate checks settings that do not require building the model.
// DAG structure is checked by NewGraphModel.
func (s *GraphSpec) Validate() error {
	m := s.Metadata
	if m.Loss != LossMSE && m.Loss != LossMeanSquaredErr {
		return fmt.Errorf("graph spec: %w: %q", ErrUnsupportedLoss, m.Loss)
	}
	if err := m.Activation.Validate(); err != nil {
		return fmt.Errorf("graph spec: %w", err)
	}
	for _, n := range s.Nodes {
		if err := n.Activation.Validate(); err != nil {
			return fmt.Errorf("graph spec: node %q: %w", n.Name, err)
		}
		if err := n.validateWidth(); err != nil {
			return fmt.Errorf("graph spec: %w", err)
		}
	}
	for i, smp := range s.Samples {
		if m.InputWidth > 0 && len(smp.Input) != m.InputWidth {
			return fmt.Errorf("graph spec: sample %d: %w: got %d, want %d", i, ErrInputWidth, len(smp.Input), m.InputWidth)
		}
		if m.OutputWidth > 0 && len(smp.Target) != m.OutputWidth {
			return fmt.Errorf("graph spec: sample %d: %w: got %d, want %d", i, ErrOutputWidth, len(smp.Target), m.OutputWidth)
		}
	}
	return nil
}

// validateWidth rejects negative widths. Zero means the default of 1.
func (n NodeSpec) validateWidth() error {
	if n.Width >= 0 {
		return nil
	}
	if n.Kind == NodeInput {
		return fmt.Errorf("node %q: %w: width %d", n.Name, ErrInputWidth, n.Width)
	}
	return fmt.Errorf("node %q: %w: width %d", n.Name, ErrLayerWidth, n.Width)
}
