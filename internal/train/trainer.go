// Package train runs the training loop: batch gradients, optimizer step.
package train

import (
	"fmt"
	"log"

	"github.com/born-ml/smallgrad/internal/nn"
	"github.com/born-ml/smallgrad/internal/optim"
	"github.com/born-ml/smallgrad/internal/parallel"
)

// Config holds configuration for a Trainer.
type Config struct {
	Epochs   int             // Full passes over the samples (default: 100)
	Parallel parallel.Config // Per-sample gradient fan-out
	Logger   *log.Logger     // Progress output; nil disables logging
	LogEvery int             // Log every n epochs (default: Epochs/10)
}

// Trainer fits a model to samples with full-batch gradient descent.
type Trainer struct {
	model     nn.Module
	optimizer optim.Optimizer
	cfg       Config
}

// NewTrainer creates a trainer.
func NewTrainer(model nn.Module, optimizer optim.Optimizer, cfg Config) *Trainer {
	if cfg.Epochs == 0 {
		cfg.Epochs = 100
	}
	if cfg.LogEvery == 0 {
		cfg.LogEvery = max(cfg.Epochs/10, 1)
	}
	return &Trainer{model: model, optimizer: optimizer, cfg: cfg}
}

// FromSpec builds a GraphModel, its optimizer and a trainer from a spec.
// Metadata.Seed seeds weight initialization.
func FromSpec(spec *nn.GraphSpec, par parallel.Config, logger *log.Logger) (*Trainer, *nn.GraphModel, error) {
	meta := spec.Metadata
	model, err := nn.NewGraphModel(spec, newRand(meta.Seed))
	if err != nil {
		return nil, nil, err
	}

	opt, err := optim.New(optim.Kind(meta.Optimizer), model.Parameters(), meta.LearningRate, meta.Momentum)
	if err != nil {
		return nil, nil, err
	}

	return NewTrainer(model, opt, Config{
		Epochs:   meta.Epochs,
		Parallel: par,
		Logger:   logger,
	}), model, nil
}

// Step runs one step: zero gradients, batch gradients, optimizer step.
// It returns the mean loss before the update.
func (t *Trainer) Step(samples []nn.Sample) (float64, error) {
	t.optimizer.ZeroGrad()
	loss, err := nn.BatchGradients(t.model, samples, t.cfg.Parallel)
	if err != nil {
		return 0, err
	}
	t.optimizer.Step()
	return loss, nil
}

// Fit runs Epochs steps over samples and returns the loss of each epoch.
func (t *Trainer) Fit(samples []nn.Sample) ([]float64, error) {
	history := make([]float64, 0, t.cfg.Epochs)
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		loss, err := t.Step(samples)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch+1, err)
		}
		history = append(history, loss)

		if t.cfg.Logger != nil && ((epoch+1)%t.cfg.LogEvery == 0 || epoch == 0) {
			t.cfg.Logger.Printf("epoch %d/%d: loss=%.6f lr=%g", epoch+1, t.cfg.Epochs, loss, t.optimizer.GetLR())
		}
	}
	return history, nil
}

// Evaluate returns the mean loss over samples without touching gradients.
func (t *Trainer) Evaluate(samples []nn.Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, nn.ErrNoSamples
	}

	var total float64
	for i, s := range samples {
		out, err := nn.Predict(t.model, s.Input)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if len(out) != len(s.Target) {
			return 0, fmt.Errorf("sample %d: %w", i, nn.ErrOutputWidth)
		}
		var sq float64
		for j := range out {
			d := out[j] - s.Target[j]
			sq += d * d
		}
		total += sq / float64(len(out))
	}
	return total / float64(len(samples)), nil
}
