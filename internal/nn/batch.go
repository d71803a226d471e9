package nn

import (
	"fmt"

	"github.com/born-ml/smallgrad/internal/autodiff"
	"github.com/born-ml/smallgrad/internal/parallel"
)

// Sample is one training example.
type Sample struct {
	Input  []float64 `yaml:"input"`
	Target []float64 `yaml:"target"`
}

// Predict evaluates model on one input in a fresh graph.
func Predict(model Module, input []float64) ([]float64, error) {
	g := autodiff.NewGraph()
	b := Bind(g, model.Parameters())

	out, err := model.Forward(b, b.Inputs(input))
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(out))
	for i, v := range out {
		values[i] = v.Data()
	}
	return values, nil
}

// BatchGradients computes the mean MSE loss of model over samples and adds
// the gradient of that mean loss to every parameter.
//
// Each worker owns one graph, reset between samples. Per-sample gradients
// are summed in sample order after all workers finish, so the result does
// not depend on scheduling. Parameter gradients are accumulated, not
// overwritten: call ZeroGrad between steps.
func BatchGradients(model Module, samples []Sample, cfg parallel.Config) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}

	params := model.Parameters()
	losses := make([]float64, len(samples))
	grads := make([][]float64, len(samples))
	errs := make([]error, len(samples))

	parallel.ForChunks(len(samples), func(start, end int) {
		g := autodiff.NewGraph()
		for i := start; i < end; i++ {
			g.Reset()
			losses[i], grads[i], errs[i] = sampleGradients(g, model, params, samples[i])
		}
	}, cfg)

	for i, err := range errs {
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
	}

	n := float64(len(samples))
	var loss float64
	for i := range samples {
		loss += losses[i]
	}
	for j, p := range params {
		var sum float64
		for i := range samples {
			sum += grads[i][j]
		}
		p.AddGrad(sum / n)
	}
	return loss / n, nil
}

func sampleGradients(g *autodiff.Graph, model Module, params []*Parameter, s Sample) (float64, []float64, error) {
	b := Bind(g, params)

	out, err := model.Forward(b, b.Inputs(s.Input))
	if err != nil {
		return 0, nil, err
	}
	loss, err := MSELoss(out, s.Target)
	if err != nil {
		return 0, nil, err
	}
	if err := g.Backward(loss.Ref()); err != nil {
		return 0, nil, err
	}
	return loss.Data(), b.Gradients(), nil
}
