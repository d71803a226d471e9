package train_test

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/smallgrad/internal/nn"
	"github.com/born-ml/smallgrad/internal/optim"
	"github.com/born-ml/smallgrad/internal/parallel"
	"github.com/born-ml/smallgrad/internal/train"
)

func TestFromSpec_LinearRegression(t *testing.T) {
	spec, err := nn.LoadGraphSpecFile("testdata/linear.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	trainer, model, err := train.FromSpec(spec, parallel.DefaultConfig(), log.New(&buf, "", 0))
	require.NoError(t, err)

	history, err := trainer.Fit(spec.Samples)
	require.NoError(t, err)
	require.Len(t, history, 200)
	assert.Less(t, history[len(history)-1], 1e-6)

	params := model.Parameters()
	require.Len(t, params, 2)
	assert.InDelta(t, 2.0, params[0].Data(), 1e-3, "weight")
	assert.InDelta(t, 1.0, params[1].Data(), 1e-3, "bias")

	loss, err := trainer.Evaluate(spec.Samples)
	require.NoError(t, err)
	assert.Less(t, loss, 1e-6)

	assert.Contains(t, buf.String(), "epoch 1/200")
	assert.Contains(t, buf.String(), "epoch 200/200")
}

func TestTrainer_XOR(t *testing.T) {
	spec, err := nn.LoadGraphSpecFile("../nn/testdata/xor.yaml")
	require.NoError(t, err)

	trainer, _, err := train.FromSpec(spec, parallel.Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1}, nil)
	require.NoError(t, err)

	history, err := trainer.Fit(spec.Samples)
	require.NoError(t, err)
	assert.Less(t, history[len(history)-1], history[0])
}

func TestTrainer_Adam(t *testing.T) {
	model, err := nn.NewMLP([]int{1, 1}, nn.Linear, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	opt := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.05})
	trainer := train.NewTrainer(model, opt, train.Config{Epochs: 400})

	samples := []nn.Sample{
		{Input: []float64{-1}, Target: []float64{-2}},
		{Input: []float64{1}, Target: []float64{2}},
	}
	history, err := trainer.Fit(samples)
	require.NoError(t, err)
	assert.Less(t, history[len(history)-1], 0.05)
}

func TestTrainer_Errors(t *testing.T) {
	model, err := nn.NewMLP([]int{2, 1}, nn.Linear, nil)
	require.NoError(t, err)
	trainer := train.NewTrainer(model, optim.NewSGD(model.Parameters(), optim.SGDConfig{}), train.Config{Epochs: 3})

	_, err = trainer.Fit(nil)
	assert.ErrorIs(t, err, nn.ErrNoSamples)

	_, err = trainer.Step([]nn.Sample{{Input: []float64{1}, Target: []float64{1}}})
	assert.ErrorIs(t, err, nn.ErrInputWidth)

	_, err = trainer.Evaluate(nil)
	assert.ErrorIs(t, err, nn.ErrNoSamples)
	_, err = trainer.Evaluate([]nn.Sample{{Input: []float64{1, 2}, Target: []float64{1, 2}}})
	assert.ErrorIs(t, err, nn.ErrOutputWidth)

	spec := &nn.GraphSpec{
		Metadata: nn.Metadata{Optimizer: "rmsprop"},
		Nodes: []nn.NodeSpec{
			{Name: "x", Kind: nn.NodeInput},
			{Name: "y", Kind: nn.NodeNeuron},
		},
		Edges: []nn.Edge{{From: "x", To: "y"}},
	}
	spec.ApplyDefaults()
	_, _, err = train.FromSpec(spec, parallel.Config{}, nil)
	assert.Error(t, err)
}
