package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out, &out))
	assert.Equal(t, "smallgrad "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, &out))
	assert.Contains(t, out.String(), "Commands:")

	err := run([]string{"serve"}, &out, &out)
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Verify(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"verify"}, &out, &out))
	assert.Contains(t, out.String(), "out = 8.138144876")
	assert.Contains(t, out.String(), "da  = 746.53443")
	assert.Contains(t, out.String(), "df  = -1.190367")
}

func TestRun_Train(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"train", "-spec", "../../internal/train/testdata/linear.yaml", "-quiet", "-workers", "2"}, &out, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "model: 2 nodes, 2 parameters, outputs [y]")
	assert.Contains(t, out.String(), "final loss: 0.000000")
	assert.NotContains(t, out.String(), "epoch 1/")
}

func TestRun_TrainErrors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run([]string{"train"}, &out, &out), errUsage)
	assert.ErrorIs(t, run([]string{"train", "-bogus"}, &out, &out), errUsage)
	assert.Error(t, run([]string{"train", "-spec", "testdata/missing.yaml"}, &out, &out))
}
