// Package main provides the smallgrad CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/smallgrad/internal/autodiff"
	"github.com/born-ml/smallgrad/internal/nn"
	"github.com/born-ml/smallgrad/internal/parallel"
	"github.com/born-ml/smallgrad/internal/train"
)

const version = "v0.1.0-dev"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "smallgrad %s\n", version)
		return nil
	case "verify":
		return verify(stdout)
	case "train":
		return trainCmd(args[1:], stdout, stderr)
	}

	usage(stderr)
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "smallgrad - scalar reverse-mode autodiff")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version             Show version")
	fmt.Fprintln(w, "  verify              Differentiate the reference expression")
	fmt.Fprintln(w, "  train -spec FILE    Train a graph model described in YAML")
}

// referenceInputs are the leaves a..f of referenceExpr.
var referenceInputs = []float64{2.7, 0, -4, 5, 0.23, 3}

// referenceExpr exercises every operator:
//
//	left  = relu(-(tanh(-(1/a²)) + d/exp(-c)))^-3
//	right = 1e4 * exp(-(f*(e+b)) / (c*d))
//	out   = (left - right) / 100
func referenceExpr(_ *autodiff.Graph, in []autodiff.Value) autodiff.Value {
	a, b, c, d, e, f := in[0], in[1], in[2], in[3], in[4], in[5]
	left := a.Pow(2).Inv().Neg().Tanh().
		Add(c.Neg().Exp().Inv().Mul(d)).
		Neg().ReLU().Pow(-3)
	right := f.Mul(e.Add(b)).Neg().Div(c.Mul(d)).Exp().MulScalar(1e4)
	return left.Sub(right).DivScalar(1e2)
}

func verify(w io.Writer) error {
	out, grads := autodiff.Gradients(referenceExpr, referenceInputs)
	fmt.Fprintf(w, "out = %.10g\n", out)
	for i, g := range grads {
		fmt.Fprintf(w, "d%c  = %.10g\n", 'a'+i, g)
	}
	return autodiff.CheckGradients(referenceExpr, referenceInputs, autodiff.GradCheckConfig{})
}

func trainCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	specPath := fs.String("spec", "", "YAML graph spec with samples")
	epochs := fs.Int("epochs", 0, "Override metadata epochs")
	workers := fs.Int("workers", 0, "Worker goroutines (0 = logical cores)")
	quiet := fs.Bool("quiet", false, "Suppress per-epoch progress")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *specPath == "" {
		fs.Usage()
		return fmt.Errorf("%w: -spec is required", errUsage)
	}

	spec, err := nn.LoadGraphSpecFile(*specPath)
	if err != nil {
		return err
	}
	if len(spec.Samples) == 0 {
		return fmt.Errorf("%s: %w", *specPath, nn.ErrNoSamples)
	}
	if *epochs > 0 {
		spec.Metadata.Epochs = *epochs
	}

	par := parallel.DefaultConfig()
	if *workers > 0 {
		par.NumWorkers = *workers
		par.Enabled = *workers > 1
	}
	par.MinChunkSize = 1

	var logger *log.Logger
	if !*quiet {
		logger = log.New(stdout, "", 0)
	}

	trainer, model, err := train.FromSpec(spec, par, logger)
	if err != nil {
		return err
	}

	meta := model.Metadata()
	fmt.Fprintf(stdout, "model: %d nodes, %d parameters, outputs %v\n",
		len(model.Order()), len(model.Parameters()), model.Outputs())
	fmt.Fprintf(stdout, "optimizer: %s (lr=%g), epochs: %d, samples: %d\n",
		optimizerName(meta.Optimizer), meta.LearningRate, meta.Epochs, len(spec.Samples))

	if _, err := trainer.Fit(spec.Samples); err != nil {
		return err
	}
	loss, err := trainer.Evaluate(spec.Samples)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "final loss: %.6f\n", loss)
	return nil
}

func optimizerName(s string) string {
	if s == "" {
		return "sgd"
	}
	return s
}
