package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/smallgrad/internal/autodiff"
	"github.com/born-ml/smallgrad/internal/nn"
	"github.com/born-ml/smallgrad/internal/optim"
)

// squareGrad sets the gradient of f(x) = x² on param using the autodiff engine.
func squareGrad(param *nn.Parameter) {
	g := autodiff.NewGraph()
	b := nn.Bind(g, []*nn.Parameter{param})
	b.Value(param).Pow(2).Backward()
	b.Accumulate()
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	param := nn.NewParameter("x", 2.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	param.AddGrad(1.0)
	optimizer.Step()

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if math.Abs(param.Data()-1.9) > 1e-12 {
		t.Errorf("SGD update: got %f, want 1.9", param.Data())
	}
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	param := nn.NewParameter("x", 1.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: v = 1, x = 1 - 0.1 = 0.9
	param.AddGrad(1.0)
	optimizer.Step()
	if math.Abs(param.Data()-0.9) > 1e-12 {
		t.Errorf("step 1: got %f, want 0.9", param.Data())
	}

	// Step 2 (same grad): v = 0.9 + 1 = 1.9, x = 0.9 - 0.19 = 0.71
	optimizer.Step()
	if math.Abs(param.Data()-0.71) > 1e-12 {
		t.Errorf("step 2: got %f, want 0.71", param.Data())
	}
}

// TestSGD_ZeroGrad tests gradient clearing.
func TestSGD_ZeroGrad(t *testing.T) {
	a := nn.NewParameter("a", 1)
	b := nn.NewParameter("b", 2)
	optimizer := optim.NewSGD([]*nn.Parameter{a, b}, optim.SGDConfig{})

	a.AddGrad(3)
	b.AddGrad(4)
	optimizer.ZeroGrad()

	if a.Grad() != 0 || b.Grad() != 0 {
		t.Errorf("ZeroGrad: got (%v, %v), want (0, 0)", a.Grad(), b.Grad())
	}
}

// TestSGD_GetSetLR tests learning rate defaults and scheduling.
func TestSGD_GetSetLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	if optimizer.GetLR() != 0.01 {
		t.Errorf("default LR = %v, want 0.01", optimizer.GetLR())
	}

	optimizer.SetLR(0.5)
	if optimizer.GetLR() != 0.5 {
		t.Errorf("LR after SetLR = %v, want 0.5", optimizer.GetLR())
	}
}

// TestAdam_SimpleUpdate tests the first Adam step.
func TestAdam_SimpleUpdate(t *testing.T) {
	param := nn.NewParameter("x", 1.0)
	optimizer := optim.NewAdam([]*nn.Parameter{param}, optim.AdamConfig{LR: 0.1})

	param.AddGrad(0.5)
	optimizer.Step()

	// First step: m_hat = g, v_hat = g², update = lr * g / (|g| + eps) ≈ lr
	if math.Abs(param.Data()-0.9) > 1e-6 {
		t.Errorf("Adam step 1: got %f, want ≈0.9", param.Data())
	}
	if optimizer.GetTimestep() != 1 {
		t.Errorf("timestep = %d, want 1", optimizer.GetTimestep())
	}
}

// TestAdam_Defaults tests default hyperparameters.
func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	if optimizer.GetLR() != 0.001 {
		t.Errorf("default LR = %v, want 0.001", optimizer.GetLR())
	}
	optimizer.SetLR(0.01)
	if optimizer.GetLR() != 0.01 {
		t.Errorf("LR after SetLR = %v, want 0.01", optimizer.GetLR())
	}
}

// TestConvergence_SimpleQuadratic minimizes f(x) = x² with gradients from the engine.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	tests := []struct {
		name string
		new  func(p []*nn.Parameter) optim.Optimizer
	}{
		{"SGD", func(p []*nn.Parameter) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
		}},
		{"Adam", func(p []*nn.Parameter) optim.Optimizer {
			return optim.NewAdam(p, optim.AdamConfig{LR: 0.1, Betas: [2]float64{0.9, 0.999}, Eps: 1e-8})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param := nn.NewParameter("x", 3.0)
			optimizer := tt.new([]*nn.Parameter{param})

			for i := 0; i < 100; i++ {
				optimizer.ZeroGrad()
				squareGrad(param)
				optimizer.Step()
			}

			if math.Abs(param.Data()) > 0.1 {
				t.Errorf("%s convergence: x = %f, expected close to 0", tt.name, param.Data())
			}
		})
	}
}

// TestNew tests optimizer selection by name.
func TestNew(t *testing.T) {
	p := []*nn.Parameter{nn.NewParameter("x", 1)}

	if o, err := optim.New("", p, 0.2, 0); err != nil {
		t.Errorf("New(\"\"): %v", err)
	} else if _, ok := o.(*optim.SGD); !ok {
		t.Errorf("New(\"\") = %T, want *SGD", o)
	}

	if o, err := optim.New(optim.KindAdam, p, 0.2, 0); err != nil {
		t.Errorf("New(adam): %v", err)
	} else if o.GetLR() != 0.2 {
		t.Errorf("adam LR = %v, want 0.2", o.GetLR())
	}

	if _, err := optim.New("rmsprop", p, 0.2, 0); err == nil {
		t.Error("New(rmsprop) should fail")
	}
}
