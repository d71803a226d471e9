// Package ops defines the closed operator set of the scalar autodiff engine.
//
// Each operator provides two rules:
//   - Forward: computes the node value from operand values
//   - Local: computes the partial derivative of the node value with respect
//     to each operand, evaluated at the cached forward values
//
// Supported operators:
//   - Add: x + y (d/dx = 1, d/dy = 1)
//   - Sub: x - y (d/dx = 1, d/dy = -1)
//   - Mul: x * y (d/dx = y, d/dy = x)
//   - Div: x / y (d/dx = 1/y, d/dy = -x/y²)
//   - Neg: -x (d/dx = -1)
//   - Pow(p): x^p for a constant p (d/dx = p*x^(p-1))
//   - Exp: e^x (d/dx = e^x)
//   - Tanh: tanh(x) (d/dx = 1 - tanh²(x))
//   - ReLU: max(0, x) (d/dx = 1 if x > 0, else 0)
//
// Degenerate inputs (division by zero, 0 raised to a negative power) are not
// guarded: the rules return whatever IEEE-754 arithmetic produces.
package ops

import "fmt"

// Kind identifies an operator in the closed operator set.
type Kind uint8

// Operator kinds. The zero Kind is not a valid operator.
const (
	KindInvalid Kind = iota
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindNeg
	KindPow
	KindExp
	KindTanh
	KindReLU
)

// rule is implemented by every operator in the set.
//
// forward and local receive exactly arity() operand values; Operator checks
// the count before dispatching.
type rule interface {
	name() string
	arity() int
	forward(op Operator, x []float64) float64
	local(op Operator, x []float64, z float64, d []float64)
}

var rules = map[Kind]rule{
	KindAdd:  addRule{},
	KindSub:  subRule{},
	KindMul:  mulRule{},
	KindDiv:  divRule{},
	KindNeg:  negRule{},
	KindPow:  powRule{},
	KindExp:  expRule{},
	KindTanh: tanhRule{},
	KindReLU: reluRule{},
}

// Operator is a value describing one operation of the set.
//
// Operators are comparable values. All but Pow are parameterless and exposed
// as package variables; Pow carries its constant exponent:
//
//	z, _ := ops.Mul.Forward([]float64{2, 3})  // 6
//	z, _ = ops.Pow(3).Forward([]float64{2})   // 8
//
// The zero Operator is invalid and reports ErrUnknownOperator.
type Operator struct {
	kind     Kind
	exponent float64
}

// Parameterless operators.
var (
	Add  = Operator{kind: KindAdd}
	Sub  = Operator{kind: KindSub}
	Mul  = Operator{kind: KindMul}
	Div  = Operator{kind: KindDiv}
	Neg  = Operator{kind: KindNeg}
	Exp  = Operator{kind: KindExp}
	Tanh = Operator{kind: KindTanh}
	ReLU = Operator{kind: KindReLU}
)

// Pow returns the operator x^p for the constant exponent p.
func Pow(p float64) Operator {
	return Operator{kind: KindPow, exponent: p}
}

// Kind returns the operator kind.
func (o Operator) Kind() Kind {
	return o.kind
}

// Exponent returns the constant exponent of a Pow operator (0 otherwise).
func (o Operator) Exponent() float64 {
	return o.exponent
}

// Arity returns the number of operands the operator consumes.
func (o Operator) Arity() (int, error) {
	r, err := o.rule()
	if err != nil {
		return 0, err
	}
	return r.arity(), nil
}

// String returns the operator name, e.g. "mul" or "pow(-3)".
func (o Operator) String() string {
	r, ok := rules[o.kind]
	if !ok {
		return fmt.Sprintf("unknown(%d)", o.kind)
	}
	if o.kind == KindPow {
		return fmt.Sprintf("%s(%g)", r.name(), o.exponent)
	}
	return r.name()
}

// Forward computes the operator value for the given operand values.
func (o Operator) Forward(x []float64) (float64, error) {
	r, err := o.checked(len(x))
	if err != nil {
		return 0, err
	}
	return r.forward(o, x), nil
}

// Local writes the partial derivatives ∂z/∂x[i] into d, where z is the value
// previously returned by Forward(x). d must have room for Arity() values.
func (o Operator) Local(x []float64, z float64, d []float64) error {
	r, err := o.checked(len(x))
	if err != nil {
		return err
	}
	if len(d) < len(x) {
		return fmt.Errorf("%s: derivative buffer holds %d values, need %d", r.name(), len(d), len(x))
	}
	r.local(o, x, z, d)
	return nil
}

func (o Operator) rule() (rule, error) {
	r, ok := rules[o.kind]
	if !ok {
		return nil, &UnknownOperatorError{Kind: o.kind}
	}
	return r, nil
}

func (o Operator) checked(n int) (rule, error) {
	r, err := o.rule()
	if err != nil {
		return nil, err
	}
	if r.arity() != n {
		return nil, &ArityError{Op: o.String(), Want: r.arity(), Got: n}
	}
	return r, nil
}
