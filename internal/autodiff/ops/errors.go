package ops

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrArity           = errors.New("operand count does not match operator arity")
	ErrUnknownOperator = errors.New("unknown operator")
)

// ArityError reports an operator applied to the wrong number of operands.
type ArityError struct {
	Op   string // Operator name (e.g., "mul")
	Want int    // Operands the operator consumes
	Got  int    // Operands supplied
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expects %d operand(s), got %d", e.Op, e.Want, e.Got)
}

// Unwrap returns ErrArity so callers can match with errors.Is.
func (e *ArityError) Unwrap() error {
	return ErrArity
}

// UnknownOperatorError reports an operator kind outside the closed set.
type UnknownOperatorError struct {
	Kind Kind
}

// Error implements the error interface.
func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator kind %d", e.Kind)
}

// Unwrap returns ErrUnknownOperator so callers can match with errors.Is.
func (e *UnknownOperatorError) Unwrap() error {
	return ErrUnknownOperator
}
