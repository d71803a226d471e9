package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/smallgrad/internal/autodiff/ops"
)

// Common errors.
var (
	ErrInvalidNode = errors.New("node does not belong to graph")
	ErrForeignNode = errors.New("operands belong to different graphs")

	// Re-exported from ops so callers need a single import.
	ErrArity           = ops.ErrArity
	ErrUnknownOperator = ops.ErrUnknownOperator
)

// ArityError reports an operator applied to the wrong number of operands.
type ArityError = ops.ArityError

// UnknownOperatorError reports an operator kind outside the closed set.
type UnknownOperatorError = ops.UnknownOperatorError

func invalidNode(ref NodeRef, n int) error {
	return fmt.Errorf("ref %d (graph has %d nodes): %w", ref, n, ErrInvalidNode)
}
