package nn

import "errors"

// Common errors.
var (
	ErrInputWidth      = errors.New("input width mismatch")
	ErrOutputWidth     = errors.New("output width mismatch")
	ErrLayerWidth      = errors.New("layer width must be at least 1")
	ErrUnbound         = errors.New("parameter is not bound to the graph")
	ErrNoSamples       = errors.New("no samples")
	ErrActivation      = errors.New("unknown activation")
	ErrUnsupportedLoss = errors.New("unsupported loss function")
	ErrCycle           = errors.New("graph contains a cycle")
	ErrUnknownNode     = errors.New("unknown node")
	ErrDuplicateNode   = errors.New("duplicate node")
	ErrNodeKind        = errors.New("unknown node kind")
	ErrNoDependencies  = errors.New("node has no dependencies")
)

// ErrInputEdge is returned when an input node has incoming edges.
var ErrInputEdge = errors.New("input node cannot have dependencies")
