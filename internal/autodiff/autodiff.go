// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// A Graph owns every node created while an expression is built. Nodes are
// appended in creation order and reference their operands by index, so the
// graph is acyclic by construction and creation order is a valid topological
// order.
//
// Architecture:
//   - Graph: append-only node arena with eager forward evaluation
//   - ops.Operator: closed operator set with forward and local-derivative rules
//   - Backward: one reverse sweep from the output applying the chain rule
//   - Value: builder handle so expressions read like ordinary arithmetic
//
// Usage:
//
//	g := autodiff.NewGraph()
//	a, b, c := g.Var(2), g.Var(3), g.Var(4)
//	out := a.Add(b).Mul(c) // 20
//
//	out.Backward()
//	fmt.Println(a.Grad(), b.Grad(), c.Grad()) // 4 4 5
//
// A Graph is not safe for concurrent use. Goroutines that differentiate in
// parallel each build their own Graph.
package autodiff

import (
	"fmt"

	"github.com/born-ml/smallgrad/internal/autodiff/ops"
)

// NodeRef identifies a node by its index in the owning Graph.
type NodeRef int

// node is a single vertex of the computation graph.
type node struct {
	op           ops.Operator // Zero for leaves
	operands     [2]NodeRef   // Valid up to nOperands
	nOperands    uint8
	value        float64 // Cached forward value
	grad         float64 // Accumulated by Backward
	requiresGrad bool
}

func (n *node) inputs() []NodeRef {
	return n.operands[:n.nOperands]
}

// Graph owns the nodes of one expression.
type Graph struct {
	nodes []node
	buf   []float64 // Scratch operand values for forward/local rules
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return NewGraphWithCapacity(64)
}

// NewGraphWithCapacity creates an empty graph with room for n nodes.
func NewGraphWithCapacity(n int) *Graph {
	return &Graph{
		nodes: make([]node, 0, n),
		buf:   make([]float64, 0, 2),
	}
}

// Reset removes every node, keeping the allocated storage for reuse.
// NodeRefs and Values created before Reset must not be used afterwards.
func (g *Graph) Reset() {
	g.nodes = g.nodes[:0]
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// CreateLeaf appends a leaf node holding value.
func (g *Graph) CreateLeaf(value float64, requiresGrad bool) NodeRef {
	g.nodes = append(g.nodes, node{
		value:        value,
		requiresGrad: requiresGrad,
	})
	return NodeRef(len(g.nodes) - 1)
}

// CreateOp appends a node applying op to operands and returns its ref.
//
// The node value is computed immediately from the operands' cached values.
// The node requires a gradient if any operand does.
//
// Errors:
//   - *ops.ArityError if len(operands) does not match the operator arity
//   - *ops.UnknownOperatorError if op is not part of the operator set
//   - ErrInvalidNode if an operand is not a node of g
func (g *Graph) CreateOp(op ops.Operator, operands ...NodeRef) (NodeRef, error) {
	arity, err := op.Arity()
	if err != nil {
		return 0, err
	}
	if len(operands) != arity {
		return 0, &ops.ArityError{Op: op.String(), Want: arity, Got: len(operands)}
	}

	n := node{op: op, nOperands: uint8(arity)}
	g.buf = g.buf[:0]
	for i, ref := range operands {
		if !g.valid(ref) {
			return 0, fmt.Errorf("%s operand %d: %w", op, i, invalidNode(ref, len(g.nodes)))
		}
		in := &g.nodes[ref]
		n.operands[i] = ref
		n.requiresGrad = n.requiresGrad || in.requiresGrad
		g.buf = append(g.buf, in.value)
	}

	n.value, err = op.Forward(g.buf)
	if err != nil {
		return 0, err
	}

	g.nodes = append(g.nodes, n)
	return NodeRef(len(g.nodes) - 1), nil
}

// Value returns the cached forward value of ref.
// It panics if ref is not a node of g.
func (g *Graph) Value(ref NodeRef) float64 {
	return g.at(ref).value
}

// Operator returns the operator that produced ref; the zero Operator for leaves.
func (g *Graph) Operator(ref NodeRef) ops.Operator {
	return g.at(ref).op
}

// Operands returns a copy of the operand refs of ref (empty for leaves).
func (g *Graph) Operands(ref NodeRef) []NodeRef {
	n := g.at(ref)
	return append([]NodeRef(nil), n.inputs()...)
}

// RequiresGrad reports whether ref depends on a leaf created with requiresGrad.
func (g *Graph) RequiresGrad(ref NodeRef) bool {
	return g.at(ref).requiresGrad
}

// IsLeaf reports whether ref has no operands.
func (g *Graph) IsLeaf(ref NodeRef) bool {
	return g.at(ref).nOperands == 0
}

func (g *Graph) valid(ref NodeRef) bool {
	return ref >= 0 && int(ref) < len(g.nodes)
}

func (g *Graph) at(ref NodeRef) *node {
	if !g.valid(ref) {
		panic(invalidNode(ref, len(g.nodes)))
	}
	return &g.nodes[ref]
}
