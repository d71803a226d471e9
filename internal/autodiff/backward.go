package autodiff

import "fmt"

// ReverseTopological returns the nodes reachable from output, ordered so
// that every node precedes its operands (output first, leaves last).
//
// Operands always precede their consumers in creation order, so sweeping
// indices from output down to 0 and skipping unreachable nodes yields a
// valid order without an explicit depth-first search.
func (g *Graph) ReverseTopological(output NodeRef) ([]NodeRef, error) {
	if !g.valid(output) {
		return nil, invalidNode(output, len(g.nodes))
	}

	reachable := make([]bool, output+1)
	reachable[output] = true

	order := make([]NodeRef, 0, output+1)
	for i := output; i >= 0; i-- {
		if !reachable[i] {
			continue
		}
		order = append(order, i)
		for _, in := range g.nodes[i].inputs() {
			reachable[in] = true
		}
	}
	return order, nil
}

// Backward computes d(output)/d(node) for every node reachable from output.
//
// Algorithm:
//  1. Reset every gradient in the graph to 0 and seed output with 1
//  2. Walk the reachable nodes in reverse topological order
//  3. For each operand o of node n: o.grad += n.grad * ∂n/∂o
//  4. Accumulation (not assignment) sums contributions over every path,
//     so a node consumed more than once receives its full gradient
//
// Gradients are reset on every call: running Backward twice on the same
// output yields the same gradients, and nodes unreachable from output
// report 0. Nodes that do not require a gradient still accumulate one;
// use RequiresGrad or InputGradients to filter them.
//
// Degenerate local derivatives (Inf, NaN) propagate without error.
func (g *Graph) Backward(output NodeRef) error {
	order, err := g.ReverseTopological(output)
	if err != nil {
		return fmt.Errorf("backward: %w", err)
	}

	g.ZeroGrad()
	g.nodes[output].grad = 1

	var local [2]float64
	for _, ref := range order {
		n := &g.nodes[ref]
		if n.nOperands == 0 {
			continue
		}

		g.buf = g.buf[:0]
		for _, in := range n.inputs() {
			g.buf = append(g.buf, g.nodes[in].value)
		}
		if err := n.op.Local(g.buf, n.value, local[:]); err != nil {
			return fmt.Errorf("backward: node %d: %w", ref, err)
		}

		for i, in := range n.inputs() {
			g.nodes[in].grad += n.grad * local[i]
		}
	}
	return nil
}

// ZeroGrad clears the gradient of every node.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// GradientOf returns the gradient accumulated on ref by the last Backward.
//
// The result is 0 before Backward has run and for nodes unreachable from
// the differentiated output. It panics if ref is not a node of g.
func (g *Graph) GradientOf(ref NodeRef) float64 {
	return g.at(ref).grad
}

// InputGradients returns the gradients of all leaves created with
// requiresGrad, keyed by node.
func (g *Graph) InputGradients() map[NodeRef]float64 {
	grads := make(map[NodeRef]float64)
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.nOperands == 0 && n.requiresGrad {
			grads[NodeRef(i)] = n.grad
		}
	}
	return grads
}
