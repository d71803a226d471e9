package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/smallgrad/internal/autodiff"
)

type graphNode struct {
	spec    NodeSpec
	sources []int // Declaration indices, in edge order
	offset  int   // First input slot, input nodes only
	width   int
	neuron  *Neuron
	layer   *Layer
}

// GraphModel is a model whose neurons and layers are wired by a DAG.
//
// Nodes are built in topological order. A node's inputs are the
// concatenated outputs of its sources, in the order the edges were
// declared. Nodes without outgoing edges are the model outputs.
type GraphModel struct {
	meta    Metadata
	nodes   []graphNode // Declaration order
	order   []int       // Topological order
	outputs []int
}

// NewGraphModel validates spec and builds its neurons and layers.
//
// Errors:
//   - ErrDuplicateNode, ErrUnknownNode, ErrNodeKind for malformed nodes or edges
//   - ErrCycle if the edges do not form a DAG
//   - ErrInputEdge if an input node has dependencies
//   - ErrNoDependencies if a neuron or layer has none
//   - ErrInputWidth, ErrOutputWidth if the io widths disagree with Metadata
func NewGraphModel(spec *GraphSpec, rng *rand.Rand) (*GraphModel, error) {
	m := &GraphModel{
		meta:  spec.Metadata,
		nodes: make([]graphNode, len(spec.Nodes)),
	}

	index := make(map[string]int, len(spec.Nodes))
	for i, ns := range spec.Nodes {
		if ns.Name == "" {
			return nil, fmt.Errorf("graph model: node %d: empty name: %w", i, ErrUnknownNode)
		}
		if _, dup := index[ns.Name]; dup {
			return nil, fmt.Errorf("graph model: %w: %q", ErrDuplicateNode, ns.Name)
		}
		switch ns.Kind {
		case NodeInput, NodeNeuron, NodeLayer:
		default:
			return nil, fmt.Errorf("graph model: node %q: %w: %q", ns.Name, ErrNodeKind, ns.Kind)
		}
		if err := ns.validateWidth(); err != nil {
			return nil, fmt.Errorf("graph model: %w", err)
		}
		if ns.Width == 0 {
			ns.Width = 1
		}
		index[ns.Name] = i
		m.nodes[i] = graphNode{spec: ns}
	}

	outDegree := make([]int, len(m.nodes))
	for _, e := range spec.Edges {
		from, ok := index[e.From]
		if !ok {
			return nil, fmt.Errorf("graph model: edge %s->%s: %w: %q", e.From, e.To, ErrUnknownNode, e.From)
		}
		to, ok := index[e.To]
		if !ok {
			return nil, fmt.Errorf("graph model: edge %s->%s: %w: %q", e.From, e.To, ErrUnknownNode, e.To)
		}
		m.nodes[to].sources = append(m.nodes[to].sources, from)
		outDegree[from]++
	}

	order, err := topologicalOrder(m.nodes, spec.Edges, index)
	if err != nil {
		return nil, err
	}
	m.order = order

	if err := m.build(rng); err != nil {
		return nil, err
	}

	for i, n := range m.nodes {
		if outDegree[i] == 0 && n.spec.Kind != NodeInput {
			m.outputs = append(m.outputs, i)
		}
	}
	if len(m.outputs) == 0 {
		return nil, fmt.Errorf("graph model: %w: no output nodes", ErrOutputWidth)
	}

	outWidth := 0
	for _, i := range m.outputs {
		outWidth += m.nodes[i].width
	}
	if m.meta.OutputWidth == 0 {
		m.meta.OutputWidth = outWidth
	}
	if outWidth != m.meta.OutputWidth {
		return nil, fmt.Errorf("graph model: %w: outputs provide %d, metadata declares %d", ErrOutputWidth, outWidth, m.meta.OutputWidth)
	}
	return m, nil
}

// topologicalOrder runs Kahn's algorithm, seeding and expanding nodes in
// declaration and edge order so the result is deterministic.
func topologicalOrder(nodes []graphNode, edges []Edge, index map[string]int) ([]int, error) {
	inDegree := make([]int, len(nodes))
	successors := make([][]int, len(nodes))
	for _, e := range edges {
		from, to := index[e.From], index[e.To]
		successors[from] = append(successors[from], to)
		inDegree[to]++
	}

	queue := make([]int, 0, len(nodes))
	for i := range nodes {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, len(nodes))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, s := range successors[i] {
			inDegree[s]--
			if inDegree[s] == 0 {
				queue = append(queue, s)
			}
		}
	}

	if len(order) != len(nodes) {
		var stuck []string
		for i, d := range inDegree {
			if d > 0 {
				stuck = append(stuck, nodes[i].spec.Name)
			}
		}
		return nil, fmt.Errorf("graph model: %w: %v", ErrCycle, stuck)
	}
	return order, nil
}

func (m *GraphModel) build(rng *rand.Rand) error {
	inWidth := 0
	for i := range m.nodes {
		n := &m.nodes[i]
		if n.spec.Kind != NodeInput {
			continue
		}
		if len(n.sources) > 0 {
			return fmt.Errorf("graph model: node %q: %w", n.spec.Name, ErrInputEdge)
		}
		n.offset = inWidth
		n.width = n.spec.Width
		inWidth += n.width
	}
	if m.meta.InputWidth == 0 {
		m.meta.InputWidth = inWidth
	}
	if inWidth != m.meta.InputWidth {
		return fmt.Errorf("graph model: %w: input nodes provide %d, metadata declares %d", ErrInputWidth, inWidth, m.meta.InputWidth)
	}

	for _, i := range m.order {
		n := &m.nodes[i]
		if n.spec.Kind == NodeInput {
			continue
		}
		if len(n.sources) == 0 {
			return fmt.Errorf("graph model: node %q: %w", n.spec.Name, ErrNoDependencies)
		}

		fanIn := 0
		for _, s := range n.sources {
			fanIn += m.nodes[s].width
		}

		act := n.spec.Activation
		if act == "" {
			act = m.meta.Activation
		}
		if err := act.Validate(); err != nil {
			return fmt.Errorf("graph model: node %q: %w", n.spec.Name, err)
		}

		switch n.spec.Kind {
		case NodeNeuron:
			n.neuron = NewNeuron(n.spec.Name, fanIn, act, n.spec.NoBias, rng)
			n.width = 1
		case NodeLayer:
			l, err := NewLayer(n.spec.Name, fanIn, n.spec.Width, act, n.spec.NoBias, rng)
			if err != nil {
				return fmt.Errorf("graph model: %w", err)
			}
			n.layer = l
			n.width = l.OutputWidth()
		}
	}
	return nil
}

// Metadata returns the model metadata with io widths resolved.
func (m *GraphModel) Metadata() Metadata {
	return m.meta
}

// Order returns the node names in the order they are evaluated.
func (m *GraphModel) Order() []string {
	names := make([]string, len(m.order))
	for k, i := range m.order {
		names[k] = m.nodes[i].spec.Name
	}
	return names
}

// Outputs returns the names of the output nodes.
func (m *GraphModel) Outputs() []string {
	names := make([]string, len(m.outputs))
	for k, i := range m.outputs {
		names[k] = m.nodes[i].spec.Name
	}
	return names
}

// Forward evaluates every node in topological order and returns the
// concatenated outputs of the output nodes.
func (m *GraphModel) Forward(b *Binding, inputs []autodiff.Value) ([]autodiff.Value, error) {
	if len(inputs) != m.meta.InputWidth {
		return nil, fmt.Errorf("graph model: %w: got %d, want %d", ErrInputWidth, len(inputs), m.meta.InputWidth)
	}

	values := make([][]autodiff.Value, len(m.nodes))
	for _, i := range m.order {
		n := &m.nodes[i]
		if n.spec.Kind == NodeInput {
			values[i] = inputs[n.offset : n.offset+n.width]
			continue
		}

		var in []autodiff.Value
		for _, s := range n.sources {
			in = append(in, values[s]...)
		}

		switch {
		case n.neuron != nil:
			v, err := n.neuron.Forward(b, in)
			if err != nil {
				return nil, fmt.Errorf("graph model: node %q: %w", n.spec.Name, err)
			}
			values[i] = []autodiff.Value{v}
		case n.layer != nil:
			out, err := n.layer.Forward(b, in)
			if err != nil {
				return nil, fmt.Errorf("graph model: node %q: %w", n.spec.Name, err)
			}
			values[i] = out
		}
	}

	var out []autodiff.Value
	for _, i := range m.outputs {
		out = append(out, values[i]...)
	}
	return out, nil
}

// Parameters returns the parameters of every neuron and layer in
// evaluation order.
func (m *GraphModel) Parameters() []*Parameter {
	var params []*Parameter
	for _, i := range m.order {
		n := &m.nodes[i]
		switch {
		case n.neuron != nil:
			params = append(params, n.neuron.Parameters()...)
		case n.layer != nil:
			params = append(params, n.layer.Parameters()...)
		}
	}
	return params
}
