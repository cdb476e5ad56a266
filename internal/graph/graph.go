package graph

import (
	"fmt"

	"github.com/lattice-ml/lattice/internal/tensor"
)

// Node is one operation in the computation graph. Inputs and Outputs hold
// slot indices into the owning graph's tensor table, never tensor pointers:
// tensor identity is not stable across re-compiles, slot indices are.
type Node struct {
	Op      OpCode
	Inputs  []int
	Outputs []int
}

// Graph owns the flat tensor table and the ordered node list the runtime
// executes. Nodes are evaluated in list order; the graph carries no edges
// beyond the slot indices each node declares.
type Graph struct {
	tensors []*tensor.RawTensor
	nodes   []Node

	inputs  []int // Slot indices of graph inputs
	outputs []int // Slot indices of graph outputs
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddTensor appends t to the tensor table and returns its slot index.
func (g *Graph) AddTensor(t *tensor.RawTensor) int {
	g.tensors = append(g.tensors, t)
	return len(g.tensors) - 1
}

// AddNode appends a node and returns its node index.
// Slot indices are validated against the current tensor table.
func (g *Graph) AddNode(op OpCode, inputs, outputs []int) (int, error) {
	for _, slot := range inputs {
		if slot < 0 || slot >= len(g.tensors) {
			return 0, fmt.Errorf("node %s: input slot %d out of range [0, %d)", op, slot, len(g.tensors))
		}
	}
	for _, slot := range outputs {
		if slot < 0 || slot >= len(g.tensors) {
			return 0, fmt.Errorf("node %s: output slot %d out of range [0, %d)", op, slot, len(g.tensors))
		}
	}

	g.nodes = append(g.nodes, Node{
		Op:      op,
		Inputs:  append([]int(nil), inputs...),
		Outputs: append([]int(nil), outputs...),
	})
	return len(g.nodes) - 1, nil
}

// Node resolves a node by index. An unresolvable index is an error: during
// delegate kernel initialization it is fatal for that graph compile.
func (g *Graph) Node(index int) (*Node, error) {
	if index < 0 || index >= len(g.nodes) {
		return nil, fmt.Errorf("node index %d out of range [0, %d)", index, len(g.nodes))
	}
	return &g.nodes[index], nil
}

// Tensor resolves a tensor slot index against the flat table.
func (g *Graph) Tensor(slot int) (*tensor.RawTensor, error) {
	if slot < 0 || slot >= len(g.tensors) {
		return nil, fmt.Errorf("tensor slot %d out of range [0, %d)", slot, len(g.tensors))
	}
	return g.tensors[slot], nil
}

// NumNodes returns the number of nodes in execution order.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumTensors returns the size of the tensor table.
func (g *Graph) NumTensors() int {
	return len(g.tensors)
}

// SetInputs declares which tensor slots are graph inputs.
func (g *Graph) SetInputs(slots ...int) {
	g.inputs = append([]int(nil), slots...)
}

// SetOutputs declares which tensor slots are graph outputs.
func (g *Graph) SetOutputs(slots ...int) {
	g.outputs = append([]int(nil), slots...)
}

// Inputs returns the declared graph input slots.
func (g *Graph) Inputs() []int {
	return g.inputs
}

// Outputs returns the declared graph output slots.
func (g *Graph) Outputs() []int {
	return g.outputs
}
