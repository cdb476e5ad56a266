package dummy

import (
	"fmt"

	"github.com/lattice-ml/lattice/internal/delegate"
	"github.com/lattice-ml/lattice/internal/graph"
	"github.com/lattice-ml/lattice/internal/tensor"
)

// Tensor slot positions within a FULLY_CONNECTED node's input list.
const (
	fcInputTensor   = 0
	fcWeightsTensor = 1
	fcBiasTensor    = 2
)

// Kernel evaluates one cluster of nodes claimed by the dummy delegate.
//
// Init records each cluster node's wiring in parallel slices indexed by
// cluster-local position; Eval walks them in order every inference pass.
// Only slot indices are retained: tensor identity does not survive graph
// re-compiles.
type Kernel struct {
	// inputs[i] / outputs[i] hold the tensor slot indices of node i.
	inputs  [][]int
	outputs [][]int
	// builtinCode[i] is the op of node i.
	builtinCode []graph.OpCode
}

// Compile-time check that Kernel implements delegate.Kernel.
var _ delegate.Kernel = (*Kernel)(nil)

// Init records op code and tensor wiring for every node assigned to this
// cluster. An unresolvable node index aborts the graph compile.
func (k *Kernel) Init(g *graph.Graph, nodes []int) error {
	k.inputs = make([][]int, 0, len(nodes))
	k.outputs = make([][]int, 0, len(nodes))
	k.builtinCode = make([]graph.OpCode, 0, len(nodes))

	for _, nodeIndex := range nodes {
		node, err := g.Node(nodeIndex)
		if err != nil {
			return fmt.Errorf("resolving delegated node %d: %w", nodeIndex, err)
		}
		k.inputs = append(k.inputs, append([]int(nil), node.Inputs...))
		k.outputs = append(k.outputs, append([]int(nil), node.Outputs...))
		k.builtinCode = append(k.builtinCode, node.Op)
	}
	return nil
}

// Eval dispatches every recorded node by its op code. The first failing node
// fails the pass.
func (k *Kernel) Eval(g *graph.Graph) error {
	for i := range k.builtinCode {
		var err error
		switch k.builtinCode[i] {
		case graph.OpAdd, graph.OpSub:
			err = k.evalAddSub(g, i)
		case graph.OpFullyConnected:
			err = k.evalFullyConnected(g, i)
		default:
			err = fmt.Errorf("recorded op %s has no evaluator", k.builtinCode[i])
		}
		if err != nil {
			return fmt.Errorf("%s node %d: %w", k.builtinCode[i], i, err)
		}
	}
	return nil
}

// evalAddSub computes output[j] = a[j] +/- b[j] position-wise. Exactly two
// inputs and one output of identical element count; no broadcasting, no
// activation clamping. Nothing is written on failure.
func (k *Kernel) evalAddSub(g *graph.Graph, idx int) error {
	if len(k.inputs[idx]) != 2 || len(k.outputs[idx]) != 1 {
		return fmt.Errorf("want 2 inputs and 1 output, got %d and %d: %w",
			len(k.inputs[idx]), len(k.outputs[idx]), delegate.ErrDelegate)
	}

	a, err := g.Tensor(k.inputs[idx][0])
	if err != nil {
		return err
	}
	b, err := g.Tensor(k.inputs[idx][1])
	if err != nil {
		return err
	}
	out, err := g.Tensor(k.outputs[idx][0])
	if err != nil {
		return err
	}

	if a.NumElements() != b.NumElements() || a.NumElements() != out.NumElements() {
		return fmt.Errorf("element count mismatch %d, %d -> %d: %w",
			a.NumElements(), b.NumElements(), out.NumElements(), delegate.ErrDelegate)
	}
	if a.DType() != tensor.Float32 || b.DType() != tensor.Float32 || out.DType() != tensor.Float32 {
		return fmt.Errorf("operand dtype %s/%s -> %s: %w",
			a.DType(), b.DType(), out.DType(), delegate.ErrUnsupportedType)
	}

	as, bs, dst := a.AsFloat32(), b.AsFloat32(), out.AsFloat32()
	if k.builtinCode[idx] == graph.OpAdd {
		for j := range as {
			dst[j] = as[j] + bs[j]
		}
	} else {
		for j := range as {
			dst[j] = as[j] - bs[j]
		}
	}
	return nil
}

// evalFullyConnected resolves input, weights, optional bias and output.
// An empty output is a successful no-op; non-float32 weights are an
// unsupported-type failure. The float32 path intentionally performs no
// computation and leaves the output untouched: this delegate is test
// scaffolding for the registration contract, not a compute backend.
func (k *Kernel) evalFullyConnected(g *graph.Graph, idx int) error {
	if len(k.inputs[idx]) < 2 || len(k.outputs[idx]) != 1 {
		return fmt.Errorf("want input, weights and 1 output, got %d inputs and %d outputs: %w",
			len(k.inputs[idx]), len(k.outputs[idx]), delegate.ErrDelegate)
	}

	if _, err := g.Tensor(k.inputs[idx][fcInputTensor]); err != nil {
		return err
	}
	weights, err := g.Tensor(k.inputs[idx][fcWeightsTensor])
	if err != nil {
		return err
	}
	if len(k.inputs[idx]) > fcBiasTensor {
		// Bias is optional; absence is not an error.
		if _, err := g.Tensor(k.inputs[idx][fcBiasTensor]); err != nil {
			return err
		}
	}
	out, err := g.Tensor(k.outputs[idx][0])
	if err != nil {
		return err
	}

	// Do nothing if expected output is empty.
	if out.NumElements() == 0 {
		return nil
	}

	if weights.DType() != tensor.Float32 {
		return fmt.Errorf("weights dtype %s: %w", weights.DType(), delegate.ErrUnsupportedType)
	}

	return nil
}
