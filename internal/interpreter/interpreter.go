// Package interpreter drives graph execution for the Lattice runtime: builtin
// CPU kernels by default, with selected node clusters offloaded to a delegate.
package interpreter

import (
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/lattice-ml/lattice/internal/backend/cpu"
	"github.com/lattice-ml/lattice/internal/delegate"
	"github.com/lattice-ml/lattice/internal/graph"
	"github.com/lattice-ml/lattice/internal/tensor"
)

// ErrAlreadyDelegated is returned when a second delegate is applied to the
// same interpreter. Graph partitioning happens once per compile.
var ErrAlreadyDelegated = errors.New("interpreter already has a delegate applied")

// step is one unit of the execution plan: either a single builtin node or a
// delegated cluster evaluated through its kernel.
type step struct {
	node   int // Builtin node index; valid when kernel == nil
	kernel delegate.Kernel
	nodes  []int // Cluster node indices; informational once Init has run
}

// Interpreter executes a graph's nodes in order, synchronously, on the
// calling goroutine. It owns the execution plan but not the tensors; those
// stay in the graph's flat table and are written in place each pass.
type Interpreter struct {
	graph   *graph.Graph
	backend *cpu.CPUBackend
	plan    []step
	applied string // Name of the applied delegate, "" if none
}

// New creates an interpreter for g with the default all-builtin plan.
func New(g *graph.Graph) *Interpreter {
	in := &Interpreter{
		graph:   g,
		backend: cpu.New(),
	}
	for i := 0; i < g.NumNodes(); i++ {
		in.plan = append(in.plan, step{node: i})
	}
	return in
}

// Graph returns the graph this interpreter executes.
func (in *Interpreter) Graph() *graph.Graph {
	return in.graph
}

// ModifyGraphWithDelegate partitions the graph against d's capability filter,
// builds one kernel per contiguous cluster of claimed nodes and initializes
// it. A kernel Init failure aborts the compile and leaves the plan fully
// builtin. At most one delegate may be applied per interpreter.
func (in *Interpreter) ModifyGraphWithDelegate(d delegate.Delegate) error {
	if in.applied != "" {
		return fmt.Errorf("%w: %s", ErrAlreadyDelegated, in.applied)
	}

	clusters := delegate.Partition(in.graph, d)
	if len(clusters) == 0 {
		klog.V(2).InfoS("delegate claimed no nodes", "delegate", d.Name(), "nodes", in.graph.NumNodes())
		return nil
	}

	delegated := make(map[int]bool)
	kernels := make([]step, 0, len(clusters))
	for _, cluster := range clusters {
		k := d.NewKernel()
		if err := k.Init(in.graph, cluster); err != nil {
			return fmt.Errorf("delegate %s: initializing kernel for nodes %v: %w", d.Name(), cluster, err)
		}
		kernels = append(kernels, step{kernel: k, nodes: cluster})
		for _, n := range cluster {
			delegated[n] = true
		}
	}

	// Rebuild the plan: delegated clusters replace their nodes in place.
	plan := make([]step, 0, in.graph.NumNodes())
	next := 0
	for i := 0; i < in.graph.NumNodes(); i++ {
		if !delegated[i] {
			plan = append(plan, step{node: i})
			continue
		}
		if next < len(kernels) && kernels[next].nodes[0] == i {
			plan = append(plan, kernels[next])
			next++
		}
	}

	in.plan = plan
	in.applied = d.Name()
	klog.V(2).InfoS("applied delegate", "delegate", d.Name(),
		"clusters", len(clusters), "delegatedNodes", len(delegated), "totalNodes", in.graph.NumNodes())
	return nil
}

// DelegatedNodes returns how many nodes the applied delegate executes.
func (in *Interpreter) DelegatedNodes() int {
	n := 0
	for _, s := range in.plan {
		if s.kernel != nil {
			n += len(s.nodes)
		}
	}
	return n
}

// Invoke runs one inference pass over the whole plan. The first failing node
// or cluster aborts the pass; nothing is retried.
func (in *Interpreter) Invoke() error {
	for _, s := range in.plan {
		if s.kernel != nil {
			if err := s.kernel.Eval(in.graph); err != nil {
				return fmt.Errorf("delegate %s, cluster %v: %w", in.applied, s.nodes, err)
			}
			continue
		}
		if err := in.evalBuiltin(s.node); err != nil {
			return fmt.Errorf("node %d: %w", s.node, err)
		}
	}
	return nil
}

// evalBuiltin runs one node on the builtin CPU kernels.
func (in *Interpreter) evalBuiltin(nodeIndex int) error {
	node, err := in.graph.Node(nodeIndex)
	if err != nil {
		return err
	}

	switch node.Op {
	case graph.OpAdd, graph.OpSub, graph.OpMul, graph.OpDiv, graph.OpMatMul:
		dst, a, b, err := in.resolveBinary(node)
		if err != nil {
			return err
		}
		switch node.Op {
		case graph.OpAdd:
			return in.backend.Add(dst, a, b)
		case graph.OpSub:
			return in.backend.Sub(dst, a, b)
		case graph.OpMul:
			return in.backend.Mul(dst, a, b)
		case graph.OpDiv:
			return in.backend.Div(dst, a, b)
		default:
			return in.backend.MatMul(dst, a, b)
		}

	case graph.OpRelu:
		if len(node.Inputs) != 1 || len(node.Outputs) != 1 {
			return fmt.Errorf("%s: want 1 input and 1 output, got %d and %d", node.Op, len(node.Inputs), len(node.Outputs))
		}
		x, err := in.graph.Tensor(node.Inputs[0])
		if err != nil {
			return err
		}
		dst, err := in.graph.Tensor(node.Outputs[0])
		if err != nil {
			return err
		}
		return in.backend.Relu(dst, x)

	case graph.OpFullyConnected:
		return in.evalBuiltinFullyConnected(node)

	default:
		return fmt.Errorf("no builtin kernel for op %s", node.Op)
	}
}

func (in *Interpreter) resolveBinary(node *graph.Node) (dst, a, b *tensor.RawTensor, err error) {
	if len(node.Inputs) != 2 || len(node.Outputs) != 1 {
		return nil, nil, nil, fmt.Errorf("%s: want 2 inputs and 1 output, got %d and %d",
			node.Op, len(node.Inputs), len(node.Outputs))
	}
	if a, err = in.graph.Tensor(node.Inputs[0]); err != nil {
		return nil, nil, nil, err
	}
	if b, err = in.graph.Tensor(node.Inputs[1]); err != nil {
		return nil, nil, nil, err
	}
	if dst, err = in.graph.Tensor(node.Outputs[0]); err != nil {
		return nil, nil, nil, err
	}
	return dst, a, b, nil
}

func (in *Interpreter) evalBuiltinFullyConnected(node *graph.Node) error {
	if len(node.Inputs) < 2 || len(node.Inputs) > 3 || len(node.Outputs) != 1 {
		return fmt.Errorf("%s: want 2 or 3 inputs and 1 output, got %d and %d",
			node.Op, len(node.Inputs), len(node.Outputs))
	}

	x, err := in.graph.Tensor(node.Inputs[0])
	if err != nil {
		return err
	}
	weights, err := in.graph.Tensor(node.Inputs[1])
	if err != nil {
		return err
	}
	var bias *tensor.RawTensor
	if len(node.Inputs) == 3 {
		if bias, err = in.graph.Tensor(node.Inputs[2]); err != nil {
			return err
		}
	}
	dst, err := in.graph.Tensor(node.Outputs[0])
	if err != nil {
		return err
	}
	return in.backend.FullyConnected(dst, x, weights, bias)
}
