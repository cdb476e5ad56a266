package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/lattice-ml/lattice/delegate/dummy"
	"github.com/lattice-ml/lattice/graph"
	"github.com/lattice-ml/lattice/interpreter"
	"github.com/lattice-ml/lattice/tensor"
)

// opNames maps flag values to op codes for --delegate-ops.
var opNames = map[string]graph.OpCode{
	"ADD":             graph.OpAdd,
	"SUB":             graph.OpSub,
	"MUL":             graph.OpMul,
	"DIV":             graph.OpDiv,
	"FULLY_CONNECTED": graph.OpFullyConnected,
	"MATMUL":          graph.OpMatMul,
	"RELU":            graph.OpRelu,
}

func newRunCommand() *cobra.Command {
	var delegateOps []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the demo graph and run one inference pass",
		Long: `Build a small demo graph (ADD, SUB, FULLY_CONNECTED), optionally apply
the reference delegate to the given ops, and run one inference pass.

With no --delegate-ops the delegate uses its defaults and claims nothing,
so every node runs on the builtin CPU kernels.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOps(delegateOps)
			if err != nil {
				return err
			}
			return runDemo(ops)
		},
	}

	cmd.Flags().StringSliceVar(&delegateOps, "delegate-ops", nil,
		"ops the reference delegate may claim (e.g. ADD,SUB)")
	return cmd
}

func parseOps(names []string) ([]graph.OpCode, error) {
	var ops []graph.OpCode
	for _, name := range names {
		op, ok := opNames[strings.ToUpper(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown op %q", name)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// runDemo builds sum = a + b, diff = sum - c, out = diff @ wᵀ + bias and
// invokes the graph once.
func runDemo(delegateOps []graph.OpCode) error {
	g := graph.New()

	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{1, 4})
	if err != nil {
		return err
	}
	b, err := tensor.FromSlice([]float32{10, 20, 30, 40}, tensor.Shape{1, 4})
	if err != nil {
		return err
	}
	c, err := tensor.FromSlice([]float32{1, 1, 1, 1}, tensor.Shape{1, 4})
	if err != nil {
		return err
	}
	weights, err := tensor.FromSlice([]float32{
		1, 0, 0, 1,
		0, 1, 1, 0,
	}, tensor.Shape{2, 4})
	if err != nil {
		return err
	}
	bias, err := tensor.FromSlice([]float32{0.5, -0.5}, tensor.Shape{2})
	if err != nil {
		return err
	}

	sum, err := tensor.NewRaw(tensor.Shape{1, 4}, tensor.Float32)
	if err != nil {
		return err
	}
	diff, err := tensor.NewRaw(tensor.Shape{1, 4}, tensor.Float32)
	if err != nil {
		return err
	}
	out, err := tensor.NewRaw(tensor.Shape{1, 2}, tensor.Float32)
	if err != nil {
		return err
	}

	ia, ib, ic := g.AddTensor(a), g.AddTensor(b), g.AddTensor(c)
	iw, ibias := g.AddTensor(weights), g.AddTensor(bias)
	isum, idiff, iout := g.AddTensor(sum), g.AddTensor(diff), g.AddTensor(out)

	if _, err := g.AddNode(graph.OpAdd, []int{ia, ib}, []int{isum}); err != nil {
		return err
	}
	if _, err := g.AddNode(graph.OpSub, []int{isum, ic}, []int{idiff}); err != nil {
		return err
	}
	if _, err := g.AddNode(graph.OpFullyConnected, []int{idiff, iw, ibias}, []int{iout}); err != nil {
		return err
	}
	g.SetInputs(ia, ib, ic)
	g.SetOutputs(iout)

	in := interpreter.New(g)
	d := dummy.New(&dummy.Options{AllowedOps: delegateOps})
	if err := in.ModifyGraphWithDelegate(d); err != nil {
		return fmt.Errorf("applying delegate: %w", err)
	}
	klog.V(1).InfoS("graph compiled", "nodes", g.NumNodes(), "delegatedNodes", in.DelegatedNodes())

	if err := in.Invoke(); err != nil {
		return fmt.Errorf("invoking graph: %w", err)
	}

	fmt.Printf("delegated nodes: %d/%d\n", in.DelegatedNodes(), g.NumNodes())
	fmt.Printf("sum  = %v\n", sum.AsFloat32())
	fmt.Printf("diff = %v\n", diff.AsFloat32())
	fmt.Printf("out  = %v\n", out.AsFloat32())
	return nil
}
