// Package dummy implements a reference delegate for the Lattice runtime.
//
// It exists to exercise the delegate-registration contract end to end, not to
// run models fast: it claims only elementwise ADD/SUB and FULLY_CONNECTED,
// and its FULLY_CONNECTED kernel is an intentional no-op stub. Use it as the
// template for real backends.
package dummy

import (
	"github.com/lattice-ml/lattice/internal/delegate"
	"github.com/lattice-ml/lattice/internal/graph"
	"github.com/lattice-ml/lattice/internal/tensor"
)

// implementedOps is the set of ops this delegate has evaluator code for.
// The capability filter must never claim anything outside this set.
var implementedOps = map[graph.OpCode]bool{
	graph.OpAdd:            true,
	graph.OpSub:            true,
	graph.OpFullyConnected: true,
}

// Options configures which ops the delegate is allowed to claim.
type Options struct {
	// AllowedOps is the allow-list the capability filter consults on top of
	// the implemented-op set. Empty means "support nothing unless overridden".
	AllowedOps []graph.OpCode
}

// DefaultOptions returns the support-nothing configuration: with an empty
// allow-list the capability filter accepts no nodes.
func DefaultOptions() Options {
	return Options{}
}

// Delegate is the reference backend. It satisfies delegate.Delegate.
type Delegate struct {
	allowed map[graph.OpCode]bool
}

// Compile-time check that Delegate implements delegate.Delegate.
var _ delegate.Delegate = (*Delegate)(nil)

// New creates a delegate instance. A nil opts uses DefaultOptions, which
// claims no nodes at all.
func New(opts *Options) *Delegate {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	allowed := make(map[graph.OpCode]bool, len(o.AllowedOps))
	for _, op := range o.AllowedOps {
		allowed[op] = true
	}
	return &Delegate{allowed: allowed}
}

// Name returns the delegate name.
func (d *Delegate) Name() string {
	return "dummy"
}

// SupportsNode claims a node iff its op is implemented here, the options
// allow it, and every input operand is float32. The dtype check keeps the
// claim set equal to what the kernels can actually evaluate.
func (d *Delegate) SupportsNode(g *graph.Graph, nodeIndex int) bool {
	node, err := g.Node(nodeIndex)
	if err != nil {
		return false
	}
	if !implementedOps[node.Op] || !d.allowed[node.Op] {
		return false
	}

	for _, slot := range node.Inputs {
		in, err := g.Tensor(slot)
		if err != nil {
			return false
		}
		if in.DType() != tensor.Float32 {
			return false
		}
	}
	return true
}

// NewKernel returns a fresh evaluator for one cluster. Never fails.
func (d *Delegate) NewKernel() delegate.Kernel {
	return &Kernel{}
}
