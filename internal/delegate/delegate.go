// Package delegate defines the plugin contract by which the Lattice runtime
// offloads selected graph nodes to an alternate execution backend, and the
// partitioner that groups claimed nodes into clusters.
package delegate

import (
	"github.com/lattice-ml/lattice/internal/graph"
)

// Delegate is a backend plugin the runtime may offload graph nodes to.
//
// The runtime drives the whole lifecycle: it asks SupportsNode for every
// candidate node during graph compilation, partitions the claimed nodes into
// contiguous clusters, and builds one Kernel per cluster via NewKernel.
type Delegate interface {
	// Name identifies the delegate in logs and errors.
	Name() string

	// SupportsNode reports whether this backend claims the node at nodeIndex.
	// A delegate must only claim nodes its kernels actually implement for the
	// operand types present in the graph.
	SupportsNode(g *graph.Graph, nodeIndex int) bool

	// NewKernel returns a fresh evaluator for one cluster of claimed nodes.
	// Building a kernel never fails; all resolution happens in Kernel.Init.
	NewKernel() Kernel
}

// Kernel evaluates one cluster of delegated nodes.
//
// Lifecycle, driven entirely by the runtime: Init once per graph compile,
// Eval once per inference pass (repeatable), then dropped with the graph.
// Kernels are called from a single goroutine and must not retain tensor
// pointers across compiles; they record slot indices instead.
type Kernel interface {
	// Init resolves and records each cluster node's op code and input/output
	// tensor slot indices. An unresolvable node is fatal for the compile.
	Init(g *graph.Graph, nodes []int) error

	// Eval executes every recorded node in cluster order, reading declared
	// inputs and writing declared outputs in place. The first node failure
	// aborts the pass.
	Eval(g *graph.Graph) error
}

// Partition splits the graph's node list into maximal contiguous runs of
// nodes the delegate claims. Each returned cluster is a slice of node
// indices in execution order; unclaimed nodes separate clusters.
func Partition(g *graph.Graph, d Delegate) [][]int {
	var clusters [][]int
	var current []int

	for i := 0; i < g.NumNodes(); i++ {
		if d.SupportsNode(g, i) {
			current = append(current, i)
			continue
		}
		if len(current) > 0 {
			clusters = append(clusters, current)
			current = nil
		}
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}
