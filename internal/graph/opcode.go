// Package graph provides the computation-graph model the Lattice runtime
// executes: a flat tensor table plus an ordered list of nodes that reference
// tensors by slot index.
package graph

// OpCode identifies which builtin operation a node performs.
type OpCode int32

// Builtin operations.
//
// Not every op has a host kernel; the set exists so capability filtering by
// delegates is a real decision, not a tautology.
const (
	OpAdd OpCode = iota
	OpSub
	OpMul
	OpDiv
	OpFullyConnected
	OpMatMul
	OpRelu
)

// OpNone is the sentinel "no operation" code. Delegate options use it to
// mean "claim nothing".
const OpNone OpCode = -1

// String returns a human-readable op name.
func (op OpCode) String() string {
	switch op {
	case OpNone:
		return "NONE"
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpMul:
		return "MUL"
	case OpDiv:
		return "DIV"
	case OpFullyConnected:
		return "FULLY_CONNECTED"
	case OpMatMul:
		return "MATMUL"
	case OpRelu:
		return "RELU"
	default:
		return "UNKNOWN"
	}
}
