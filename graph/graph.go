// Copyright 2025 The Lattice Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph exposes the computation-graph model the Lattice runtime
// executes: a flat tensor table plus an ordered node list.
//
// Example:
//
//	g := graph.New()
//	ia := g.AddTensor(a)
//	ib := g.AddTensor(b)
//	iout := g.AddTensor(out)
//	g.AddNode(graph.OpAdd, []int{ia, ib}, []int{iout})
package graph

import "github.com/lattice-ml/lattice/internal/graph"

// OpCode identifies which builtin operation a node performs.
type OpCode = graph.OpCode

// Builtin operations.
const (
	OpNone           = graph.OpNone
	OpAdd            = graph.OpAdd
	OpSub            = graph.OpSub
	OpMul            = graph.OpMul
	OpDiv            = graph.OpDiv
	OpFullyConnected = graph.OpFullyConnected
	OpMatMul         = graph.OpMatMul
	OpRelu           = graph.OpRelu
)

// Node is one operation in the computation graph.
type Node = graph.Node

// Graph owns the flat tensor table and the ordered node list.
type Graph = graph.Graph

// New creates an empty graph.
func New() *Graph {
	return graph.New()
}
