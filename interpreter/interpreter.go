// Copyright 2025 The Lattice Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interpreter exposes the engine that executes Lattice graphs:
// builtin CPU kernels by default, with selected node clusters offloaded to a
// delegate.
//
// Example:
//
//	in := interpreter.New(g)
//	if err := in.ModifyGraphWithDelegate(d); err != nil {
//	    return err
//	}
//	if err := in.Invoke(); err != nil {
//	    return err
//	}
package interpreter

import (
	internalinterp "github.com/lattice-ml/lattice/internal/interpreter"

	"github.com/lattice-ml/lattice/graph"
)

// Interpreter executes a graph's nodes in order, synchronously.
type Interpreter = internalinterp.Interpreter

// ErrAlreadyDelegated is returned when a second delegate is applied to the
// same interpreter.
var ErrAlreadyDelegated = internalinterp.ErrAlreadyDelegated

// New creates an interpreter for g with the default all-builtin plan.
func New(g *graph.Graph) *Interpreter {
	return internalinterp.New(g)
}
