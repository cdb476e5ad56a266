// Copyright 2025 The Lattice Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package delegate exposes the plugin contract by which the Lattice runtime
// offloads selected graph nodes to an alternate execution backend.
//
// Implementations:
//   - delegate/dummy: reference delegate exercising the contract end to end
//
// A delegate answers the capability question per node, and builds one kernel
// per contiguous cluster of claimed nodes. Kernels record tensor slot indices
// at graph-compile time and evaluate the cluster every inference pass.
package delegate

import "github.com/lattice-ml/lattice/internal/delegate"

// Delegate is a backend plugin the runtime may offload graph nodes to.
type Delegate = delegate.Delegate

// Kernel evaluates one cluster of delegated nodes.
type Kernel = delegate.Kernel

// Common errors.
var (
	// ErrDelegate marks failures local to delegate execution.
	ErrDelegate = delegate.ErrDelegate

	// ErrUnsupportedType reports an operand element type the backend has no
	// kernel for.
	ErrUnsupportedType = delegate.ErrUnsupportedType
)
