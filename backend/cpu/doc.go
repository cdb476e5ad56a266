// Copyright 2025 The Lattice Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the builtin CPU kernels of the Lattice runtime.
//
// # Overview
//
// This package implements reference kernels with:
//   - Pure Go implementation (no CGO)
//   - Same-shape elementwise ADD/SUB/MUL/DIV (no broadcasting)
//   - Naive 2D MATMUL and FULLY_CONNECTED
//   - Float32, Float64 and Int32 elementwise support
//
// Kernels write into a destination tensor resolved from the graph's flat
// tensor table; they never allocate outputs. Unsupported shape or dtype
// combinations are reported as errors, which the interpreter surfaces to
// its caller.
//
// # Thread Safety
//
// The backend holds no mutable state. Concurrent use over disjoint tensors
// is safe; the runtime guarantees non-overlapping access by construction of
// the graph.
package cpu
