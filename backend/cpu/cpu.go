// Copyright 2025 The Lattice Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import internalcpu "github.com/lattice-ml/lattice/internal/backend/cpu"

// Backend represents the builtin CPU kernel implementation the runtime uses
// for nodes no delegate has claimed.
type Backend = internalcpu.CPUBackend

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
