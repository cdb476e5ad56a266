// Copyright 2025 The Lattice Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dummy exposes the reference delegate. It claims only elementwise
// ADD/SUB and FULLY_CONNECTED, and its FULLY_CONNECTED kernel is an
// intentional no-op stub: the package exists to exercise and demonstrate the
// delegate-registration contract, not to run models.
//
// Example:
//
//	d := dummy.New(&dummy.Options{
//	    AllowedOps: []graph.OpCode{graph.OpAdd, graph.OpSub},
//	})
//	err := interp.ModifyGraphWithDelegate(d)
package dummy

import (
	internaldummy "github.com/lattice-ml/lattice/internal/delegate/dummy"

	"github.com/lattice-ml/lattice/delegate"
)

// Options configures which ops the delegate is allowed to claim.
type Options = internaldummy.Options

// Delegate is the reference backend.
type Delegate = internaldummy.Delegate

// Compile-time check that Delegate implements delegate.Delegate.
var _ delegate.Delegate = (*Delegate)(nil)

// New creates a delegate instance. A nil opts uses DefaultOptions, which
// claims no nodes at all.
func New(opts *Options) *Delegate {
	return internaldummy.New(opts)
}

// DefaultOptions returns the support-nothing configuration.
func DefaultOptions() Options {
	return internaldummy.DefaultOptions()
}
