// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

// State is a snapshot of the solution handed to callers (reporters,
// checkpoint writers, plotting). The solver exclusively owns the grid
// buffers; a State is valid until the next Advance
type State struct {
	Iteration int     // number of completed steps
	Time      float64 // current simulation time
	bk        Backend
	prim      []float64
	ni        int
	nj        int
	nq        int
}

// Primitive returns a host copy of the primitive field
func (o *State) Primitive() []float64 { return o.bk.Get(o.prim) }

// Shape returns the array dimensions
func (o *State) Shape() (ni, nj, nq int) { return o.ni, o.nj, o.nq }

// TotalZones returns the number of zones, guards included
func (o *State) TotalZones() int { return o.ni * o.nj }
