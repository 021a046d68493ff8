// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srhd

import (
	"github.com/AforAmpere/sailfish/fvm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Solver drives the srhd kernels over a ring of patches. Before each
// stage, guard zones are exchanged with the neighbor patches: wrap-around
// under periodic boundaries, zero-gradient extrapolation at the outermost
// ends under outflow
type Solver struct {
	BoundaryCondition string
	NumGuard          int
	NumCons           int
	NumZones          int // interior zones of the whole domain
	Patches           []*Patch
}

// NewSolver subdivides the primitive field over numPatches patches.
// primitive holds the interior zones only; guards are created here and
// filled by the first exchange
func NewSolver(primitive []float64, time float64, numPatches int, boundaryCondition, coordinates string) (o *Solver, err error) {
	if boundaryCondition != "periodic" && boundaryCondition != "outflow" {
		return nil, fvm.Errf(fvm.BoundaryPolicyInvalid, "boundary condition must be 'periodic | outflow', got %q", boundaryCondition)
	}
	var coords int
	switch coordinates {
	case "cartesian":
		coords = Cartesian
	case "spherical":
		coords = Spherical
	default:
		return nil, fvm.Errf(fvm.UnsupportedConfiguration, "coordinates must be 'cartesian | spherical', got %q", coordinates)
	}

	o = new(Solver)
	o.BoundaryCondition = boundaryCondition
	o.NumGuard = NG
	o.NumCons = NQ
	o.NumZones = len(primitive) / NQ
	dx := 1.0 / float64(o.NumZones)

	if chk.Verbose {
		io.Pf("> initiate with time=%0.4f\n", time)
		io.Pf("> subdivide grid over %d patches\n", numPatches)
		io.Pf("> use %s boundary condition\n", boundaryCondition)
		io.Pf("> use %s coordinates\n", coordinates)
	}

	for _, rng := range Subdivide(o.NumZones, numPatches) {
		a, b := rng[0], rng[1]
		prim := make([]float64, (b-a+2*NG)*NQ)
		copy(prim[NG*NQ:(NG+b-a)*NQ], primitive[a*NQ:b*NQ])
		o.Patches = append(o.Patches, NewPatch(a-NG, b+NG, dx, prim, time, coords))
	}
	return
}

// AdvanceRK exchanges guards and then runs one stage on every patch
func (o *Solver) AdvanceRK(rkParam, dt float64) (err error) {
	np := len(o.Patches)
	for i := 0; i < np; i++ {
		pl := o.Patches[(i+np-1)%np]
		p0 := o.Patches[i]
		pr := o.Patches[(i+np+1)%np]
		o.setBC(pl.Primitive1, p0.Primitive1, pr.Primitive1, i)
		o.setBC(pl.Conserved1, p0.Conserved1, pr.Conserved1, i)
	}
	for _, patch := range o.Patches {
		err = patch.AdvanceRK(rkParam, dt)
		if err != nil {
			return
		}
	}
	return
}

// setBC fills the guard zones of a0 from the interior edges of the
// neighbor arrays al and ar, or from a0's own edges at the outermost
// ends under outflow
func (o *Solver) setBC(al, a0, ar []float64, index int) {
	ng := o.NumGuard * NQ
	n := len(a0)
	switch o.BoundaryCondition {
	case "periodic":
		copy(a0[:ng], al[len(al)-2*ng:len(al)-ng])
		copy(a0[n-ng:], ar[ng:2*ng])
	case "outflow":
		if index == 0 {
			copy(a0[:ng], a0[ng:2*ng])
		} else {
			copy(a0[:ng], al[len(al)-2*ng:len(al)-ng])
		}
		if index == len(o.Patches)-1 {
			copy(a0[n-ng:], a0[n-2*ng:n-ng])
		} else {
			copy(a0[n-ng:], ar[ng:2*ng])
		}
	}
}

// NewTimestep freezes the reference state of every patch
func (o *Solver) NewTimestep() {
	for _, patch := range o.Patches {
		patch.NewTimestep()
	}
}

// Primitive assembles and returns the interior primitive field of the
// whole domain
func (o *Solver) Primitive() (p []float64, err error) {
	p = make([]float64, o.NumZones*NQ)
	np := len(o.Patches)
	for k, rng := range Subdivide(o.NumZones, np) {
		a, b := rng[0], rng[1]
		pp, err := o.Patches[k].Primitive()
		if err != nil {
			return nil, err
		}
		copy(p[a*NQ:b*NQ], pp[NG*NQ:(NG+b-a)*NQ])
	}
	return
}

// Time returns the current simulation time
func (o *Solver) Time() float64 {
	return o.Patches[0].Time
}
