// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

// PerFace1d solves the 1d Euler equations with per-face fluxing: a flux
// kernel solves each face's Riemann problem exactly once into the face
// array, then an update kernel applies the flux divergence in place.
// Best when arithmetic intensity matters
type PerFace1d struct {
	bk     Backend
	scheme Scheme
	flux   fluxKernel1d
	update faceKernel1d
	ni, nq int
	dx     float64
	p      []float64 // primitive field, updated in place
	f      []float64 // f[i+1] holds the flux through face (i, i+1)
	urk    []float64 // conserved state frozen at the start of the step
	stop   func() bool
}

// register solver
func init() {
	solverallocators["per_face"] = func(bk Backend, s Scheme, p []float64, ni, nj int, dx float64, stop func() bool) (Solver, error) {
		if nj > 1 {
			return nil, Errf(UnsupportedConfiguration, "only fluxing=per_zone is supported in 2d")
		}
		nq := len(p) / ni
		o := &PerFace1d{bk: bk, scheme: s, ni: ni, nq: nq, dx: dx, stop: stop}
		o.flux = fluxKernels1d[s.Plm]
		o.update = faceKernels1d[s.Rk]
		o.p = bk.Alloc(len(p))
		o.f = bk.Alloc(len(p))
		copy(o.p, p)
		if s.Rk {
			o.urk = bk.Alloc(len(p))
		}
		return o, nil
	}
}

// Advance performs one step: per stage, fluxes then in-place update
func (o *PerFace1d) Advance(dt float64) (err error) {
	if o.scheme.Rk {
		primToConsArray(o.bk, o.p, o.urk, o.nq)
		o.bk.Sync()
	}
	for _, rk := range o.scheme.Stages {
		if o.stop() {
			return Errf(Interrupt, "interrupted before stage")
		}
		o.flux(o.bk, o.p, o.f, o.scheme.Theta, o.ni, o.nq)
		o.bk.Sync()
		o.update(o.bk, o.p, o.f, o.urk, dt, o.dx, rk, o.ni, o.nq)
		o.bk.Sync()
		if err = checkPositive(o.p, o.ni, 1, o.nq); err != nil {
			return
		}
	}
	return
}

// Primitive returns the live solution buffer
func (o *PerFace1d) Primitive() []float64 { return o.p }

// Shape returns the array dimensions
func (o *PerFace1d) Shape() (ni, nj, nq int) { return o.ni, 1, o.nq }
