// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

// PerZone1d solves the 1d Euler equations with per-zone fluxing: one fused
// kernel in which each cell computes both of its bounding-face fluxes.
// Riemann problems are solved with two-fold redundancy, halving global
// reads of the primitive field; preferred on bandwidth-bound devices
type PerZone1d struct {
	bk     Backend
	scheme Scheme
	kern   zoneKernel1d
	ni, nq int
	dx     float64
	prd    []float64 // read-from primitive
	pwr    []float64 // write-to primitive
	urk    []float64 // conserved state frozen at the start of the step
	stop   func() bool
}

// PerZone2d is the 2d flavor of PerZone1d: four face fluxes per cell.
// It is the only fluxing strategy in 2d
type PerZone2d struct {
	bk         Backend
	scheme     Scheme
	kern       zoneKernel2d
	ni, nj, nq int
	dx         float64
	prd        []float64
	pwr        []float64
	urk        []float64
	stop       func() bool
}

// register solver
func init() {
	solverallocators["per_zone"] = func(bk Backend, s Scheme, p []float64, ni, nj int, dx float64, stop func() bool) (Solver, error) {
		nq := len(p) / ni / nj
		if nj > 1 {
			o := &PerZone2d{bk: bk, scheme: s, ni: ni, nj: nj, nq: nq, dx: dx, stop: stop}
			o.kern = zoneKernels2d[kernelKey{s.Plm, s.Rk}]
			o.prd = bk.Alloc(len(p))
			o.pwr = bk.Alloc(len(p))
			copy(o.prd, p)
			copy(o.pwr, p)
			if s.Rk {
				o.urk = bk.Alloc(len(p))
			}
			return o, nil
		}
		o := &PerZone1d{bk: bk, scheme: s, ni: ni, nq: nq, dx: dx, stop: stop}
		o.kern = zoneKernels1d[kernelKey{s.Plm, s.Rk}]
		o.prd = bk.Alloc(len(p))
		o.pwr = bk.Alloc(len(p))
		copy(o.prd, p)
		copy(o.pwr, p)
		if s.Rk {
			o.urk = bk.Alloc(len(p))
		}
		return o, nil
	}
}

// Advance performs one step. The guard cells of pwr are pre-seeded by the
// construction-time copy and by each swap, so cells the kernel never
// writes keep their boundary values
func (o *PerZone1d) Advance(dt float64) (err error) {
	if o.scheme.Rk {
		primToConsArray(o.bk, o.prd, o.urk, o.nq)
		o.bk.Sync()
	}
	for _, rk := range o.scheme.Stages {
		if o.stop() {
			return Errf(Interrupt, "interrupted before stage")
		}
		o.kern(o.bk, o.prd, o.pwr, o.urk, dt, o.dx, rk, o.scheme.Theta, o.ni, o.nq)
		o.bk.Sync()
		if err = checkPositive(o.pwr, o.ni, 1, o.nq); err != nil {
			return // prd still holds the last good stage
		}
		o.prd, o.pwr = o.pwr, o.prd
	}
	return
}

// Primitive returns the live solution buffer
func (o *PerZone1d) Primitive() []float64 { return o.prd }

// Shape returns the array dimensions
func (o *PerZone1d) Shape() (ni, nj, nq int) { return o.ni, 1, o.nq }

// Advance performs one step (see PerZone1d.Advance)
func (o *PerZone2d) Advance(dt float64) (err error) {
	if o.scheme.Rk {
		primToConsArray(o.bk, o.prd, o.urk, o.nq)
		o.bk.Sync()
	}
	for _, rk := range o.scheme.Stages {
		if o.stop() {
			return Errf(Interrupt, "interrupted before stage")
		}
		o.kern(o.bk, o.prd, o.pwr, o.urk, dt, o.dx, rk, o.scheme.Theta, o.ni, o.nj, o.nq)
		o.bk.Sync()
		if err = checkPositive(o.pwr, o.ni, o.nj, o.nq); err != nil {
			return
		}
		o.prd, o.pwr = o.pwr, o.prd
	}
	return
}

// Primitive returns the live solution buffer
func (o *PerZone2d) Primitive() []float64 { return o.prd }

// Shape returns the array dimensions
func (o *PerZone2d) Shape() (ni, nj, nq int) { return o.ni, o.nj, o.nq }
