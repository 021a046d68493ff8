// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/AforAmpere/sailfish/euler"
)

// Kernels are generic over the reconstruction scheme and the Runge-Kutta
// blending flag: both are type parameters instantiated with zero-size
// types, and the kernel tables in solver.go hold one instantiation per
// combination, so no configuration flag is passed to a kernel. The four
// types share the underlying type struct{}, so the Go compiler builds one
// shared body per kernel and calls slope and blend through the
// instantiation's dictionary: the PCM kernels still call a slope method
// (returning zero), and the blend test is a call and a branch in the inner
// loop. Kernels allocate nothing and write only the cell's own output slot.

// reconstructor produces the limited slope of one state component
type reconstructor interface {
	// slope returns the limited slope about offset c, with stride s
	// between axis neighbors
	slope(p []float64, c, s int, theta float64) float64
}

// pcmRecon is piecewise-constant reconstruction: zero slope
type pcmRecon struct{}

// plmRecon is piecewise-linear reconstruction with the minmod limiter
type plmRecon struct{}

func (pcmRecon) slope(p []float64, c, s int, theta float64) float64 {
	return 0
}

func (plmRecon) slope(p []float64, c, s int, theta float64) float64 {
	return euler.PlmMinmod(p[c-s], p[c], p[c+s], theta)
}

// rkflag switches the Runge-Kutta blend on or off
type rkflag interface{ blend() bool }

type rkOn struct{}
type rkOff struct{}

func (rkOn) blend() bool  { return true }
func (rkOff) blend() bool { return false }

// computeFluxes1d fills f with one Godunov flux per face: f[i+1] holds the
// flux through the face between cells i and i+1, for i in [1, ni-2)
func computeFluxes1d[R reconstructor](bk Backend, p, f []float64, theta float64, ni, nq int) {
	var rec R
	bk.Launch1(1, ni-2, func(i int) {
		var pm, pp [euler.MaxNq]float64
		c := (i + 0) * nq
		r := (i + 1) * nq
		for q := 0; q < nq; q++ {
			pm[q] = p[c+q] + 0.5*rec.slope(p, c+q, nq, theta)
			pp[q] = p[r+q] - 0.5*rec.slope(p, r+q, nq, theta)
		}
		euler.RiemannHLLE(pm[:nq], pp[:nq], f[r:r+nq], 1)
	})
}

// updatePrimPerFace1d applies the flux-divergence update in place from the
// face array f, for interior cells [2, ni-2)
func updatePrimPerFace1d[RK rkflag](bk Backend, p, f, urk []float64, dt, dx, rk float64, ni, nq int) {
	var flg RK
	bk.Launch1(2, ni-2, func(i int) {
		var uc [euler.MaxNq]float64
		c := i * nq
		euler.PrimToCons(p[c:c+nq], uc[:nq])
		for q := 0; q < nq; q++ {
			uc[q] -= (f[c+nq+q] - f[c+q]) * dt / dx
			if flg.blend() {
				uc[q] *= 1.0 - rk
				uc[q] += rk * urk[c+q]
			}
		}
		euler.ConsToPrim(uc[:nq], p[c:c+nq])
	})
}

// updatePrimPerZone1d is the fused 1d kernel: each interior cell
// reconstructs both of its face states, solves both Riemann problems
// locally, and writes the updated primitive to the independent output
// buffer pwr
func updatePrimPerZone1d[R reconstructor, RK rkflag](bk Backend, prd, pwr, urk []float64, dt, dx, rk, theta float64, ni, nq int) {
	var rec R
	var flg RK
	bk.Launch1(2, ni-2, func(i int) {
		var uc, fm, fp, plp, pcm, pcp, prm [euler.MaxNq]float64
		l := (i - 1) * nq
		c := (i + 0) * nq
		r := (i + 1) * nq
		for q := 0; q < nq; q++ {
			gl := rec.slope(prd, l+q, nq, theta)
			gc := rec.slope(prd, c+q, nq, theta)
			gr := rec.slope(prd, r+q, nq, theta)
			plp[q] = prd[l+q] + 0.5*gl
			pcm[q] = prd[c+q] - 0.5*gc
			pcp[q] = prd[c+q] + 0.5*gc
			prm[q] = prd[r+q] - 0.5*gr
		}
		euler.RiemannHLLE(plp[:nq], pcm[:nq], fm[:nq], 1)
		euler.RiemannHLLE(pcp[:nq], prm[:nq], fp[:nq], 1)
		euler.PrimToCons(prd[c:c+nq], uc[:nq])
		for q := 0; q < nq; q++ {
			uc[q] -= (fp[q] - fm[q]) * dt / dx
			if flg.blend() {
				uc[q] *= 1.0 - rk
				uc[q] += rk * urk[c+q]
			}
		}
		euler.ConsToPrim(uc[:nq], pwr[c:c+nq])
	})
}

// updatePrimPerZone2d is the fused 2d kernel: each interior cell
// reconstructs its four face states and solves four Riemann problems.
// Corners receive no special treatment; the general rule covers them
func updatePrimPerZone2d[R reconstructor, RK rkflag](bk Backend, prd, pwr, urk []float64, dt, dx, rk, theta float64, ni, nj, nq int) {
	var rec R
	var flg RK
	si := nj * nq
	sj := nq
	bk.Launch2(2, ni-2, 2, nj-2, func(i, j int) {
		var ucc, fm, fp, gm, gp [euler.MaxNq]float64
		var pilp, picm, picp, pirm [euler.MaxNq]float64
		var pjlp, pjcm, pjcp, pjrm [euler.MaxNq]float64
		cc := i*si + j*sj
		lc := cc - si
		rc := cc + si
		cl := cc - sj
		cr := cc + sj
		for q := 0; q < nq; q++ {
			gil := rec.slope(prd, lc+q, si, theta)
			gic := rec.slope(prd, cc+q, si, theta)
			gir := rec.slope(prd, rc+q, si, theta)
			gjl := rec.slope(prd, cl+q, sj, theta)
			gjc := rec.slope(prd, cc+q, sj, theta)
			gjr := rec.slope(prd, cr+q, sj, theta)
			pilp[q] = prd[lc+q] + 0.5*gil
			picm[q] = prd[cc+q] - 0.5*gic
			picp[q] = prd[cc+q] + 0.5*gic
			pirm[q] = prd[rc+q] - 0.5*gir
			pjlp[q] = prd[cl+q] + 0.5*gjl
			pjcm[q] = prd[cc+q] - 0.5*gjc
			pjcp[q] = prd[cc+q] + 0.5*gjc
			pjrm[q] = prd[cr+q] - 0.5*gjr
		}
		euler.RiemannHLLE(pilp[:nq], picm[:nq], fm[:nq], 1)
		euler.RiemannHLLE(picp[:nq], pirm[:nq], fp[:nq], 1)
		euler.RiemannHLLE(pjlp[:nq], pjcm[:nq], gm[:nq], 2)
		euler.RiemannHLLE(pjcp[:nq], pjrm[:nq], gp[:nq], 2)
		euler.PrimToCons(prd[cc:cc+nq], ucc[:nq])
		for q := 0; q < nq; q++ {
			ucc[q] -= (fp[q] - fm[q] + gp[q] - gm[q]) * dt / dx
			if flg.blend() {
				ucc[q] *= 1.0 - rk
				ucc[q] += rk * urk[cc+q]
			}
		}
		euler.ConsToPrim(ucc[:nq], pwr[cc:cc+nq])
	})
}

// primToConsArray converts the whole primitive array to conserved form,
// one cell per worker
func primToConsArray(bk Backend, p, u []float64, nq int) {
	bk.Launch1(0, len(p)/nq, func(i int) {
		c := i * nq
		euler.PrimToCons(p[c:c+nq], u[c:c+nq])
	})
}
