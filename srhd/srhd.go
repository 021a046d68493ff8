// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package srhd implements the special-relativistic 1d variant: conversions
// between primitive and conserved variables (with a Newton pressure solve),
// the HLLE flux with moving faces, geometric source terms for spherical
// coordinates, and the multi-patch Runge-Kutta advance. The domain may
// expand homologously through the scale factor a(t) = a0 + ȧ·t
package srhd

import (
	"math"

	"github.com/AforAmpere/sailfish/euler"
	"github.com/AforAmpere/sailfish/fvm"
)

// GamLaw is the relativistic adiabatic index
const GamLaw = 4.0 / 3.0

// NQ is the number of conserved quantities: (D, S, τ, D·s) from the
// primitives (ρ, γβ, p, s) where s is a passively advected scalar
const NQ = 4

// NG is the number of guard zones on each side of a patch
const NG = 2

// plmTheta is the limiter parameter of the reconstruction
const plmTheta = 1.5

// newtonIterMax bounds the pressure root find
const newtonIterMax = 50

// coordinate systems
const (
	Cartesian = 0
	Spherical = 1
)

// faceArea returns the area of the face at comoving coordinate x under
// scale factor a
func faceArea(coords int, a, x float64) float64 {
	if coords == Spherical {
		r := x * a
		return r * r
	}
	return 1.0
}

// cellVolume returns the proper volume between comoving faces x0 and x1
func cellVolume(coords int, a, x0, x1 float64) float64 {
	if coords == Spherical {
		r0 := x0 * a
		r1 := x1 * a
		return (r1*r1*r1 - r0*r0*r0) / 3.0
	}
	return (x1 - x0) * a
}

// primToConsZone converts one primitive state to conserved densities.
// rho*h is formed without dividing by rho so that zeroed guard states
// map to zeroed conserved states
func primToConsZone(p, u []float64) {
	rho := p[0]
	un := p[1]
	pre := p[2]
	w := math.Sqrt(1.0 + un*un)
	rhoh := rho + pre*GamLaw/(GamLaw-1.0)
	u[0] = rho * w
	u[1] = rhoh * w * un
	u[2] = rhoh*w*w - pre - rho*w
	u[3] = rho * w * p[3]
}

// fluxZone computes the physical flux of the conserved densities
func fluxZone(p, f []float64) {
	un := p[1]
	w := math.Sqrt(1.0 + un*un)
	vn := un / w
	pre := p[2]
	var u [NQ]float64
	primToConsZone(p, u[:])
	f[0] = u[0] * vn
	f[1] = u[1]*vn + pre
	f[2] = u[2]*vn + pre*vn
	f[3] = u[3] * vn
}

// soundSpeedSquared returns a² = γp/(ρh)
func soundSpeedSquared(p []float64) float64 {
	rhoh := p[0] + p[2]*GamLaw/(GamLaw-1.0)
	return GamLaw * p[2] / rhoh
}

// outerWavespeeds returns the extremal characteristic speeds of a state
func outerWavespeeds(p []float64) (am, ap float64) {
	a2 := soundSpeedSquared(p)
	un := p[1]
	uu := un * un
	vn := un / math.Sqrt(1.0+uu)
	vv := uu / (1.0 + uu)
	k0 := math.Sqrt(a2 * (1.0 - vv) * (1.0 - vv*a2 - vv*(1.0-a2)))
	am = (vn*(1.0-a2) - k0) / (1.0 - vv*a2)
	ap = (vn*(1.0-a2) + k0) / (1.0 - vv*a2)
	return
}

// riemannHLLE computes the flux through a face moving at speed vface
func riemannHLLE(pl, pr []float64, vface float64, f []float64) {
	var ul, ur, fl, fr [NQ]float64
	primToConsZone(pl, ul[:])
	primToConsZone(pr, ur[:])
	fluxZone(pl, fl[:])
	fluxZone(pr, fr[:])
	alm, alp := outerWavespeeds(pl)
	arm, arp := outerWavespeeds(pr)
	am := math.Min(alm, arm)
	ap := math.Max(alp, arp)
	switch {
	case vface < am:
		for q := 0; q < NQ; q++ {
			f[q] = fl[q] - vface*ul[q]
		}
	case vface > ap:
		for q := 0; q < NQ; q++ {
			f[q] = fr[q] - vface*ur[q]
		}
	default:
		for q := 0; q < NQ; q++ {
			uhll := (ap*ur[q] - am*ul[q] + fl[q] - fr[q]) / (ap - am)
			fhll := (ap*fl[q] - am*fr[q] + ap*am*(ur[q]-ul[q])) / (ap - am)
			f[q] = fhll - vface*uhll
		}
	}
}

// PrimitiveToConserved fills the volume-integrated conserved array u from
// the primitive array p
func PrimitiveToConserved(numZones int, faces, p, u []float64, scaleFactor float64, coords int) {
	for i := 0; i < numZones; i++ {
		c := i * NQ
		vol := cellVolume(coords, scaleFactor, faces[i], faces[i+1])
		primToConsZone(p[c:c+NQ], u[c:c+NQ])
		for q := 0; q < NQ; q++ {
			u[c+q] *= vol
		}
	}
}

// ConservedToPrimitive recovers the primitive array p from the
// volume-integrated conserved array u, using a Newton iteration on the
// pressure warm-started from the previous primitive state. It fails with
// NonPhysical if the iteration does not converge or yields a negative
// density or pressure
func ConservedToPrimitive(numZones int, faces, u, p []float64, scaleFactor float64, coords int) error {
	for i := 0; i < numZones; i++ {
		c := i * NQ
		vol := cellVolume(coords, scaleFactor, faces[i], faces[i+1])
		den := u[c+0] / vol
		mom := u[c+1] / vol
		tau := u[c+2] / vol
		dsc := u[c+3] / vol
		pre := p[c+2]
		if !(pre > 0) {
			pre = (GamLaw - 1.0) * tau // cold guess
		}
		ss := mom * mom
		tol := 1e-12 * (den + tau)
		var w float64
		done := false
		for it := 0; it < newtonIterMax; it++ {
			et := tau + pre + den
			b2 := math.Min(ss/(et*et), 1.0-1e-10)
			w2 := 1.0 / (1.0 - b2)
			w = math.Sqrt(w2)
			d := den / w
			de := (tau + den*(1.0-w) + pre*(1.0-w2)) / w2
			dh := d + de + pre
			a2 := GamLaw * pre / dh
			g := b2*a2 - 1.0
			f := de*(GamLaw-1.0) - pre
			pre -= f / g
			if math.Abs(f) < tol {
				done = true
				break
			}
		}
		rho := den / w
		if !done || !(rho > 0) || !(pre > 0) {
			return fvm.Errf(fvm.NonPhysical, "pressure solve failed at zone %d: rho=%g, pre=%g", i, rho, pre)
		}
		p[c+0] = rho
		p[c+1] = w * mom / (tau + den + pre)
		p[c+2] = pre
		p[c+3] = dsc / den
	}
	return nil
}

// AdvanceRK performs one Runge-Kutta stage over the interior zones:
// PLM reconstruction, HLLE fluxes through the (possibly moving) faces,
// geometric sources, and the blend against the conserved state u0 frozen
// at the beginning of the step
func AdvanceRK(numZones int, faces, u0, p1, u1, u2 []float64, a0, adot, t, rkParam, dt float64, coords int) {
	a := a0 + adot*t
	for i := NG; i < numZones-NG; i++ {
		c := i * NQ
		var gl, gc, gr [NQ]float64
		var plp, pcm, pcp, prm [NQ]float64
		var fm, fp, src [NQ]float64
		for q := 0; q < NQ; q++ {
			gl[q] = euler.PlmMinmod(p1[c-2*NQ+q], p1[c-NQ+q], p1[c+q], plmTheta)
			gc[q] = euler.PlmMinmod(p1[c-NQ+q], p1[c+q], p1[c+NQ+q], plmTheta)
			gr[q] = euler.PlmMinmod(p1[c+q], p1[c+NQ+q], p1[c+2*NQ+q], plmTheta)
			plp[q] = p1[c-NQ+q] + 0.5*gl[q]
			pcm[q] = p1[c+q] - 0.5*gc[q]
			pcp[q] = p1[c+q] + 0.5*gc[q]
			prm[q] = p1[c+NQ+q] - 0.5*gr[q]
		}
		xm := faces[i]
		xp := faces[i+1]
		riemannHLLE(plp[:], pcm[:], xm*adot, fm[:])
		riemannHLLE(pcp[:], prm[:], xp*adot, fp[:])
		area0 := faceArea(coords, a, xm)
		area1 := faceArea(coords, a, xp)
		if coords == Spherical {
			src[1] = p1[c+2] * (area1 - area0) // lateral pressure on the radial faces
		}
		for q := 0; q < NQ; q++ {
			u2[c+q] = u1[c+q] - (fp[q]*area1-fm[q]*area0-src[q])*dt
			u2[c+q] *= 1.0 - rkParam
			u2[c+q] += rkParam * u0[c+q]
		}
	}
}
