// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package euler implements the compressible Euler equations: conversions
// between primitive and conserved variables, wave speeds, physical fluxes,
// and the HLLE approximate Riemann solver. State vectors are flat slices
// with layout (ρ, v..., p) for primitives and (ρ, ρv..., E) for conserved
// quantities; the slice length determines the number of velocity components
package euler

import "math"

// Gam is the ratio of specific heats of the ideal gas
const Gam = 5.0 / 3.0

// MaxNq is the largest number of components of a state vector (2d)
const MaxNq = 4

// PrimToCons converts a primitive state p = (ρ, v..., p) into a conserved
// state u = (ρ, ρv..., E) with E = p/(γ-1) + ½ρ|v|²
func PrimToCons(p, u []float64) {
	nq := len(p)
	rho := p[0]
	pre := p[nq-1]
	vsq := 0.0
	for k := 1; k < nq-1; k++ {
		vsq += p[k] * p[k]
		u[k] = rho * p[k]
	}
	u[0] = rho
	u[nq-1] = pre/(Gam-1.0) + 0.5*rho*vsq
}

// ConsToPrim converts a conserved state u into a primitive state p,
// inverting PrimToCons algebraically. It returns ok == false if the
// density or the computed pressure is non-positive
func ConsToPrim(u, p []float64) (ok bool) {
	nq := len(u)
	rho := u[0]
	vsq := 0.0
	for k := 1; k < nq-1; k++ {
		v := u[k] / rho
		vsq += v * v
		p[k] = v
	}
	pre := (Gam - 1.0) * (u[nq-1] - 0.5*rho*vsq)
	p[0] = rho
	p[nq-1] = pre
	return rho > 0 && pre > 0
}

// SoundSpeed returns the adiabatic sound speed of a primitive state
func SoundSpeed(p []float64) float64 {
	return math.Sqrt(Gam * p[len(p)-1] / p[0])
}

// Flux computes the physical flux f of the conserved quantities along the
// given axis (1 => x, 2 => y) from a primitive state p
func Flux(p, f []float64, axis int) {
	nq := len(p)
	rho := p[0]
	pre := p[nq-1]
	vn := p[axis]
	vsq := 0.0
	for k := 1; k < nq-1; k++ {
		vsq += p[k] * p[k]
	}
	nrg := pre/(Gam-1.0) + 0.5*rho*vsq
	f[0] = rho * vn
	for k := 1; k < nq-1; k++ {
		f[k] = rho * p[k] * vn
	}
	f[axis] += pre
	f[nq-1] = (nrg + pre) * vn
}

// OuterWavespeeds returns the smallest and largest signal speeds of a
// primitive state along the given axis
func OuterWavespeeds(p []float64, axis int) (am, ap float64) {
	cs := SoundSpeed(p)
	vn := p[axis]
	return vn - cs, vn + cs
}

// RiemannHLLE computes the Godunov flux f through the face separating the
// left state pl from the right state pr, along the given axis, using the
// two-wave HLLE approximate Riemann solver
func RiemannHLLE(pl, pr, f []float64, axis int) {
	nq := len(pl)
	var ul, ur, fl, fr [MaxNq]float64
	PrimToCons(pl, ul[:nq])
	PrimToCons(pr, ur[:nq])
	Flux(pl, fl[:nq], axis)
	Flux(pr, fr[:nq], axis)
	alm, alp := OuterWavespeeds(pl, axis)
	arm, arp := OuterWavespeeds(pr, axis)
	am := math.Min(alm, arm)
	ap := math.Max(alp, arp)
	switch {
	case am > 0:
		copy(f, fl[:nq])
	case ap < 0:
		copy(f, fr[:nq])
	default:
		for q := 0; q < nq; q++ {
			f[q] = (ap*fl[q] - am*fr[q] + ap*am*(ur[q]-ul[q])) / (ap - am)
		}
	}
}
