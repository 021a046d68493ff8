// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import "math"

// LinearShocktube returns the primitive field of the standard 1d
// shocktube: (ρ,v,p) = (1.0, 0, 1.000) for x < 0.5 and (0.1, 0, 0.125)
// for x >= 0.5
func LinearShocktube(x []float64) (p []float64) {
	nq := 3
	p = make([]float64, len(x)*nq)
	for i, xi := range x {
		c := i * nq
		if xi < 0.5 {
			p[c+0] = 1.0
			p[c+2] = 1.000
		} else {
			p[c+0] = 0.1
			p[c+2] = 0.125
		}
	}
	return
}

// CylindricalShocktube returns the primitive field of a cylindrical
// explosion: ρ = 1 and the given pressure inside the disk of the given
// radius about the origin, (ρ,p) = (0.1, 0.125) outside, zero velocity
func CylindricalShocktube(x, y []float64, radius, pressure float64) (p []float64) {
	nq := 4
	ni := len(x)
	nj := len(y)
	p = make([]float64, ni*nj*nq)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			c := (i*nj + j) * nq
			if math.Sqrt(x[i]*x[i]+y[j]*y[j]) < radius {
				p[c+0] = 1.000
				p[c+3] = pressure
			} else {
				p[c+0] = 0.100
				p[c+3] = 0.125
			}
		}
	}
	return
}

// UniformState returns a constant primitive field with the given state
// replicated over ncells cells
func UniformState(ncells int, state []float64) (p []float64) {
	nq := len(state)
	p = make([]float64, ncells*nq)
	for i := 0; i < ncells; i++ {
		copy(p[i*nq:(i+1)*nq], state)
	}
	return
}
