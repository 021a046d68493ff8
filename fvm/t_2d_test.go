// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// runCylinder advances the cylindrical shocktube to tfinal and returns the
// final primitive field together with the array dimensions
func runCylinder(tst *testing.T, nz int, tfinal float64) ([]float64, int, int) {
	ni := nz + 2*NG
	x, y := CellCenters2d(0, 0, 0, nz, 1)
	p := CylindricalShocktube(x, y, 0.1, 1.0)
	bk, err := NewBackend("cpu")
	if err != nil {
		tst.Fatalf("backend failed: %v", err)
	}
	s, err := Select("fwd", "pcm", 1.5)
	if err != nil {
		tst.Fatalf("select failed: %v", err)
	}
	dx := 1.0 / float64(nz)
	sol, err := NewSolver("per_zone", bk, s, p, ni, ni, dx, nil)
	if err != nil {
		tst.Fatalf("solver allocation failed: %v", err)
	}
	dt := 0.1 * dx
	nsteps := int(tfinal/dt + 0.5)
	for n := 0; n < nsteps; n++ {
		if err := sol.Advance(dt); err != nil {
			tst.Fatalf("advance failed: %v", err)
		}
	}
	return bk.Get(sol.Primitive()), ni, ni
}

func Test_cyl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cyl01. cylindrical shocktube is rotationally symmetric")

	nz := 64
	p, ni, nj := runCylinder(tst, nz, 0.1)
	nq := 4
	rho := func(i, j int) float64 { return p[(i*nj+j)*nq] }

	// the grid and the initial condition share the symmetries of the
	// square: reflections about both axes and the diagonal
	maxdev := 0.0
	for i := NG; i < ni-NG; i++ {
		for j := NG; j < nj-NG; j++ {
			ir := ni - 1 - i
			jr := nj - 1 - j
			maxdev = math.Max(maxdev, math.Abs(rho(i, j)-rho(j, i)))
			maxdev = math.Max(maxdev, math.Abs(rho(i, j)-rho(ir, j)))
			maxdev = math.Max(maxdev, math.Abs(rho(i, j)-rho(i, jr)))
		}
	}
	if maxdev > 1e-3 {
		tst.Errorf("density field is not rotationally symmetric: maxdev = %g", maxdev)
	}

	// the blast has started expanding: the density at the centre dropped
	// and the far field is untouched
	ic := ni / 2
	if rho(ic, ic) >= 1.0 {
		tst.Errorf("central density did not drop: %g", rho(ic, ic))
	}
	chk.Scalar(tst, "far field", 1e-10, rho(NG+1, NG+1), 0.1)
}

func Test_const02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("const02. uniform 2d states are preserved")

	nz := 32
	ni := nz + 2*NG
	state := []float64{1.0, 0.0, 0.0, 1.0}
	for _, ti := range []string{"fwd", "rk3"} {
		p := UniformState(ni*ni, state)
		bk, _ := NewBackend("cpu")
		s, _ := Select(ti, "plm", 1.5)
		dx := 1.0 / float64(nz)
		sol, err := NewSolver("per_zone", bk, s, p, ni, ni, dx, nil)
		if err != nil {
			tst.Fatalf("solver allocation failed: %v", err)
		}
		for n := 0; n < 20; n++ {
			if err := sol.Advance(0.1 * dx); err != nil {
				tst.Fatalf("advance failed: %v", err)
			}
		}
		chk.Vector(tst, ti, 1e-12, bk.Get(sol.Primitive()), UniformState(ni*ni, state))
	}
}
