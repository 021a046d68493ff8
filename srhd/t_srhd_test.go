// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srhd

import (
	"math"
	"testing"

	"github.com/AforAmpere/sailfish/fvm"
	"github.com/cpmech/gosl/chk"
)

func Test_subdiv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("subdiv01. contiguous partitions")

	r := Subdivide(10, 3)
	chk.IntAssert(len(r), 3)
	chk.IntAssert(r[0][0], 0)
	chk.IntAssert(r[len(r)-1][1], 10)
	for k := 1; k < len(r); k++ {
		chk.IntAssert(r[k][0], r[k-1][1])
	}

	// near-equal sizes
	for _, n := range []int{7, 100, 101} {
		for _, k := range []int{1, 2, 5} {
			sizes := make(map[int]bool)
			total := 0
			for _, rng := range Subdivide(n, k) {
				sizes[rng[1]-rng[0]] = true
				total += rng[1] - rng[0]
			}
			chk.IntAssert(total, n)
			if len(sizes) > 2 {
				tst.Errorf("partition sizes of (%d,%d) differ by more than one", n, k)
			}
		}
	}
}

func Test_srhd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("srhd01. primitive/conserved round trip with pressure solve")

	states := [][]float64{
		{1.0, 0.0, 1.0, 0.0},
		{1.0, 0.5, 0.01, 1.0},
		{0.1, -2.0, 0.3, 0.5},
		{2.0, 4.0, 5.0, 0.2},
	}
	nz := len(states)
	p := make([]float64, nz*NQ)
	for i, st := range states {
		copy(p[i*NQ:(i+1)*NQ], st)
	}
	faces := make([]float64, nz+1)
	for k := range faces {
		faces[k] = float64(k) * 0.25
	}
	for _, coords := range []int{Cartesian, Spherical} {
		u := make([]float64, nz*NQ)
		q := make([]float64, nz*NQ) // cold start: no pressure guess
		PrimitiveToConserved(nz, faces, p, u, 1.0, coords)
		if err := ConservedToPrimitive(nz, faces, u, q, 1.0, coords); err != nil {
			tst.Errorf("pressure solve failed:\n%v", err)
			return
		}
		chk.Vector(tst, "p", 1e-10, q, p)
	}
}

func Test_srhd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("srhd02. uniform state is preserved across patches")

	nz := 60
	state := []float64{1.0, 0.0, 0.5, 1.0}
	p := make([]float64, nz*NQ)
	for i := 0; i < nz; i++ {
		copy(p[i*NQ:(i+1)*NQ], state)
	}
	sol, err := NewSolver(p, 0.0, 3, "periodic", "cartesian")
	if err != nil {
		tst.Errorf("solver allocation failed:\n%v", err)
		return
	}
	dt := 0.1 / float64(nz)
	for n := 0; n < 10; n++ {
		sol.NewTimestep()
		for _, rk := range []float64{0.0, 3.0 / 4.0, 1.0 / 3.0} {
			if err := sol.AdvanceRK(rk, dt); err != nil {
				tst.Errorf("advance failed:\n%v", err)
				return
			}
		}
	}
	q, err := sol.Primitive()
	if err != nil {
		tst.Errorf("primitive assembly failed:\n%v", err)
		return
	}
	for i := 0; i < nz; i++ {
		for k := 0; k < NQ; k++ {
			if math.Abs(q[i*NQ+k]-state[k]) > 1e-12 {
				tst.Errorf("zone %d drifted: %v", i, q[i*NQ:(i+1)*NQ])
				return
			}
		}
	}
}

func Test_srhd03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("srhd03. guard exchange under both boundary policies")

	nz := 12
	p := make([]float64, nz*NQ)
	for i := 0; i < nz; i++ {
		p[i*NQ+0] = 1.0 + float64(i) // tag zones by density
		p[i*NQ+2] = 1.0
	}

	// periodic: guards wrap around the patch ring
	sol, err := NewSolver(p, 0.0, 3, "periodic", "cartesian")
	if err != nil {
		tst.Errorf("solver allocation failed:\n%v", err)
		return
	}
	np := len(sol.Patches)
	for i := 0; i < np; i++ {
		pl := sol.Patches[(i+np-1)%np]
		p0 := sol.Patches[i]
		pr := sol.Patches[(i+np+1)%np]
		sol.setBC(pl.Primitive1, p0.Primitive1, pr.Primitive1, i)
	}
	first := sol.Patches[0].Primitive1
	last := sol.Patches[np-1].Primitive1
	chk.Scalar(tst, "left guard wraps", 1e-15, first[0], last[len(last)-4*NQ])
	chk.Scalar(tst, "right guard wraps", 1e-15, last[len(last)-2*NQ], first[NG*NQ])

	// outflow: the outermost guards replicate the patch edge
	sol, err = NewSolver(p, 0.0, 3, "outflow", "cartesian")
	if err != nil {
		tst.Errorf("solver allocation failed:\n%v", err)
		return
	}
	np = len(sol.Patches)
	for i := 0; i < np; i++ {
		pl := sol.Patches[(i+np-1)%np]
		p0 := sol.Patches[i]
		pr := sol.Patches[(i+np+1)%np]
		sol.setBC(pl.Primitive1, p0.Primitive1, pr.Primitive1, i)
	}
	first = sol.Patches[0].Primitive1
	last = sol.Patches[np-1].Primitive1
	chk.Scalar(tst, "left guard extrapolates", 1e-15, first[0], first[NG*NQ])
	chk.Scalar(tst, "right guard extrapolates", 1e-15, last[len(last)-NG*NQ], last[len(last)-2*NG*NQ])
}

func Test_srhd04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("srhd04. invalid policies are rejected")

	p := make([]float64, 8*NQ)
	if _, err := NewSolver(p, 0.0, 1, "reflecting", "cartesian"); fvm.KindOf(err) != fvm.BoundaryPolicyInvalid {
		tst.Errorf("invalid boundary condition accepted")
	}
	if _, err := NewSolver(p, 0.0, 1, "outflow", "cylindrical"); fvm.KindOf(err) != fvm.UnsupportedConfiguration {
		tst.Errorf("invalid coordinates accepted")
	}
}
