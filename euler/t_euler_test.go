// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package euler

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_euler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("euler01. primitive/conserved round trip")

	states := [][]float64{
		{1.0, 0.0, 1.0},
		{0.1, 0.0, 0.125},
		{1.0, 0.5, 2.0},
		{2.5, -1.2, 0.3},
		{1.0, 0.5, -0.3, 2.0},
		{0.7, -0.1, 1.4, 0.9},
	}
	for _, p := range states {
		nq := len(p)
		u := make([]float64, nq)
		q := make([]float64, nq)
		PrimToCons(p, u)
		ok := ConsToPrim(u, q)
		if !ok {
			tst.Errorf("cons_to_prim failed for %v", p)
			return
		}
		chk.Vector(tst, "p", 1e-12, q, p)
	}
}

func Test_euler02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("euler02. HLLE consistency: F(U,U) = F(U)")

	states := [][]float64{
		{1.0, 0.0, 1.0},
		{0.4, 2.0, 0.75}, // supersonic to the right
		{0.4, -2.0, 0.75},
		{1.0, 0.3, -0.2, 2.0},
	}
	for _, p := range states {
		nq := len(p)
		for axis := 1; axis <= nq-2; axis++ {
			fhll := make([]float64, nq)
			fref := make([]float64, nq)
			RiemannHLLE(p, p, fhll, axis)
			Flux(p, fref, axis)
			chk.Vector(tst, "F", 1e-13, fhll, fref)
		}
	}
}

func Test_euler03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("euler03. non-physical states are rejected")

	p := make([]float64, 3)
	if ok := ConsToPrim([]float64{-1.0, 0.0, 1.0}, p); ok {
		tst.Errorf("negative density accepted")
	}
	if ok := ConsToPrim([]float64{1.0, 10.0, 1.0}, p); ok {
		tst.Errorf("negative pressure accepted")
	}
	if ok := ConsToPrim([]float64{1.0, 0.1, 2.0}, p); !ok {
		tst.Errorf("valid state rejected")
	}
}

func Test_plm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plm01. minmod limiter properties")

	// zero slope for equal samples
	for _, y := range []float64{-2.0, 0.0, 0.5, 3.0} {
		for _, th := range []float64{1.0, 1.5, 2.0} {
			chk.Scalar(tst, "minmod(y,y,y)", 1e-17, PlmMinmod(y, y, y, th), 0)
		}
	}

	// antisymmetry under negation of all samples
	cases := [][3]float64{
		{0.0, 0.5, 2.0},
		{1.0, 0.2, 0.1},
		{-1.0, 0.0, 3.0},
		{2.0, 2.5, 1.0},
	}
	for _, c := range cases {
		for _, th := range []float64{1.0, 1.5, 2.0} {
			g := PlmMinmod(c[0], c[1], c[2], th)
			h := PlmMinmod(-c[0], -c[1], -c[2], th)
			chk.Scalar(tst, "antisymmetry", 1e-15, g, -h)
		}
	}

	// local extrema are flattened
	chk.Scalar(tst, "maximum", 1e-17, PlmMinmod(0.0, 1.0, 0.0, 1.5), 0)
	chk.Scalar(tst, "minimum", 1e-17, PlmMinmod(1.0, 0.0, 1.0, 1.5), 0)

	// linear data keeps its slope
	chk.Scalar(tst, "linear", 1e-15, PlmMinmod(1.0, 2.0, 3.0, 1.5), 1.0)
}
