// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. 1d cell centers")

	x := CellCenters1d(10)
	chk.IntAssert(len(x), 10)
	chk.Scalar(tst, "x[0]", 1e-15, x[0], 0.05)
	chk.Scalar(tst, "x[9]", 1e-15, x[9], 0.95)
	for i := 0; i < 9; i++ {
		chk.Scalar(tst, "dx", 1e-15, x[i+1]-x[i], 0.1)
	}
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. patch geometry")

	// root patch covers the centred unit square
	x0, x1, y0, y1 := PatchExtent(0, 0, 0, 1)
	chk.Scalar(tst, "x0", 1e-15, x0, -0.5)
	chk.Scalar(tst, "x1", 1e-15, x1, 0.5)
	chk.Scalar(tst, "y0", 1e-15, y0, -0.5)
	chk.Scalar(tst, "y1", 1e-15, y1, 0.5)

	// refinement halves the spacing per level
	dx0, dy0 := PatchSpacing(0, 100, 1)
	dx1, _ := PatchSpacing(1, 100, 1)
	chk.Scalar(tst, "dx0", 1e-15, dx0, 0.01)
	chk.Scalar(tst, "dy0", 1e-15, dy0, 0.01)
	chk.Scalar(tst, "dx1", 1e-15, dx1, 0.005)

	// level-1 patches tile the root patch
	x0, x1, _, _ = PatchExtent(1, 1, 0, 1)
	chk.Scalar(tst, "x0 of (1,(1,0))", 1e-15, x0, 0.0)
	chk.Scalar(tst, "x1 of (1,(1,0))", 1e-15, x1, 0.5)
}

func Test_grid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid03. 2d cell centers include guards")

	nz := 8
	x, y := CellCenters2d(0, 0, 0, nz, 1)
	chk.IntAssert(len(x), nz+2*NG)
	chk.IntAssert(len(y), nz+2*NG)
	ddx := 1.0 / float64(nz)
	chk.Scalar(tst, "x[0]", 1e-15, x[0], -0.5-float64(NG)*ddx+0.5*ddx)
	chk.Scalar(tst, "x centred", 1e-15, x[0]+x[len(x)-1], 0)
	chk.Scalar(tst, "y centred", 1e-15, y[0]+y[len(y)-1], 0)
}
