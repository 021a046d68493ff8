// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/utl"
)

// NG is the number of guard zones on each side of each axis
const NG = 2

// CellCenters1d returns the ni cell-center coordinates of the unit
// interval; the outer NG cells on each side serve as guard zones
func CellCenters1d(ni int) (xc []float64) {
	xv := utl.LinSpace(0, 1, ni+1)
	xc = make([]float64, ni)
	for i := 0; i < ni; i++ {
		xc[i] = 0.5 * (xv[i] + xv[i+1])
	}
	return
}

// PatchSpacing returns the grid spacing of a patch with nz interior zones
// per axis, on a domain subdivided np times per axis at the given
// refinement level
func PatchSpacing(level, nz, np int) (dx, dy float64) {
	dx = 1.0 / float64(np) / float64(nz) / float64(int(1)<<uint(level))
	dy = dx
	return
}

// PatchExtent returns the (x0,x1) x (y0,y1) extents of patch (i,j) at the
// given refinement level, on the unit square centred at the origin
func PatchExtent(level, i, j, np int) (x0, x1, y0, y1 float64) {
	dx := 1.0 / float64(np) / float64(int(1)<<uint(level))
	dy := dx
	x0 = -0.5 + float64(i+0)*dx
	x1 = -0.5 + float64(i+1)*dx
	y0 = -0.5 + float64(j+0)*dy
	y1 = -0.5 + float64(j+1)*dy
	return
}

// CellCenters2d returns the cell-center coordinate vectors of a square
// patch with nz interior zones per axis, including NG guard cells outside
// each edge of the patch extent
func CellCenters2d(level, i, j, nz, np int) (xc, yc []float64) {
	x0, x1, y0, y1 := PatchExtent(level, i, j, np)
	ddx := (x1 - x0) / float64(nz)
	ddy := (y1 - y0) / float64(nz)
	xv := utl.LinSpace(x0-float64(NG)*ddx, x1+float64(NG)*ddx, nz+2*NG+1)
	yv := utl.LinSpace(y0-float64(NG)*ddy, y1+float64(NG)*ddy, nz+2*NG+1)
	xc = make([]float64, nz+2*NG)
	yc = make([]float64, nz+2*NG)
	for k := 0; k < nz+2*NG; k++ {
		xc[k] = 0.5 * (xv[k] + xv[k+1])
		yc[k] = 0.5 * (yv[k] + yv[k+1])
	}
	return
}
