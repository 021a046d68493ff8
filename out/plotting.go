// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
)

// PlotDensity1d plots the density profile of a 1d primitive field and
// saves the figure in dirout
func PlotDensity1d(x, p []float64, nq int, label, dirout, fnkey string) {
	rho := make([]float64, len(x))
	for i := range x {
		rho[i] = p[i*nq]
	}
	plt.Reset()
	plt.SetForPng(0.75, 400, 150)
	plt.Plot(x, rho, io.Sf("'b-', marker='o', mfc='none', clip_on=0, label=%q", label))
	plt.Gll("$x$", "$\\rho$", "")
	plt.SaveD(dirout, fnkey+".png")
}

// PlotDensity2d draws the density field of a 2d primitive array as filled
// contours and saves the figure in dirout
func PlotDensity2d(x, y, p []float64, nq int, dirout, fnkey string) {
	ni := len(x)
	nj := len(y)
	xx := la.MatAlloc(ni, nj)
	yy := la.MatAlloc(ni, nj)
	zz := la.MatAlloc(ni, nj)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			xx[i][j] = x[i]
			yy[i][j] = y[j]
			zz[i][j] = p[(i*nj+j)*nq]
		}
	}
	plt.Reset()
	plt.SetForPng(1.0, 400, 150)
	plt.ContourSimple(xx, yy, zz, "cmap='viridis'")
	plt.Gll("$x$", "$y$", "")
	plt.SaveD(dirout, fnkey+".png")
}
