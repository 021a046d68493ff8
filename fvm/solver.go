// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the finite-volume solvers: grids, compute
// backends, specialized kernels, per-face and per-zone fluxing strategies,
// and the Runge-Kutta simulation driver
package fvm

// Solver advances a primitive field by repeated conservative updates
type Solver interface {
	// Advance performs one full time step of size dt, sequencing the
	// Runge-Kutta stages and buffer swaps. A caller interrupt is honored
	// at stage boundaries
	Advance(dt float64) error

	// Primitive returns the live buffer holding the current solution.
	// The view is valid until the next Advance; callers must copy
	// (see Backend.Get) for a stable snapshot
	Primitive() []float64

	// Shape returns the array dimensions (nj == 1 in 1d) and the number
	// of conserved quantities
	Shape() (ni, nj, nq int)
}

// Scheme holds the compile-time solver configuration resolved from the
// driver options
type Scheme struct {
	Plm    bool      // piecewise-linear reconstruction
	Rk     bool      // multi-stage integration with a frozen reference state
	Stages []float64 // per-stage blending parameters
	Theta  float64   // PLM limiter parameter
}

// rkStages maps a time integration name to its per-stage blending
// parameters. fwd and rk1 run the same single stage; fwd additionally
// skips the reference-state allocation
var rkStages = map[string][]float64{
	"fwd": {0.0},
	"rk1": {0.0},
	"rk2": {0.0, 0.5},
	"rk3": {0.0, 3.0 / 4.0, 1.0 / 3.0},
}

// Select resolves the (time_integration, reconstruction) pair into a
// Scheme, failing with UnsupportedConfiguration on unknown names
func Select(timeIntegration, reconstruction string, plmTheta float64) (s Scheme, err error) {
	stages, ok := rkStages[timeIntegration]
	if !ok {
		return s, Errf(UnsupportedConfiguration, "time_integration must be [fwd|rk1|rk2|rk3], got %q", timeIntegration)
	}
	switch reconstruction {
	case "pcm":
	case "plm":
		s.Plm = true
	default:
		return s, Errf(UnsupportedConfiguration, "reconstruction must be [pcm|plm], got %q", reconstruction)
	}
	s.Rk = timeIntegration != "fwd"
	s.Stages = stages
	s.Theta = plmTheta
	return
}

// kernelKey indexes the specialized kernel tables
type kernelKey struct {
	plm bool
	rk  bool
}

// flat lookup tables mapping a kernel key to the kernel instantiated for
// it. Instantiation happens here, at compile time
type (
	fluxKernel1d func(bk Backend, p, f []float64, theta float64, ni, nq int)
	faceKernel1d func(bk Backend, p, f, urk []float64, dt, dx, rk float64, ni, nq int)
	zoneKernel1d func(bk Backend, prd, pwr, urk []float64, dt, dx, rk, theta float64, ni, nq int)
	zoneKernel2d func(bk Backend, prd, pwr, urk []float64, dt, dx, rk, theta float64, ni, nj, nq int)
)

var fluxKernels1d = map[bool]fluxKernel1d{
	false: computeFluxes1d[pcmRecon],
	true:  computeFluxes1d[plmRecon],
}

var faceKernels1d = map[bool]faceKernel1d{
	false: updatePrimPerFace1d[rkOff],
	true:  updatePrimPerFace1d[rkOn],
}

var zoneKernels1d = map[kernelKey]zoneKernel1d{
	{false, false}: updatePrimPerZone1d[pcmRecon, rkOff],
	{false, true}:  updatePrimPerZone1d[pcmRecon, rkOn],
	{true, false}:  updatePrimPerZone1d[plmRecon, rkOff],
	{true, true}:   updatePrimPerZone1d[plmRecon, rkOn],
}

var zoneKernels2d = map[kernelKey]zoneKernel2d{
	{false, false}: updatePrimPerZone2d[pcmRecon, rkOff],
	{false, true}:  updatePrimPerZone2d[pcmRecon, rkOn],
	{true, false}:  updatePrimPerZone2d[plmRecon, rkOff],
	{true, true}:   updatePrimPerZone2d[plmRecon, rkOn],
}

// solverallocators holds all available fluxing strategies
var solverallocators = make(map[string]func(bk Backend, s Scheme, p []float64, ni, nj int, dx float64, stop func() bool) (Solver, error))

// NewSolver allocates the solver for the given fluxing strategy over the
// primitive field p (which is copied to device storage). stop is polled at
// stage boundaries; a nil stop never interrupts
func NewSolver(fluxing string, bk Backend, s Scheme, p []float64, ni, nj int, dx float64, stop func() bool) (Solver, error) {
	alloc, ok := solverallocators[fluxing]
	if !ok {
		return nil, Errf(UnsupportedConfiguration, "fluxing must be [per_zone|per_face], got %q", fluxing)
	}
	if stop == nil {
		stop = func() bool { return false }
	}
	return alloc(bk, s, p, ni, nj, dx, stop)
}

// checkPositive scans the interior cells of a primitive array and fails
// with NonPhysical if a density or pressure is not strictly positive
// (NaN included)
func checkPositive(p []float64, ni, nj, nq int) error {
	for i := NG; i < ni-NG; i++ {
		jlo, jhi := 0, 1
		if nj > 1 {
			jlo, jhi = NG, nj-NG
		}
		for j := jlo; j < jhi; j++ {
			c := (i*nj + j) * nq
			rho := p[c]
			pre := p[c+nq-1]
			if !(rho > 0) || !(pre > 0) {
				return Errf(NonPhysical, "non-physical state at cell (%d,%d): rho=%g, pre=%g", i, j, rho, pre)
			}
		}
	}
	return nil
}
