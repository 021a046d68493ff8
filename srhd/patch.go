// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srhd

// Patch holds the array buffer state for the solution on a contiguous
// subset of the domain, guards included. Three conserved buffers cycle
// through a step: Conserved0 frozen at the start, Conserved1 current,
// Conserved2 the scratch destination of a stage
type Patch struct {
	NumZones              int       // zones including guards
	Faces                 []float64 // comoving face coordinates [NumZones+1]
	Coordinates           int       // Cartesian or Spherical
	ScaleFactorInitial    float64   // a0
	ScaleFactorDerivative float64   // ȧ
	Time                  float64   // current stage time
	Time0                 float64   // time at the beginning of the step
	Primitive1            []float64
	Conserved0            []float64
	Conserved1            []float64
	Conserved2            []float64
}

// NewPatch builds a patch owning the index range [i0, i1) of a grid with
// spacing dx. primitive covers the patch zones including guards
func NewPatch(i0, i1 int, dx float64, primitive []float64, time float64, coords int) (o *Patch) {
	o = new(Patch)
	o.NumZones = len(primitive) / NQ
	o.Faces = make([]float64, o.NumZones+1)
	for k := range o.Faces {
		o.Faces[k] = float64(i0+k) * dx
	}
	o.Coordinates = coords
	o.ScaleFactorInitial = 1.0
	o.ScaleFactorDerivative = 0.0
	o.Time = time
	o.Time0 = time
	o.Primitive1 = make([]float64, len(primitive))
	copy(o.Primitive1, primitive)
	o.Conserved0 = make([]float64, len(primitive))
	PrimitiveToConserved(o.NumZones, o.Faces, o.Primitive1, o.Conserved0, o.ScaleFactor(), coords)
	o.Conserved1 = make([]float64, len(primitive))
	o.Conserved2 = make([]float64, len(primitive))
	copy(o.Conserved1, o.Conserved0)
	copy(o.Conserved2, o.Conserved0)
	return
}

// ScaleFactor returns a(t) = a0 + ȧ·t at the patch's current time
func (o *Patch) ScaleFactor() float64 {
	return o.ScaleFactorInitial + o.ScaleFactorDerivative*o.Time
}

// RecomputePrimitive refreshes Primitive1 from Conserved1
func (o *Patch) RecomputePrimitive() error {
	return ConservedToPrimitive(o.NumZones, o.Faces, o.Conserved1, o.Primitive1, o.ScaleFactor(), o.Coordinates)
}

// AdvanceRK runs one stage with blending parameter rkParam and swaps the
// current and scratch conserved buffers. The stage time follows the
// interpolation t = t0·α + (t0+dt)·(1−α)
func (o *Patch) AdvanceRK(rkParam, dt float64) (err error) {
	err = o.RecomputePrimitive()
	if err != nil {
		return
	}
	AdvanceRK(o.NumZones, o.Faces, o.Conserved0, o.Primitive1, o.Conserved1, o.Conserved2,
		o.ScaleFactorInitial, o.ScaleFactorDerivative, o.Time, rkParam, dt, o.Coordinates)
	o.Time = o.Time0*rkParam + (o.Time0+dt)*(1.0-rkParam)
	o.Conserved1, o.Conserved2 = o.Conserved2, o.Conserved1
	return
}

// NewTimestep freezes the current conserved state as the reference for
// the next step's blending
func (o *Patch) NewTimestep() {
	o.Time0 = o.Time
	copy(o.Conserved0, o.Conserved1)
}

// Primitive recomputes and returns the live primitive buffer
func (o *Patch) Primitive() ([]float64, error) {
	err := o.RecomputePrimitive()
	if err != nil {
		return nil, err
	}
	return o.Primitive1, nil
}
