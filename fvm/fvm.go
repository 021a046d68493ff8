// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/AforAmpere/sailfish/inp"
	"github.com/AforAmpere/sailfish/out"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// cflNumber scales the fixed time step: dt = cflNumber * dx
const cflNumber = 0.1

// Main holds all data for a simulation run
type Main struct {
	Dr        *inp.Driver  // driver configuration
	Bk        Backend      // compute backend
	Sol       Solver       // fluxing strategy
	Iteration int          // number of completed steps
	Time      float64      // current simulation time
	X         []float64    // cell centers along x
	Y         []float64    // cell centers along y (2d only)
	Dx        float64      // grid spacing (dy = dx)
	DtFunc    fun.Func     // time step schedule; nil => dt = cflNumber * dx
	Term      func(string) // reporter sink
	ShowMsg   bool         // show messages
	stopped   int32
}

// NewMain builds a simulation from a validated driver configuration:
// backend, scheme, initial condition, and solver
func NewMain(dr *inp.Driver, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Dr = dr
	o.ShowMsg = verbose
	o.Term = out.Terminal()

	// backend and scheme
	o.Bk, err = NewBackend(dr.ExecMode)
	if err != nil {
		return nil, err
	}
	scheme, err := Select(dr.TimeIntegration, dr.Reconstruction, dr.PlmTheta)
	if err != nil {
		return nil, err
	}

	// initial condition
	var p []float64
	var ni, nj int
	switch dr.Dim {
	case 1:
		ni, nj = dr.Resolution, 1
		o.Dx = 1.0 / float64(ni)
		o.X = CellCenters1d(ni)
		p = LinearShocktube(o.X)
	case 2:
		nz := dr.Resolution
		ni, nj = nz+2*NG, nz+2*NG
		o.Dx = 1.0 / float64(nz)
		o.X, o.Y = CellCenters2d(0, 0, 0, nz, 1)
		p = CylindricalShocktube(o.X, o.Y, 0.1, 1.0)
	default:
		return nil, Errf(UnsupportedConfiguration, "dim must be 1 or 2, got %d", dr.Dim)
	}

	// solver
	o.Sol, err = NewSolver(dr.Fluxing, o.Bk, scheme, p, ni, nj, o.Dx, o.stopRequested)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
	}
	return
}

// State returns a snapshot view of the current solution
func (o *Main) State() *State {
	ni, nj, nq := o.Sol.Shape()
	return &State{o.Iteration, o.Time, o.Bk, o.Sol.Primitive(), ni, nj, nq}
}

// Advance moves the solution forward by dt
func (o *Main) Advance(dt float64) error {
	err := o.Sol.Advance(dt)
	if err != nil {
		return err
	}
	o.Time += dt
	o.Iteration++
	return nil
}

// Run advances the simulation until tfinal, emitting a progress line
// every fold iterations. A keyboard interrupt is honored at stage
// boundaries and terminates the loop with an Interrupt error; numeric
// failures abort with the offending iteration and time reported
func (o *Main) Run() (err error) {

	// catch interrupts between stages
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	go func() {
		<-sig
		atomic.StoreInt32(&o.stopped, 1)
	}()

	// message
	if o.ShowMsg {
		io.Pf("> Start simulation\n")
	}

	// time loop
	tf := o.Dr.Tfinal
	stamp := time.Now()
	for o.Time < tf {

		// time increment
		dt := cflNumber * o.Dx
		if o.DtFunc != nil {
			dt = o.DtFunc.F(o.Time, nil)
		}
		if o.Time+dt >= tf {
			dt = tf - o.Time
		}

		// step
		err = o.Advance(dt)
		if err != nil {
			if KindOf(err) == NonPhysical {
				io.PfRed("iteration %d, t=%g: %v\n", o.Iteration, o.Time, err)
			}
			return
		}

		// message
		if o.Iteration%o.Dr.Fold == 0 {
			elapsed := time.Since(stamp).Seconds()
			stamp = time.Now()
			zps := float64(o.State().TotalZones()*o.Dr.Fold) / elapsed
			o.Term(out.IterationMsg(o.Iteration, o.Time, zps))
		}
	}
	return
}

// stopRequested reports whether an interrupt arrived; polled by solvers
// at stage boundaries
func (o *Main) stopRequested() bool {
	return atomic.LoadInt32(&o.stopped) != 0
}
