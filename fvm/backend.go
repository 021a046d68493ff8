// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"runtime"
	"sync"
)

// Backend provides array storage and kernel launches for one compute
// device. Kernels are authored against an index space; the backend binds
// them to a host parallel-for or to a device launch. After Launch1/Launch2
// return and Sync has been observed, all writes of the kernel are visible
type Backend interface {
	Alloc(n int) []float64            // allocates a zeroed device array
	Launch1(lo, hi int, kern func(i int))
	Launch2(ilo, ihi, jlo, jhi int, kern func(i, j int))
	Sync()                            // blocks until launched kernels complete
	Get(x []float64) []float64        // returns a host copy for snapshots
}

// backendallocators holds all available backends
var backendallocators = make(map[string]func() Backend)

// NewBackend returns the backend registered under the given name.
// Unknown names (including "gpu" on builds without a device toolchain)
// fail with UnsupportedConfiguration
func NewBackend(name string) (Backend, error) {
	if alloc, ok := backendallocators[name]; ok {
		return alloc(), nil
	}
	return nil, Errf(UnsupportedConfiguration, "cannot find backend named %q", name)
}

// Cpu executes kernels across host worker goroutines, chunked along the
// outer axis. Each grid point writes only its own output slot, so the
// chunking does not affect results
type Cpu struct {
	Nworkers int // number of worker goroutines; 1 => serial
}

func init() {
	backendallocators["cpu"] = func() Backend {
		return &Cpu{Nworkers: runtime.NumCPU()}
	}
}

// Alloc allocates a zeroed host array
func (o *Cpu) Alloc(n int) []float64 { return make([]float64, n) }

// Launch1 runs kern for every i in [lo, hi)
func (o *Cpu) Launch1(lo, hi int, kern func(i int)) {
	nw := o.Nworkers
	if nw < 2 || hi-lo < 4*nw {
		for i := lo; i < hi; i++ {
			kern(i)
		}
		return
	}
	csz := (hi - lo + nw - 1) / nw
	var wg sync.WaitGroup
	for a := lo; a < hi; a += csz {
		b := a + csz
		if b > hi {
			b = hi
		}
		wg.Add(1)
		go func(a, b int) {
			defer wg.Done()
			for i := a; i < b; i++ {
				kern(i)
			}
		}(a, b)
	}
	wg.Wait()
}

// Launch2 runs kern for every (i, j) in [ilo, ihi) x [jlo, jhi),
// parallel along the outer (i) axis
func (o *Cpu) Launch2(ilo, ihi, jlo, jhi int, kern func(i, j int)) {
	o.Launch1(ilo, ihi, func(i int) {
		for j := jlo; j < jhi; j++ {
			kern(i, j)
		}
	})
}

// Sync is a no-op: host launches are synchronous
func (o *Cpu) Sync() {}

// Get returns a copy of x
func (o *Cpu) Get(x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	return y
}
