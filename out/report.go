// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements progress reporting, plotting of results, and
// checkpoint files
package out

import (
	"github.com/cpmech/gosl/io"
)

// IterationMsg formats the periodic progress line with the iteration
// number, the simulation time, and the zone-update rate
func IterationMsg(n int, t, zps float64) string {
	return io.Sf("[%06d] t=%0.6f Mzps=%.3f", n, t, zps/1e6)
}

// Terminal returns a message sink writing to the terminal
func Terminal() func(msg string) {
	return func(msg string) {
		io.Pf("%s\n", msg)
	}
}
