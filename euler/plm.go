// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package euler

import "math"

// PlmMinmod returns the generalized minmod (TVD) slope of the three
// samples yl, yc, yr. theta ∈ [1,2] trades diffusion (1) for crispness (2)
func PlmMinmod(yl, yc, yr, theta float64) float64 {
	a := (yc - yl) * theta
	b := (yr - yl) * 0.5
	c := (yr - yc) * theta
	sa := math.Copysign(1.0, a)
	sb := math.Copysign(1.0, b)
	sc := math.Copysign(1.0, c)
	mab := math.Min(math.Abs(a), math.Abs(b))
	return 0.25 * math.Abs(sa+sb) * (sa + sc) * math.Min(mab, math.Abs(c))
}
