// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srhd

// Subdivide partitions [0, n) into k contiguous near-equal ranges (a, b).
// The ranges tile the interval in order and differ in size by at most one
func Subdivide(n, k int) (ranges [][2]int) {
	ranges = make([][2]int, k)
	for i := 0; i < k; i++ {
		ranges[i][0] = (i + 0) * n / k
		ranges[i][1] = (i + 1) * n / k
	}
	return
}
