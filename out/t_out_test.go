// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. iteration message")

	msg := IterationMsg(1200, 0.125, 2.5e6)
	if !strings.Contains(msg, "001200") {
		tst.Errorf("message misses the iteration number: %q", msg)
	}
	if !strings.Contains(msg, "0.125") {
		tst.Errorf("message misses the time: %q", msg)
	}
	if !strings.Contains(msg, "2.500") {
		tst.Errorf("message misses the zone rate: %q", msg)
	}
}

func Test_checkpoint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("checkpoint01. write and read back")

	mesh := map[string]interface{}{"ni": 8, "dx": 0.125}
	solver := map[string]interface{}{"fluxing": "per_zone"}
	prim := []float64{1, 0, 1, 0.1, 0, 0.125}
	cp := NewCheckpoint(mesh, solver, 0.5, prim)

	for _, key := range []string{"mesh", "time", "primitive", "solver"} {
		if _, ok := cp[key]; !ok {
			tst.Errorf("checkpoint misses key %q", key)
			return
		}
	}

	err := WriteCheckpoint("/tmp/sailfish", "chk01", "gob", cp)
	if err != nil {
		tst.Errorf("write failed:\n%v", err)
		return
	}
	rd, err := ReadCheckpoint("/tmp/sailfish/chk01.chk", "gob")
	if err != nil {
		tst.Errorf("read failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "time", 1e-15, rd["time"].(float64), 0.5)
	chk.Vector(tst, "primitive", 1e-15, rd["primitive"].([]float64), prim)
	sv := rd["solver"].(map[string]interface{})
	chk.StrAssert(sv["fluxing"].(string), "per_zone")
}
