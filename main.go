// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sailfish is a command line interface to the finite-volume
// hydrodynamics solvers. Two subcommands are available:
//
//	show-config [--format json|yaml | --defaults]
//	run [CONFIG...] [--driver.<key> VALUE ...]
//
// Configuration files (JSON or YAML) merge right to left; command line
// options override them all
package main

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/AforAmpere/sailfish/fvm"
	"github.com/AforAmpere/sailfish/inp"
	"github.com/AforAmpere/sailfish/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

func main() {

	// catch errors
	var failed bool
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			failed = true
		}
		if failed {
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		io.Pf("Usage: sailfish [show-config|run] ...\n")
		return
	}

	switch os.Args[1] {
	case "show-config":
		showConfig(os.Args[2:])
	case "run":
		failed = !run(os.Args[2:])
	default:
		chk.Panic("unknown subcommand %q", os.Args[1])
	}
}

// showConfig prints the resolved default configuration
func showConfig(args []string) {
	fs := flag.NewFlagSet("show-config", flag.ExitOnError)
	format := fs.String("format", "json", "output format for the configuration data")
	defaults := fs.Bool("defaults", false, "print defaults and help messages for configurable components")
	fs.Parse(args)

	dr := inp.NewDriver()
	if *defaults {
		dr.PrintSchema()
		return
	}
	cfg := map[string]interface{}{"driver": dr.Map()}
	switch *format {
	case "json":
		b, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			chk.Panic("cannot encode configuration: %v", err)
		}
		io.Pf("%s\n", string(b))
	case "yaml":
		b, err := yaml.Marshal(cfg)
		if err != nil {
			chk.Panic("cannot encode configuration: %v", err)
		}
		io.Pf("%s", string(b))
	default:
		chk.Panic("format must be [json|yaml], got %q", *format)
	}
}

// run loads and merges the configuration, then runs the simulation.
// It returns false on failure
func run(args []string) bool {

	// split positional configuration files from the option overrides
	var configs []string
	for len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		configs = append(configs, args[0])
		args = args[1:]
	}

	// merge configuration files right to left
	dr := inp.NewDriver()
	var flats []map[string]interface{}
	for _, path := range configs {
		nested, err := inp.Load(path)
		if err != nil {
			io.PfRed("%v\n", fvm.Errf(fvm.IO, "%v", err))
			return false
		}
		flats = append(flats, inp.Flatten(nested, "."))
	}
	merged := inp.MergeFlat(flats...)
	if err := dr.SetFrom(inp.Section(merged, "driver")); err != nil {
		io.PfRed("%v\n", fvm.Errf(fvm.InvalidConfiguration, "%v", err))
		return false
	}

	// overlay command line options
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dr.RegisterFlags(fs, "driver")
	fs.Parse(args)
	if err := dr.Validate(); err != nil {
		io.PfRed("%v\n", fvm.Errf(fvm.InvalidConfiguration, "%v", err))
		return false
	}

	// run simulation
	sim, err := fvm.NewMain(dr, true)
	if err != nil {
		io.PfRed("%v\n", err)
		return false
	}
	err = sim.Run()
	if err != nil {
		if fvm.KindOf(err) == fvm.Interrupt {
			io.Pfgreen("interrupt\n")
			return true
		}
		io.PfRed("%v\n", err)
		return false
	}

	// post-run visualization
	if dr.Plot {
		st := sim.State()
		_, _, nq := st.Shape()
		if dr.Dim == 1 {
			out.PlotDensity1d(sim.X, st.Primitive(), nq, dr.Fluxing, "/tmp/sailfish", "density")
		} else {
			out.PlotDensity2d(sim.X, sim.Y, st.Primitive(), nq, "/tmp/sailfish", "density")
		}
	}
	return true
}
