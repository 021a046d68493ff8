// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Driver holds the options of the "driver" configuration section
type Driver struct {
	ExecMode        string  `json:"exec_mode" yaml:"exec_mode"`               // backend selection for kernels and arrays
	Resolution      int     `json:"resolution" yaml:"resolution"`             // number of grid zones per axis
	Tfinal          float64 `json:"tfinal" yaml:"tfinal"`                     // terminal simulation time
	Fluxing         string  `json:"fluxing" yaml:"fluxing"`                   // solver strategy
	Reconstruction  string  `json:"reconstruction" yaml:"reconstruction"`     // pcm or plm
	PlmTheta        float64 `json:"plm_theta" yaml:"plm_theta"`               // limiter parameter
	TimeIntegration string  `json:"time_integration" yaml:"time_integration"` // stage schedule
	Dim             int     `json:"dim" yaml:"dim"`                           // spatial dimensionality
	Fold            int     `json:"fold" yaml:"fold"`                         // iterations between progress emissions
	Plot            bool    `json:"plot" yaml:"plot"`                         // post-run visualization
}

// driverHelp holds the schema help messages, in presentation order
var driverHelp = []struct{ key, help string }{
	{"exec_mode", "execution mode [cpu|gpu]"},
	{"resolution", "number of grid zones"},
	{"tfinal", "time to end the simulation"},
	{"fluxing", "solver fluxing [per_zone|per_face]"},
	{"reconstruction", "first or second-order reconstruction [pcm|plm]"},
	{"plm_theta", "PLM parameter [1.0, 2.0]"},
	{"time_integration", "Runge-Kutta order [fwd|rk1|rk2|rk3]"},
	{"dim", "dimensionality of the domain"},
	{"fold", "number of iterations between iteration message"},
	{"plot", "whether to show a plot of the solution"},
}

// NewDriver returns a Driver with default options
func NewDriver() *Driver {
	return &Driver{
		ExecMode:        "cpu",
		Resolution:      10000,
		Tfinal:          0.1,
		Fluxing:         "per_zone",
		Reconstruction:  "pcm",
		PlmTheta:        1.5,
		TimeIntegration: "fwd",
		Dim:             1,
		Fold:            100,
		Plot:            false,
	}
}

// SetFrom overlays the options found in a flat map onto o. Unknown keys
// fail; nested maps must be flattened and sectioned first
func (o *Driver) SetFrom(flat map[string]interface{}) (err error) {
	for k, v := range flat {
		if v == nil {
			continue
		}
		switch k {
		case "exec_mode":
			o.ExecMode, err = toString(k, v)
		case "resolution":
			o.Resolution, err = toInt(k, v)
		case "tfinal":
			o.Tfinal, err = toFloat(k, v)
		case "fluxing":
			o.Fluxing, err = toString(k, v)
		case "reconstruction":
			o.Reconstruction, err = toString(k, v)
		case "plm_theta":
			o.PlmTheta, err = toFloat(k, v)
		case "time_integration":
			o.TimeIntegration, err = toString(k, v)
		case "dim":
			o.Dim, err = toInt(k, v)
		case "fold":
			o.Fold, err = toInt(k, v)
		case "plot":
			o.Plot, err = toBool(k, v)
		default:
			return chk.Err("unknown driver option %q", k)
		}
		if err != nil {
			return
		}
	}
	return
}

// Validate checks option ranges. Enum names (exec_mode, fluxing,
// reconstruction, time_integration, dim) are resolved by the solver
// registries, which fail on unknown names before any kernel runs
func (o *Driver) Validate() error {
	if o.Resolution < 1 {
		return chk.Err("resolution must be positive, got %d", o.Resolution)
	}
	if !(o.Tfinal > 0) {
		return chk.Err("tfinal must be positive, got %g", o.Tfinal)
	}
	if o.PlmTheta < 1.0 || o.PlmTheta > 2.0 {
		return chk.Err("plm_theta must be within [1.0, 2.0], got %g", o.PlmTheta)
	}
	if o.Fold < 1 {
		return chk.Err("fold must be positive, got %d", o.Fold)
	}
	return nil
}

// RegisterFlags registers one --<prefix>.<key> option per driver option,
// with the current values of o as defaults; parsing writes back into o
func (o *Driver) RegisterFlags(fs *flag.FlagSet, prefix string) {
	help := make(map[string]string)
	for _, h := range driverHelp {
		help[h.key] = h.help
	}
	fs.StringVar(&o.ExecMode, prefix+".exec_mode", o.ExecMode, help["exec_mode"])
	fs.IntVar(&o.Resolution, prefix+".resolution", o.Resolution, help["resolution"])
	fs.Float64Var(&o.Tfinal, prefix+".tfinal", o.Tfinal, help["tfinal"])
	fs.StringVar(&o.Fluxing, prefix+".fluxing", o.Fluxing, help["fluxing"])
	fs.StringVar(&o.Reconstruction, prefix+".reconstruction", o.Reconstruction, help["reconstruction"])
	fs.Float64Var(&o.PlmTheta, prefix+".plm_theta", o.PlmTheta, help["plm_theta"])
	fs.StringVar(&o.TimeIntegration, prefix+".time_integration", o.TimeIntegration, help["time_integration"])
	fs.IntVar(&o.Dim, prefix+".dim", o.Dim, help["dim"])
	fs.IntVar(&o.Fold, prefix+".fold", o.Fold, help["fold"])
	fs.BoolVar(&o.Plot, prefix+".plot", o.Plot, help["plot"])
}

// Map returns the options as a flat map keyed by option name
func (o *Driver) Map() map[string]interface{} {
	return map[string]interface{}{
		"exec_mode":        o.ExecMode,
		"resolution":       o.Resolution,
		"tfinal":           o.Tfinal,
		"fluxing":          o.Fluxing,
		"reconstruction":   o.Reconstruction,
		"plm_theta":        o.PlmTheta,
		"time_integration": o.TimeIntegration,
		"dim":              o.Dim,
		"fold":             o.Fold,
		"plot":             o.Plot,
	}
}

// PrintSchema prints the option names, help messages and defaults
func (o *Driver) PrintSchema() {
	io.Pf("driver\n")
	m := o.Map()
	for _, h := range driverHelp {
		io.Pf("  %-18s %s (default: %v)\n", h.key, h.help, m[h.key])
	}
}

// conversion helpers: JSON decodes numbers as float64, YAML as int

func toString(key string, v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", chk.Err("driver option %q must be a string, got %v", key, v)
}

func toInt(key string, v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, chk.Err("driver option %q must be an integer, got %v", key, v)
}

func toFloat(key string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, chk.Err("driver option %q must be a number, got %v", key, v)
}

func toBool(key string, v interface{}) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, chk.Err("driver option %q must be a boolean, got %v", key, v)
}
