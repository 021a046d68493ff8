// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from configuration files
// (JSON or YAML), flattened and merged into the driver options
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Load reads one configuration file into a nested map. The format is
// selected by the file extension: .json or .yaml
func Load(path string) (m map[string]interface{}, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read configuration file: %v", err)
	}
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(b, &m)
	case ".yaml":
		err = yaml.Unmarshal(b, &m)
	default:
		return nil, chk.Err("unknown configuration file %q", path)
	}
	if err != nil {
		return nil, chk.Err("cannot parse %q: %v", path, err)
	}
	return
}

// Flatten creates a flat map e from a nested map d, with
// e["a.b.c"] = d["a"]["b"]["c"]
func Flatten(d map[string]interface{}, sep string) (e map[string]interface{}) {
	e = make(map[string]interface{})
	flatten(d, "", sep, e)
	return
}

func flatten(d map[string]interface{}, parent, sep string, e map[string]interface{}) {
	for k, v := range d {
		key := k
		if parent != "" {
			key = parent + sep + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			flatten(sub, key, sep, e)
			continue
		}
		e[key] = v
	}
}

// Section returns, from a flat map with keys like "section.b.c", the
// sub-map with keys like "b.c"
func Section(flat map[string]interface{}, name string) (s map[string]interface{}) {
	s = make(map[string]interface{})
	for k, v := range flat {
		if strings.HasPrefix(k, name+".") {
			s[k[len(name)+1:]] = v
		}
	}
	return
}

// MergeFlat merges flat maps left to right: later maps override earlier
// ones. Null values are treated as absent
func MergeFlat(maps ...map[string]interface{}) (m map[string]interface{}) {
	m = make(map[string]interface{})
	for _, d := range maps {
		for k, v := range d {
			if v == nil {
				continue
			}
			m[k] = v
		}
	}
	return
}
