// Copyright 2022 The Sailfish Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// checkpoint maps hold slices and nested maps behind interface values
func init() {
	gob.Register([]float64{})
	gob.Register(map[string]interface{}{})
}

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// NewCheckpoint assembles the serialized map written at a checkpoint.
// The keys {mesh, time, primitive, solver} are the stable surface read
// back by viewers and restart runs
func NewCheckpoint(mesh, solver map[string]interface{}, time float64, primitive []float64) map[string]interface{} {
	return map[string]interface{}{
		"mesh":      mesh,
		"time":      time,
		"primitive": primitive,
		"solver":    solver,
	}
}

// WriteCheckpoint encodes a checkpoint map into dirout/fnkey.chk
func WriteCheckpoint(dirout, fnkey, enctype string, cp map[string]interface{}) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(cp)
	if err != nil {
		return chk.Err("cannot encode checkpoint: %v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create output directory: %v", err)
	}
	fn := filepath.Join(dirout, fnkey+".chk")
	err = os.WriteFile(fn, buf.Bytes(), 0666)
	if err != nil {
		return chk.Err("cannot write checkpoint file: %v", err)
	}
	io.Pf("file <%s> written\n", fn)
	return
}

// ReadCheckpoint decodes a checkpoint map from a file
func ReadCheckpoint(path, enctype string) (cp map[string]interface{}, err error) {
	fil, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open checkpoint file: %v", err)
	}
	defer fil.Close()
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&cp)
	if err != nil {
		return nil, chk.Err("cannot decode checkpoint file: %v", err)
	}
	return
}
