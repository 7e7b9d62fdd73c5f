// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command dxstate normalizes a JSON blend descriptor and prints its
// canonical form, its hash and the backend target states.
//
// Usage:
//
//	dxstate [-in desc.json] [-legacy] [-backend halstate] [-v]
//
// The descriptor is read from standard input when -in is not given:
//
//	{
//	  "renderTargets": [{
//	    "blendEnable": true,
//	    "srcBlend": "SrcAlpha", "destBlend": "InvSrcAlpha", "blendOp": "Add",
//	    "srcBlendAlpha": "One", "destBlendAlpha": "Zero", "blendOpAlpha": "Add",
//	    "writeMask": 15
//	  }]
//	}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/dxcompat"
	"github.com/gogpu/dxcompat/backend"
	"github.com/gogpu/dxcompat/backend/halstate"
	"github.com/gogpu/dxcompat/blend"
	"github.com/gogpu/dxcompat/com"
	"github.com/gogpu/dxcompat/device"
)

func main() {
	var (
		input    = flag.String("in", "", "descriptor file (default stdin)")
		legacy   = flag.Bool("legacy", false, "create through the legacy entry point; logic op fields are ignored")
		backName = flag.String("backend", backend.BackendHAL, "device backend")
		verbose  = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		dxcompat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	data, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read descriptor: %v", err)
	}
	draft, err := decodeDesc(data)
	if err != nil {
		log.Fatalf("Failed to parse descriptor: %v", err)
	}

	b, err := backend.New(*backName)
	if err != nil {
		log.Fatalf("Failed to select backend: %v", err)
	}
	dev, err := device.New(device.NullHandle{}, device.WithBackend(b))
	if err != nil {
		log.Fatalf("Failed to create device: %v", err)
	}

	rep, err := run(dev, draft, *legacy)
	if err != nil {
		log.Fatalf("Failed to create blend state: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}

// report is the command output.
type report struct {
	Hash    string              `json:"hash"`
	Desc    wireDesc            `json:"desc"`
	Targets []blend.TargetState `json:"targets,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// run creates a blend state from draft on dev and describes the result.
func run(dev *device.Device, draft blend.Desc1, legacy bool) (*report, error) {
	var bs device.BlendState
	if legacy {
		bs10, err := dev.CreateBlendState10(draft.Legacy())
		if err != nil {
			return nil, err
		}
		defer bs10.Release()
		if bs, err = asCurrent(bs10); err != nil {
			return nil, err
		}
	} else {
		var err error
		if bs, err = dev.CreateBlendState1(draft); err != nil {
			return nil, err
		}
	}
	defer bs.Release()

	desc := bs.Desc1()
	rep := &report{
		Hash: fmt.Sprintf("%#016x", blend.Hash(desc)),
		Desc: encodeDesc(desc),
	}

	var (
		targets [blend.SimultaneousRenderTargetCount]blend.TargetState
		err     error
	)
	if hs, ok := dev.Backend().(*halstate.Backend); ok {
		r := hs.Realize(desc)
		targets, err = r.Targets, r.Err
	} else {
		targets, err = blend.TargetStates(desc)
	}
	if err != nil {
		rep.Error = err.Error()
		return rep, nil
	}
	rep.Targets = targets[:]
	return rep, nil
}

// asCurrent returns the current façade of a legacy blend state with a new
// reference.
func asCurrent(bs device.BlendState10) (device.BlendState, error) {
	var out device.BlendState
	if err := com.Query(bs, com.IIDD3D11BlendState1, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
