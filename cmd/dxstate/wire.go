// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gogpu/dxcompat/blend"
)

// enum is a blend enumeration that is read from JSON by name or by number
// and written by name.
type enum[T interface {
	~uint32
	fmt.Stringer
}] struct {
	v T
}

func (e *enum[T]) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err == nil {
		e.v = T(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("want a name or a number, got %s", b)
	}
	for i := range uint32(32) {
		if T(i).String() == s {
			e.v = T(i)
			return nil
		}
	}
	return fmt.Errorf("unknown value %q", s)
}

func (e enum[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.v.String())
}

// jsonBool is a descriptor boolean read from JSON as true/false or a number.
type jsonBool blend.Bool

func (f *jsonBool) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true":
		*f = jsonBool(blend.True)
		return nil
	case "false", "null":
		*f = jsonBool(blend.False)
		return nil
	}
	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("want a boolean or a number, got %s", b)
	}
	*f = jsonBool(n)
	return nil
}

func (f jsonBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(blend.Bool(f).Enabled())
}

type wireTarget struct {
	BlendEnable    jsonBool            `json:"blendEnable"`
	LogicOpEnable  jsonBool            `json:"logicOpEnable,omitempty"`
	SrcBlend       enum[blend.Blend]   `json:"srcBlend"`
	DestBlend      enum[blend.Blend]   `json:"destBlend"`
	BlendOp        enum[blend.Op]      `json:"blendOp"`
	SrcBlendAlpha  enum[blend.Blend]   `json:"srcBlendAlpha"`
	DestBlendAlpha enum[blend.Blend]   `json:"destBlendAlpha"`
	BlendOpAlpha   enum[blend.Op]      `json:"blendOpAlpha"`
	LogicOp        enum[blend.LogicOp] `json:"logicOp"`
	WriteMask      uint8               `json:"writeMask"`
}

type wireDesc struct {
	AlphaToCoverage  jsonBool     `json:"alphaToCoverage"`
	IndependentBlend jsonBool     `json:"independentBlend"`
	RenderTargets    []wireTarget `json:"renderTargets"`
}

// decodeDesc parses a JSON blend descriptor. Unlisted render targets are
// zero.
func decodeDesc(data []byte) (blend.Desc1, error) {
	var w wireDesc
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return blend.Desc1{}, fmt.Errorf("decode descriptor: %w", err)
	}
	if len(w.RenderTargets) > blend.SimultaneousRenderTargetCount {
		return blend.Desc1{}, fmt.Errorf("decode descriptor: %d render targets, at most %d allowed",
			len(w.RenderTargets), blend.SimultaneousRenderTargetCount)
	}

	d := blend.Desc1{
		AlphaToCoverageEnable:  blend.Bool(w.AlphaToCoverage),
		IndependentBlendEnable: blend.Bool(w.IndependentBlend),
	}
	for i, t := range w.RenderTargets {
		d.RenderTarget[i] = blend.RenderTargetDesc1{
			BlendEnable:           blend.Bool(t.BlendEnable),
			LogicOpEnable:         blend.Bool(t.LogicOpEnable),
			SrcBlend:              t.SrcBlend.v,
			DestBlend:             t.DestBlend.v,
			BlendOp:               t.BlendOp.v,
			SrcBlendAlpha:         t.SrcBlendAlpha.v,
			DestBlendAlpha:        t.DestBlendAlpha.v,
			BlendOpAlpha:          t.BlendOpAlpha.v,
			LogicOp:               t.LogicOp.v,
			RenderTargetWriteMask: blend.ColorWriteEnable(t.WriteMask),
		}
	}
	return d, nil
}

// encodeDesc converts a descriptor to its wire form with all targets listed.
func encodeDesc(d blend.Desc1) wireDesc {
	w := wireDesc{
		AlphaToCoverage:  jsonBool(d.AlphaToCoverageEnable),
		IndependentBlend: jsonBool(d.IndependentBlendEnable),
		RenderTargets:    make([]wireTarget, len(d.RenderTarget)),
	}
	for i, rt := range d.RenderTarget {
		w.RenderTargets[i] = wireTarget{
			BlendEnable:    jsonBool(rt.BlendEnable),
			LogicOpEnable:  jsonBool(rt.LogicOpEnable),
			SrcBlend:       enum[blend.Blend]{rt.SrcBlend},
			DestBlend:      enum[blend.Blend]{rt.DestBlend},
			BlendOp:        enum[blend.Op]{rt.BlendOp},
			SrcBlendAlpha:  enum[blend.Blend]{rt.SrcBlendAlpha},
			DestBlendAlpha: enum[blend.Blend]{rt.DestBlendAlpha},
			BlendOpAlpha:   enum[blend.Op]{rt.BlendOpAlpha},
			LogicOp:        enum[blend.LogicOp]{rt.LogicOp},
			WriteMask:      uint8(rt.RenderTargetWriteMask),
		}
	}
	return w
}
