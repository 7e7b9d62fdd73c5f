// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/dxcompat/blend"
	"github.com/gogpu/dxcompat/com"
)

// BlendState is the current-version blend state contract.
//
// It answers com.IIDUnknown, com.IIDD3D11DeviceChild, com.IIDD3D11BlendState
// and com.IIDD3D11BlendState1.
type BlendState interface {
	DeviceChild

	// Desc returns the descriptor in the legacy shape.
	Desc() blend.Desc

	// Desc1 returns the canonical descriptor.
	Desc1() blend.Desc1
}

// BlendState10 is the legacy-version blend state contract.
//
// It answers com.IIDD3D10DeviceChild, com.IIDD3D10BlendState and
// com.IIDD3D10BlendState1.
type BlendState10 interface {
	DeviceChild10

	// Desc returns the descriptor in the legacy shape.
	Desc() blend.Desc
}

// blendState is one immutable blend state object. Both façades share its
// identity; the legacy façade never stores a descriptor of its own.
type blendState struct {
	*com.Identity
	device *Device
	desc   blend.Desc1
	d3d10  blendState10
}

type blendState10 struct {
	*com.Identity
	state *blendState
}

// newBlendState creates a blend state from an already canonical descriptor.
// It cannot fail.
func (d *Device) newBlendState(desc blend.Desc1) *blendState {
	s := &blendState{device: d, desc: desc}
	s.Identity = com.NewIdentity("BlendState", d.logger, s.destroy)
	s.d3d10 = blendState10{Identity: s.Identity, state: s}

	s.Expose(s,
		com.IIDUnknown,
		com.IIDD3D11DeviceChild,
		com.IIDD3D11BlendState,
		com.IIDD3D11BlendState1)
	s.Expose(&s.d3d10,
		com.IIDD3D10DeviceChild,
		com.IIDD3D10BlendState,
		com.IIDD3D10BlendState1)

	d.backend.RealizeBlendState(desc)
	d.debugState("blend state created", desc)
	return s
}

func (s *blendState) destroy() {
	if s.device.states != nil {
		s.device.states.removeBlend(s.desc, s)
	}
	s.device.debugState("blend state destroyed", s.desc)
}

// debugState logs a blend state event. The hash is computed only when the
// logger accepts debug records.
func (d *Device) debugState(msg string, desc blend.Desc1) {
	l := d.log()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(msg, "hash", blend.Hash(desc))
}

func (s *blendState) Device() *Device    { return s.device }
func (s *blendState) Desc() blend.Desc   { return s.desc.Legacy() }
func (s *blendState) Desc1() blend.Desc1 { return s.desc }
func (s *blendState) d3d11()             {}

func (s *blendState10) Device() *Device  { return s.state.device }
func (s *blendState10) Desc() blend.Desc { return s.state.desc.Legacy() }
func (s *blendState10) d3d10()           {}

// CreateBlendState1 validates and canonicalizes desc and returns a blend
// state with one reference owned by the caller.
//
// Invalid descriptors are rejected with an error wrapping a
// *blend.ValidationError; nothing is created in that case.
func (d *Device) CreateBlendState1(desc blend.Desc1) (BlendState, error) {
	s, err := d.createBlendState(desc)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateBlendState creates a blend state from a legacy-shaped descriptor.
func (d *Device) CreateBlendState(desc blend.Desc) (BlendState, error) {
	return d.CreateBlendState1(blend.Promote(desc))
}

// CreateBlendState10 is the legacy entry point. It returns the legacy façade
// of the same object CreateBlendState would create.
func (d *Device) CreateBlendState10(desc blend.Desc) (BlendState10, error) {
	s, err := d.createBlendState(blend.Promote(desc))
	if err != nil {
		return nil, err
	}
	return &s.d3d10, nil
}

func (d *Device) createBlendState(draft blend.Desc1) (*blendState, error) {
	desc, err := blend.Normalize(draft)
	if err != nil {
		return nil, fmt.Errorf("device: create blend state: %w", err)
	}

	if d.states == nil {
		return d.newBlendState(desc), nil
	}
	return d.states.getOrCreateBlend(desc, d.newBlendState), nil
}
