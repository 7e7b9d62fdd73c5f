// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TargetState is the backend form of one render target's blend setup.
type TargetState struct {
	// Color carries the blend state and write mask. Format is left undefined;
	// it is bound when the state is combined with a render pass.
	Color gputypes.ColorTargetState

	// LogicOpEnable and LogicOp are carried separately because the backend
	// color target state has no logic-op slot.
	LogicOpEnable bool
	LogicOp       LogicOp
}

// TargetStates translates a canonical descriptor into per-target backend
// state. Dual-source factors yield ErrUnsupportedFactor.
func TargetStates(d Desc1) ([SimultaneousRenderTargetCount]TargetState, error) {
	var out [SimultaneousRenderTargetCount]TargetState

	for i := range d.RenderTarget {
		rt := &d.RenderTarget[i]
		ts := TargetState{
			Color: gputypes.ColorTargetState{
				Format:    gputypes.TextureFormatUndefined,
				WriteMask: WriteMask(rt.RenderTargetWriteMask),
			},
			LogicOpEnable: rt.LogicOpEnable.Enabled(),
			LogicOp:       rt.LogicOp,
		}

		if rt.BlendEnable.Enabled() {
			state, err := blendState(rt)
			if err != nil {
				return out, fmt.Errorf("render target %d: %w", i, err)
			}
			ts.Color.Blend = &state
		}
		out[i] = ts
	}
	return out, nil
}

func blendState(rt *RenderTargetDesc1) (gputypes.BlendState, error) {
	var (
		s   gputypes.BlendState
		err error
	)
	if s.Color.SrcFactor, err = Factor(rt.SrcBlend); err != nil {
		return s, err
	}
	if s.Color.DstFactor, err = Factor(rt.DestBlend); err != nil {
		return s, err
	}
	if s.Alpha.SrcFactor, err = Factor(rt.SrcBlendAlpha); err != nil {
		return s, err
	}
	if s.Alpha.DstFactor, err = Factor(rt.DestBlendAlpha); err != nil {
		return s, err
	}
	s.Color.Operation = Operation(rt.BlendOp)
	s.Alpha.Operation = Operation(rt.BlendOpAlpha)
	return s, nil
}

// Factor maps a blend factor to its backend equivalent.
func Factor(b Blend) (gputypes.BlendFactor, error) {
	switch b {
	case BlendZero:
		return gputypes.BlendFactorZero, nil
	case BlendOne:
		return gputypes.BlendFactorOne, nil
	case BlendSrcColor:
		return gputypes.BlendFactorSrc, nil
	case BlendInvSrcColor:
		return gputypes.BlendFactorOneMinusSrc, nil
	case BlendSrcAlpha:
		return gputypes.BlendFactorSrcAlpha, nil
	case BlendInvSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha, nil
	case BlendDestAlpha:
		return gputypes.BlendFactorDstAlpha, nil
	case BlendInvDestAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha, nil
	case BlendDestColor:
		return gputypes.BlendFactorDst, nil
	case BlendInvDestColor:
		return gputypes.BlendFactorOneMinusDst, nil
	case BlendSrcAlphaSat:
		return gputypes.BlendFactorSrcAlphaSaturated, nil
	case BlendBlendFactor:
		return gputypes.BlendFactorConstant, nil
	case BlendInvBlendFactor:
		return gputypes.BlendFactorOneMinusConstant, nil
	}
	return gputypes.BlendFactorZero, fmt.Errorf("%w: %s", ErrUnsupportedFactor, b)
}

// Operation maps a blend op to its backend equivalent. Ops are validated
// before translation; anything else maps to add.
func Operation(op Op) gputypes.BlendOperation {
	switch op {
	case OpSubtract:
		return gputypes.BlendOperationSubtract
	case OpRevSubtract:
		return gputypes.BlendOperationReverseSubtract
	case OpMin:
		return gputypes.BlendOperationMin
	case OpMax:
		return gputypes.BlendOperationMax
	}
	return gputypes.BlendOperationAdd
}

// WriteMask maps a color write mask to its backend equivalent.
func WriteMask(m ColorWriteEnable) gputypes.ColorWriteMask {
	var out gputypes.ColorWriteMask
	if m&ColorWriteEnableRed != 0 {
		out |= gputypes.ColorWriteMaskRed
	}
	if m&ColorWriteEnableGreen != 0 {
		out |= gputypes.ColorWriteMaskGreen
	}
	if m&ColorWriteEnableBlue != 0 {
		out |= gputypes.ColorWriteMaskBlue
	}
	if m&ColorWriteEnableAlpha != 0 {
		out |= gputypes.ColorWriteMaskAlpha
	}
	return out
}
