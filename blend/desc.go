// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// RenderTargetDesc is the legacy per-target blend configuration.
type RenderTargetDesc struct {
	BlendEnable           Bool
	SrcBlend              Blend
	DestBlend             Blend
	BlendOp               Op
	SrcBlendAlpha         Blend
	DestBlendAlpha        Blend
	BlendOpAlpha          Op
	RenderTargetWriteMask ColorWriteEnable
}

// RenderTargetDesc1 is the current per-target blend configuration. It adds
// the logic operation to the legacy shape.
type RenderTargetDesc1 struct {
	BlendEnable           Bool
	LogicOpEnable         Bool
	SrcBlend              Blend
	DestBlend             Blend
	BlendOp               Op
	SrcBlendAlpha         Blend
	DestBlendAlpha        Blend
	BlendOpAlpha          Op
	LogicOp               LogicOp
	RenderTargetWriteMask ColorWriteEnable
}

// Desc is the legacy blend descriptor.
type Desc struct {
	AlphaToCoverageEnable  Bool
	IndependentBlendEnable Bool
	RenderTarget           [SimultaneousRenderTargetCount]RenderTargetDesc
}

// Desc1 is the current blend descriptor.
//
// Desc1 is a comparable value. Descriptors returned by Normalize are canonical,
// so two of them describe the same blend behavior exactly when they are ==.
type Desc1 struct {
	AlphaToCoverageEnable  Bool
	IndependentBlendEnable Bool
	RenderTarget           [SimultaneousRenderTargetCount]RenderTargetDesc1
}

// Promote upgrades a legacy descriptor to the current shape. Logic operations
// are disabled and set to LogicOpNoop; every other field is copied.
func Promote(src Desc) Desc1 {
	dst := Desc1{
		AlphaToCoverageEnable:  src.AlphaToCoverageEnable,
		IndependentBlendEnable: src.IndependentBlendEnable,
	}
	for i := range src.RenderTarget {
		rt := &src.RenderTarget[i]
		dst.RenderTarget[i] = RenderTargetDesc1{
			BlendEnable:           rt.BlendEnable,
			LogicOpEnable:         False,
			SrcBlend:              rt.SrcBlend,
			DestBlend:             rt.DestBlend,
			BlendOp:               rt.BlendOp,
			SrcBlendAlpha:         rt.SrcBlendAlpha,
			DestBlendAlpha:        rt.DestBlendAlpha,
			BlendOpAlpha:          rt.BlendOpAlpha,
			LogicOp:               LogicOpNoop,
			RenderTargetWriteMask: rt.RenderTargetWriteMask,
		}
	}
	return dst
}

// Legacy projects d onto the legacy shape, dropping the logic-op fields.
func (d Desc1) Legacy() Desc {
	dst := Desc{
		AlphaToCoverageEnable:  d.AlphaToCoverageEnable,
		IndependentBlendEnable: d.IndependentBlendEnable,
	}
	for i := range d.RenderTarget {
		rt := &d.RenderTarget[i]
		dst.RenderTarget[i] = RenderTargetDesc{
			BlendEnable:           rt.BlendEnable,
			SrcBlend:              rt.SrcBlend,
			DestBlend:             rt.DestBlend,
			BlendOp:               rt.BlendOp,
			SrcBlendAlpha:         rt.SrcBlendAlpha,
			DestBlendAlpha:        rt.DestBlendAlpha,
			BlendOpAlpha:          rt.BlendOpAlpha,
			RenderTargetWriteMask: rt.RenderTargetWriteMask,
		}
	}
	return dst
}

// TargetCount returns the number of render targets that carry independent
// configuration: all of them with independent blending, otherwise only the
// first.
func (d *Desc1) TargetCount() int {
	if d.IndependentBlendEnable.Enabled() {
		return SimultaneousRenderTargetCount
	}
	return 1
}
