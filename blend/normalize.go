// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// Normalize validates a draft descriptor and returns its canonical form.
//
// Canonicalization:
//   - boolean fields are reduced to {0,1}
//   - targets with blending disabled get the neutral One/Zero/Add setup for
//     both color and alpha
//   - targets with the logic op disabled get LogicOpNoop
//   - without independent blending, targets 1..7 become copies of target 0
//
// The draft is taken by value. On failure the zero Desc1 and a
// *ValidationError for the first violation are returned.
func Normalize(draft Desc1) (Desc1, error) {
	d := draft
	d.AlphaToCoverageEnable = d.AlphaToCoverageEnable.canonical()
	d.IndependentBlendEnable = d.IndependentBlendEnable.canonical()

	count := d.TargetCount()
	for i := 0; i < count; i++ {
		if err := normalizeTarget(i, &d.RenderTarget[i], d.IndependentBlendEnable); err != nil {
			return Desc1{}, err
		}
	}

	for i := count; i < SimultaneousRenderTargetCount; i++ {
		d.RenderTarget[i] = d.RenderTarget[0]
	}
	return d, nil
}

// NormalizeLegacy promotes a legacy descriptor and normalizes it.
func NormalizeLegacy(draft Desc) (Desc1, error) {
	return Normalize(Promote(draft))
}

func normalizeTarget(i int, rt *RenderTargetDesc1, independent Bool) error {
	if rt.BlendEnable.Enabled() {
		rt.BlendEnable = True

		if rt.LogicOpEnable.Enabled() {
			return invalid(i, "LogicOpEnable", uint32(rt.LogicOpEnable), "logic op cannot be combined with blending")
		}
		if err := validateBlendOperations(i, rt); err != nil {
			return err
		}
	} else {
		rt.BlendEnable = False
		rt.SrcBlend = BlendOne
		rt.DestBlend = BlendZero
		rt.BlendOp = OpAdd
		rt.SrcBlendAlpha = BlendOne
		rt.DestBlendAlpha = BlendZero
		rt.BlendOpAlpha = OpAdd
	}

	if rt.LogicOpEnable.Enabled() {
		rt.LogicOpEnable = True

		// Logic ops apply to every target alike.
		if independent.Enabled() {
			return invalid(i, "IndependentBlendEnable", uint32(independent), "logic op requires independent blending to be disabled")
		}
		if !ValidLogicOp(rt.LogicOp) {
			return invalid(i, "LogicOp", uint32(rt.LogicOp), "logic op out of range")
		}
	} else {
		rt.LogicOpEnable = False
		rt.LogicOp = LogicOpNoop
	}

	if rt.RenderTargetWriteMask > ColorWriteEnableAll {
		return invalid(i, "RenderTargetWriteMask", uint32(rt.RenderTargetWriteMask), "write mask exceeds all channels")
	}
	return nil
}

func validateBlendOperations(i int, rt *RenderTargetDesc1) error {
	switch {
	case !ValidBlendOp(rt.BlendOp):
		return invalid(i, "BlendOp", uint32(rt.BlendOp), "blend op out of range")
	case !ValidBlendOp(rt.BlendOpAlpha):
		return invalid(i, "BlendOpAlpha", uint32(rt.BlendOpAlpha), "blend op out of range")
	case !ValidBlendFactor(rt.SrcBlend):
		return invalid(i, "SrcBlend", uint32(rt.SrcBlend), "blend factor out of range")
	case !ValidBlendFactor(rt.DestBlend):
		return invalid(i, "DestBlend", uint32(rt.DestBlend), "blend factor out of range")
	case !ValidBlendFactorAlpha(rt.SrcBlendAlpha):
		return invalid(i, "SrcBlendAlpha", uint32(rt.SrcBlendAlpha), "not a valid alpha blend factor")
	case !ValidBlendFactorAlpha(rt.DestBlendAlpha):
		return invalid(i, "DestBlendAlpha", uint32(rt.DestBlendAlpha), "not a valid alpha blend factor")
	}
	return nil
}

// ValidBlendOp reports whether op is in [OpAdd, OpMax].
func ValidBlendOp(op Op) bool {
	return op >= OpAdd && op <= OpMax
}

// ValidBlendFactor reports whether f is in [BlendZero, BlendInvSrc1Alpha].
func ValidBlendFactor(f Blend) bool {
	return f >= BlendZero && f <= BlendInvSrc1Alpha
}

// ValidBlendFactorAlpha reports whether f may be used as an alpha factor.
// Alpha blending cannot reference per-channel color terms.
func ValidBlendFactorAlpha(f Blend) bool {
	return ValidBlendFactor(f) && !f.usesColor()
}

// ValidLogicOp reports whether op is in [LogicOpClear, LogicOpOrInverted].
func ValidLogicOp(op LogicOp) bool {
	return op <= LogicOpOrInverted
}
