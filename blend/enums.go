// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import "fmt"

// SimultaneousRenderTargetCount is the number of render targets a blend
// descriptor configures.
const SimultaneousRenderTargetCount = 8

// Bool is a 32-bit boolean as found in binary descriptor contracts.
// Any non-zero value means true; canonical descriptors only hold 0 or 1.
type Bool uint32

const (
	False Bool = 0
	True  Bool = 1
)

// Enabled reports whether b is non-zero.
func (b Bool) Enabled() bool { return b != False }

// canonical returns b reduced to {0,1}.
func (b Bool) canonical() Bool {
	if b != False {
		return True
	}
	return False
}

// Blend is a blend factor applied to the source or destination term.
type Blend uint32

const (
	BlendZero           Blend = 1
	BlendOne            Blend = 2
	BlendSrcColor       Blend = 3
	BlendInvSrcColor    Blend = 4
	BlendSrcAlpha       Blend = 5
	BlendInvSrcAlpha    Blend = 6
	BlendDestAlpha      Blend = 7
	BlendInvDestAlpha   Blend = 8
	BlendDestColor      Blend = 9
	BlendInvDestColor   Blend = 10
	BlendSrcAlphaSat    Blend = 11
	BlendBlendFactor    Blend = 14
	BlendInvBlendFactor Blend = 15
	BlendSrc1Color      Blend = 16
	BlendInvSrc1Color   Blend = 17
	BlendSrc1Alpha      Blend = 18
	BlendInvSrc1Alpha   Blend = 19
)

var blendNames = map[Blend]string{
	BlendZero:           "Zero",
	BlendOne:            "One",
	BlendSrcColor:       "SrcColor",
	BlendInvSrcColor:    "InvSrcColor",
	BlendSrcAlpha:       "SrcAlpha",
	BlendInvSrcAlpha:    "InvSrcAlpha",
	BlendDestAlpha:      "DestAlpha",
	BlendInvDestAlpha:   "InvDestAlpha",
	BlendDestColor:      "DestColor",
	BlendInvDestColor:   "InvDestColor",
	BlendSrcAlphaSat:    "SrcAlphaSat",
	BlendBlendFactor:    "BlendFactor",
	BlendInvBlendFactor: "InvBlendFactor",
	BlendSrc1Color:      "Src1Color",
	BlendInvSrc1Color:   "InvSrc1Color",
	BlendSrc1Alpha:      "Src1Alpha",
	BlendInvSrc1Alpha:   "InvSrc1Alpha",
}

func (b Blend) String() string {
	if name, ok := blendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Blend(%d)", uint32(b))
}

// usesColor reports whether the factor reads per-channel color terms.
func (b Blend) usesColor() bool {
	switch b {
	case BlendSrcColor, BlendInvSrcColor,
		BlendDestColor, BlendInvDestColor,
		BlendSrc1Color, BlendInvSrc1Color:
		return true
	}
	return false
}

// Op combines the weighted source and destination terms.
type Op uint32

const (
	OpAdd         Op = 1
	OpSubtract    Op = 2
	OpRevSubtract Op = 3
	OpMin         Op = 4
	OpMax         Op = 5
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpRevSubtract:
		return "RevSubtract"
	case OpMin:
		return "Min"
	case OpMax:
		return "Max"
	}
	return fmt.Sprintf("Op(%d)", uint32(o))
}

// LogicOp is a bitwise operation applied to the render target instead of
// arithmetic blending.
type LogicOp uint32

const (
	LogicOpClear LogicOp = iota
	LogicOpSet
	LogicOpCopy
	LogicOpCopyInverted
	LogicOpNoop
	LogicOpInvert
	LogicOpAnd
	LogicOpNand
	LogicOpOr
	LogicOpNor
	LogicOpXor
	LogicOpEquiv
	LogicOpAndReverse
	LogicOpAndInverted
	LogicOpOrReverse
	LogicOpOrInverted
)

var logicOpNames = [...]string{
	"Clear", "Set", "Copy", "CopyInverted",
	"Noop", "Invert", "And", "Nand",
	"Or", "Nor", "Xor", "Equiv",
	"AndReverse", "AndInverted", "OrReverse", "OrInverted",
}

func (o LogicOp) String() string {
	if int(o) < len(logicOpNames) {
		return logicOpNames[o]
	}
	return fmt.Sprintf("LogicOp(%d)", uint32(o))
}

// ColorWriteEnable selects the channels written to a render target.
type ColorWriteEnable uint8

const (
	ColorWriteEnableRed   ColorWriteEnable = 1
	ColorWriteEnableGreen ColorWriteEnable = 2
	ColorWriteEnableBlue  ColorWriteEnable = 4
	ColorWriteEnableAlpha ColorWriteEnable = 8
	ColorWriteEnableAll   ColorWriteEnable = ColorWriteEnableRed | ColorWriteEnableGreen |
		ColorWriteEnableBlue | ColorWriteEnableAlpha
)
