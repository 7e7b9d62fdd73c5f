// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device_test

import (
	"fmt"
	"log"

	"github.com/gogpu/dxcompat/backend/halstate"
	"github.com/gogpu/dxcompat/blend"
	"github.com/gogpu/dxcompat/com"
	"github.com/gogpu/dxcompat/device"
)

func ExampleDevice_CreateBlendState1() {
	dev, err := device.New(device.NullHandle{}, device.WithBackend(halstate.New()))
	if err != nil {
		log.Fatal(err)
	}

	var desc blend.Desc1
	desc.RenderTarget[0] = blend.RenderTargetDesc1{
		BlendEnable:           blend.True,
		SrcBlend:              blend.BlendSrcAlpha,
		DestBlend:             blend.BlendInvSrcAlpha,
		BlendOp:               blend.OpAdd,
		SrcBlendAlpha:         blend.BlendOne,
		DestBlendAlpha:        blend.BlendZero,
		BlendOpAlpha:          blend.OpAdd,
		RenderTargetWriteMask: blend.ColorWriteEnableAll,
	}

	bs, err := dev.CreateBlendState1(desc)
	if err != nil {
		log.Fatal(err)
	}
	defer bs.Release()

	var legacy device.BlendState10
	if err := com.Query(bs, com.IIDD3D10BlendState, &legacy); err != nil {
		log.Fatal(err)
	}
	defer legacy.Release()

	fmt.Println(com.SameObject(bs, legacy))
	fmt.Println(bs.Desc1().RenderTarget[7].DestBlend)
	// Output:
	// true
	// InvSrcAlpha
}

func ExampleDevice_CreateBlendState1_invalid() {
	dev, err := device.New(device.NullHandle{})
	if err != nil {
		log.Fatal(err)
	}

	var desc blend.Desc1
	desc.RenderTarget[0].BlendEnable = blend.True
	desc.RenderTarget[0].LogicOpEnable = blend.True

	_, err = dev.CreateBlendState1(desc)
	fmt.Println(err)
	// Output:
	// device: create blend state: blend: render target 0: LogicOpEnable=1: logic op cannot be combined with blending
}
