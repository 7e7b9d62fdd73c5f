// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package com

import "github.com/google/uuid"

// IID identifies an interface contract.
type IID = uuid.UUID

// Interface identifiers answered by objects in this module. Values match the
// published Direct3D interface GUIDs.
var (
	IIDUnknown = uuid.MustParse("00000000-0000-0000-c000-000000000046")

	IIDD3D11DeviceChild       = uuid.MustParse("1841e5c8-16b0-489b-bcc8-44cfb0d5deae")
	IIDD3D11BlendState        = uuid.MustParse("75b68faa-347d-4159-8f45-a0640f01cd9a")
	IIDD3D11BlendState1       = uuid.MustParse("cc86fabe-da55-401d-85e7-e3c9de2877e9")
	IIDD3D11View              = uuid.MustParse("839d1216-bb2e-412b-b7f4-a9dbebe08ed1")
	IIDD3D11DepthStencilView  = uuid.MustParse("9fdac92a-1876-48c3-afad-25b94f84a9b6")
	IIDD3D11Resource          = uuid.MustParse("dc8e63f3-d12b-4952-b47b-5e45026a862d")
	IIDD3D11Texture2D         = uuid.MustParse("6f15aaf2-d208-4e89-9ab4-489535d34f9c")
	IIDD3D10DeviceChild       = uuid.MustParse("9b7e4c00-342c-4106-a19f-4f2704f689f0")
	IIDD3D10BlendState        = uuid.MustParse("edad8d19-8a35-4d6d-8566-2ea276cde161")
	IIDD3D10BlendState1       = uuid.MustParse("edad8d99-8a35-4d6d-8566-2ea276cde161")
	IIDD3D10View              = uuid.MustParse("c902b03f-60a7-49ba-9936-2a3ab37a7e33")
	IIDD3D10DepthStencilView  = uuid.MustParse("9b7e4c09-342c-4106-a19f-4f2704f689f0")
	IIDD3D10Resource          = uuid.MustParse("9b7e4c01-342c-4106-a19f-4f2704f689f0")
	IIDD3D10Texture2D         = uuid.MustParse("9b7e4c04-342c-4106-a19f-4f2704f689f0")
	IIDD3D11RasterizerState   = uuid.MustParse("9bb4ab81-ab1a-4d8f-b506-fc04200b6ee7")
	IIDD3D11DepthStencilState = uuid.MustParse("03823efb-8d8f-4e1c-9aa2-f64bb2cbfdf1")
)

var interfaceNames = map[IID]string{
	IIDUnknown:                "IUnknown",
	IIDD3D11DeviceChild:       "ID3D11DeviceChild",
	IIDD3D11BlendState:        "ID3D11BlendState",
	IIDD3D11BlendState1:       "ID3D11BlendState1",
	IIDD3D11View:              "ID3D11View",
	IIDD3D11DepthStencilView:  "ID3D11DepthStencilView",
	IIDD3D11Resource:          "ID3D11Resource",
	IIDD3D11Texture2D:         "ID3D11Texture2D",
	IIDD3D10DeviceChild:       "ID3D10DeviceChild",
	IIDD3D10BlendState:        "ID3D10BlendState",
	IIDD3D10BlendState1:       "ID3D10BlendState1",
	IIDD3D10View:              "ID3D10View",
	IIDD3D10DepthStencilView:  "ID3D10DepthStencilView",
	IIDD3D10Resource:          "ID3D10Resource",
	IIDD3D10Texture2D:         "ID3D10Texture2D",
	IIDD3D11RasterizerState:   "ID3D11RasterizerState",
	IIDD3D11DepthStencilState: "ID3D11DepthStencilState",
}

// InterfaceName returns the contract name for a known identifier, or the
// identifier's string form otherwise.
func InterfaceName(iid IID) string {
	if name, ok := interfaceNames[iid]; ok {
		return name
	}
	return "{" + iid.String() + "}"
}
