// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device creates immutable blend state objects and depth-stencil
// views that answer to both the current (D3D11-shaped) and the legacy
// (D3D10-shaped) API contracts.
//
// # Objects and façades
//
// Every object is one logical entity with a single reference count. It is
// reachable through a current façade (BlendState, DepthStencilView,
// Texture2D) and a legacy façade (BlendState10, DepthStencilView10,
// Texture2D10). Façades are obtained with com.Query; both share the object's
// identity, so com.SameObject reports true across versions and a reference
// taken through one façade may be released through the other.
//
//	bs, err := dev.CreateBlendState1(desc)
//	if err != nil {
//		return err
//	}
//	defer bs.Release()
//
//	var legacy device.BlendState10
//	if err := com.Query(bs, com.IIDD3D10BlendState, &legacy); err != nil {
//		return err
//	}
//	defer legacy.Release()
//
// # Blend states
//
// Descriptors are validated and canonicalized by package blend before an
// object is created. With the state cache enabled (the default) equivalent
// descriptors yield the same live object.
//
// # Views
//
// Depth-stencil views borrow a hal.TextureView. Resource resolves the viewed
// texture through the Backend once per API version and returns it with a new
// reference; both versions reach the same texture object.
//
// # Thread Safety
//
// Device and every object it creates are safe for concurrent use.
package device
