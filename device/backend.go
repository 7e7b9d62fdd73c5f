// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/dxcompat/blend"
)

// Backend is the rendering and resource-management collaborator.
//
// Implementations must be safe for concurrent use.
type Backend interface {
	// RealizeBlendState receives every newly created blend state's canonical
	// descriptor, unchanged.
	RealizeBlendState(desc blend.Desc1)

	// ViewResource returns the texture a backend view was created from.
	// Ownership of both stays with the backend.
	ViewResource(view hal.TextureView) (hal.Texture, error)
}

// nullBackend is used when no backend is configured.
type nullBackend struct{}

func (nullBackend) RealizeBlendState(blend.Desc1) {}

func (nullBackend) ViewResource(hal.TextureView) (hal.Texture, error) {
	return nil, ErrNoBackend
}
