// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/dxcompat/blend"
	"github.com/gogpu/dxcompat/device"
)

// Null is a backend that accepts every state and resolves no views.
// Useful for validation-only tooling.
type Null struct{}

// init registers the null backend on package import.
func init() {
	Register(BackendNull, func() device.Backend {
		return Null{}
	})
}

// RealizeBlendState does nothing.
func (Null) RealizeBlendState(blend.Desc1) {}

// ViewResource always fails with device.ErrNoBackend.
func (Null) ViewResource(hal.TextureView) (hal.Texture, error) {
	return nil, device.ErrNoBackend
}

// Ensure Null implements device.Backend.
var _ device.Backend = Null{}
