// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/dxcompat/com"
)

// DepthStencilViewDesc describes a depth-stencil view. It is stored as given;
// format and dimension compatibility is the backend's concern.
type DepthStencilViewDesc struct {
	// Format is the view format (use TextureFormatUndefined to inherit from
	// the texture).
	Format gputypes.TextureFormat

	// Dimension is the view dimension.
	Dimension gputypes.TextureViewDimension

	// Aspect selects depth, stencil or both.
	Aspect gputypes.TextureAspect

	// ReadOnlyDepth and ReadOnlyStencil mark the aspects the view cannot
	// write.
	ReadOnlyDepth   bool
	ReadOnlyStencil bool

	// MipSlice is the mip level the view targets.
	MipSlice uint32

	// FirstArraySlice and ArraySize select array layers.
	FirstArraySlice uint32
	ArraySize       uint32
}

// DepthStencilView is the current-version depth-stencil view contract.
//
// It answers com.IIDUnknown, com.IIDD3D11DeviceChild, com.IIDD3D11View and
// com.IIDD3D11DepthStencilView.
type DepthStencilView interface {
	DeviceChild

	// Desc returns the descriptor supplied at creation and whether one was.
	Desc() (DepthStencilViewDesc, bool)

	// Raw returns the borrowed backend view.
	Raw() hal.TextureView

	// Resource returns the viewed texture with one new reference.
	Resource() (Texture2D, error)
}

// DepthStencilView10 is the legacy-version depth-stencil view contract.
//
// It answers com.IIDD3D10DeviceChild, com.IIDD3D10View and
// com.IIDD3D10DepthStencilView.
type DepthStencilView10 interface {
	DeviceChild10

	// Desc returns the descriptor supplied at creation and whether one was.
	Desc() (DepthStencilViewDesc, bool)

	// Raw returns the borrowed backend view.
	Raw() hal.TextureView

	// Resource returns the viewed texture with one new reference.
	Resource() (Texture2D10, error)
}

type depthStencilView struct {
	*com.Identity
	device  *Device
	raw     hal.TextureView
	desc    DepthStencilViewDesc
	hasDesc bool
	d3d10   depthStencilView10

	// resMu guards res. Once resolved, res holds one reference and is
	// never replaced, so every version reaches the same texture.
	resMu sync.Mutex
	res   *texture
}

type depthStencilView10 struct {
	*com.Identity
	view *depthStencilView
}

// CreateDepthStencilView wraps a backend view. desc may be nil. The backend
// view is borrowed and never destroyed by the returned object.
func (d *Device) CreateDepthStencilView(desc *DepthStencilViewDesc, view hal.TextureView) (DepthStencilView, error) {
	v, err := d.createDepthStencilView(desc, view)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// CreateDepthStencilView10 is the legacy entry point. It returns the legacy
// façade of the same kind of object CreateDepthStencilView creates.
func (d *Device) CreateDepthStencilView10(desc *DepthStencilViewDesc, view hal.TextureView) (DepthStencilView10, error) {
	v, err := d.createDepthStencilView(desc, view)
	if err != nil {
		return nil, err
	}
	return &v.d3d10, nil
}

func (d *Device) createDepthStencilView(desc *DepthStencilViewDesc, view hal.TextureView) (*depthStencilView, error) {
	if view == nil {
		return nil, ErrNilView
	}

	v := &depthStencilView{device: d, raw: view}
	if desc != nil {
		v.desc = *desc
		v.hasDesc = true
	}
	v.Identity = com.NewIdentity("DepthStencilView", d.logger, v.destroy)
	v.d3d10 = depthStencilView10{Identity: v.Identity, view: v}

	v.Expose(v,
		com.IIDUnknown,
		com.IIDD3D11DeviceChild,
		com.IIDD3D11View,
		com.IIDD3D11DepthStencilView)
	v.Expose(&v.d3d10,
		com.IIDD3D10DeviceChild,
		com.IIDD3D10View,
		com.IIDD3D10DepthStencilView)
	return v, nil
}

// destroy drops the reference held by the resolved texture.
func (v *depthStencilView) destroy() {
	v.resMu.Lock()
	defer v.resMu.Unlock()

	if v.res != nil {
		v.res.Release()
		v.res = nil
	}
}

// resource returns the viewed texture with a reference for the caller. The
// backend is asked once per view; failures are not remembered.
func (v *depthStencilView) resource() (*texture, error) {
	v.resMu.Lock()
	defer v.resMu.Unlock()

	if v.res == nil {
		raw, err := v.device.backend.ViewResource(v.raw)
		if err != nil {
			return nil, fmt.Errorf("device: resolve view resource: %w", err)
		}
		if raw == nil {
			return nil, ErrNilResource
		}
		v.res = v.device.textures.getOrCreate(raw, v.device.newTexture)
		v.device.log().Debug("view resource resolved", "view", v.Name())
	}

	v.res.AddRef()
	return v.res, nil
}

func (v *depthStencilView) Device() *Device      { return v.device }
func (v *depthStencilView) Raw() hal.TextureView { return v.raw }
func (v *depthStencilView) d3d11()               {}

func (v *depthStencilView) Desc() (DepthStencilViewDesc, bool) {
	return v.desc, v.hasDesc
}

func (v *depthStencilView) Resource() (Texture2D, error) {
	t, err := v.resource()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (v *depthStencilView10) Device() *Device      { return v.view.device }
func (v *depthStencilView10) Raw() hal.TextureView { return v.view.raw }
func (v *depthStencilView10) d3d10()               {}

func (v *depthStencilView10) Desc() (DepthStencilViewDesc, bool) {
	return v.view.Desc()
}

func (v *depthStencilView10) Resource() (Texture2D10, error) {
	t, err := v.view.resource()
	if err != nil {
		return nil, err
	}
	return &t.d3d10, nil
}
