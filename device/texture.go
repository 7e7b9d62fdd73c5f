// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/dxcompat/com"
)

// Texture2D is the current-version contract of a texture resource.
//
// It answers com.IIDUnknown, com.IIDD3D11DeviceChild, com.IIDD3D11Resource and
// com.IIDD3D11Texture2D.
type Texture2D interface {
	DeviceChild

	// Raw returns the backend texture. The backend keeps ownership.
	Raw() hal.Texture
}

// Texture2D10 is the legacy-version contract of a texture resource.
//
// It answers com.IIDD3D10DeviceChild, com.IIDD3D10Resource and
// com.IIDD3D10Texture2D.
type Texture2D10 interface {
	DeviceChild10

	// Raw returns the backend texture. The backend keeps ownership.
	Raw() hal.Texture
}

// texture wraps a borrowed backend texture. Destroying the wrapper leaves
// the backend texture alone.
type texture struct {
	*com.Identity
	device *Device
	raw    hal.Texture
	d3d10  texture10
}

type texture10 struct {
	*com.Identity
	tex *texture
}

func (t *texture) Device() *Device  { return t.device }
func (t *texture) Raw() hal.Texture { return t.raw }
func (t *texture) d3d11()           {}

func (t *texture10) Device() *Device  { return t.tex.device }
func (t *texture10) Raw() hal.Texture { return t.tex.raw }
func (t *texture10) d3d10()           {}

// WrapTexture returns the wrapper for a backend texture with one new
// reference. Every call for the same backend texture yields the same logical
// object while that object is alive.
func (d *Device) WrapTexture(raw hal.Texture) (Texture2D, error) {
	if raw == nil {
		return nil, ErrNilResource
	}
	return d.textures.getOrCreate(raw, d.newTexture), nil
}

func (d *Device) newTexture(raw hal.Texture) *texture {
	t := &texture{device: d, raw: raw}
	t.Identity = com.NewIdentity("Texture2D", d.logger, func() {
		d.textures.remove(raw, t)
	})
	t.d3d10 = texture10{Identity: t.Identity, tex: t}

	t.Expose(t,
		com.IIDUnknown,
		com.IIDD3D11DeviceChild,
		com.IIDD3D11Resource,
		com.IIDD3D11Texture2D)
	t.Expose(&t.d3d10,
		com.IIDD3D10DeviceChild,
		com.IIDD3D10Resource,
		com.IIDD3D10Texture2D)
	return t
}

// textureRegistry maps backend textures to their live wrappers.
//
// Backend textures are used as map keys, so their dynamic types must be
// comparable; hal implementations are pointers.
type textureRegistry struct {
	mu       sync.RWMutex
	textures map[hal.Texture]*texture
}

func newTextureRegistry() textureRegistry {
	return textureRegistry{textures: make(map[hal.Texture]*texture)}
}

// getOrCreate returns the live wrapper for raw with a new reference, or
// creates one.
func (r *textureRegistry) getOrCreate(raw hal.Texture, create func(hal.Texture) *texture) *texture {
	r.mu.RLock()
	if t, ok := r.textures[raw]; ok && t.TryAddRef() {
		r.mu.RUnlock()
		return t
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.textures[raw]; ok && t.TryAddRef() {
		return t
	}
	t := create(raw)
	r.textures[raw] = t
	return t
}

func (r *textureRegistry) remove(raw hal.Texture, t *texture) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.textures[raw] == t {
		delete(r.textures, raw)
	}
}

func (r *textureRegistry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.textures)
}
