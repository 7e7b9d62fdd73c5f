// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"errors"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxcompat"
	"github.com/gogpu/dxcompat/com"
)

// Device errors.
var (
	// ErrNilHandle is returned when creating a device without a device handle.
	ErrNilHandle = errors.New("device: device handle is nil")

	// ErrNilView is returned when creating a view without a backend view.
	ErrNilView = errors.New("device: backend view is nil")

	// ErrNilResource is returned when a backend texture is missing.
	ErrNilResource = errors.New("device: backend resource is nil")

	// ErrNoBackend is returned by the null backend for operations that need
	// a resource-management collaborator.
	ErrNoBackend = errors.New("device: no backend configured")
)

// Handle provides the underlying GPU device from the host application.
//
// The device core never inspects the handle; it is kept so that state and
// view objects can report which device they belong to, and so backends can
// reach the host device.
type Handle = gpucontext.DeviceProvider

// NullHandle is a Handle that provides nil implementations.
// Used when no GPU is attached, e.g. for validation-only tooling.
type NullHandle struct{}

// Device returns nil for the null handle.
func (NullHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null handle.
func (NullHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null handle.
func (NullHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports a nameless adapter of unknown type.
func (NullHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null handle.
func (NullHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullHandle implements Handle.
var _ Handle = NullHandle{}

// Device creates state and view objects that answer to both the current and
// the legacy API contracts.
//
// Device is safe for concurrent use.
type Device struct {
	handle   Handle
	backend  Backend
	logger   *slog.Logger
	states   *StateCache
	textures textureRegistry
}

// New creates a device over handle.
//
// Example:
//
//	dev, err := device.New(device.NullHandle{},
//	    device.WithBackend(halstate.New()),
//	)
func New(handle Handle, opts ...Option) (*Device, error) {
	if handle == nil {
		return nil, ErrNilHandle
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Device{
		handle:   handle,
		backend:  o.backend,
		logger:   o.logger,
		textures: newTextureRegistry(),
	}
	if d.backend == nil {
		d.backend = nullBackend{}
	}
	if o.stateCache {
		d.states = NewStateCache()
	}
	return d, nil
}

// Handle returns the device handle supplied at creation.
func (d *Device) Handle() Handle {
	return d.handle
}

// Backend returns the backend collaborator.
func (d *Device) Backend() Backend {
	return d.backend
}

// StateCache returns the state object cache, or nil if caching is disabled.
func (d *Device) StateCache() *StateCache {
	return d.states
}

func (d *Device) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return dxcompat.Logger()
}

// DeviceChild is the current-version contract shared by every object a
// device creates.
//
// The interface is sealed: only this package implements it.
type DeviceChild interface {
	com.Unknown

	// Device returns the device that created the object.
	Device() *Device

	d3d11()
}

// DeviceChild10 is the legacy-version contract shared by every object a
// device creates. The interface is sealed.
type DeviceChild10 interface {
	com.Unknown

	// Device returns the device that created the object.
	Device() *Device

	d3d10()
}
