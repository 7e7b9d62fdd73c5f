// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxcompat/com"
)

func TestNew(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilHandle) {
		t.Errorf("New(nil) error = %v, want ErrNilHandle", err)
	}

	dev, err := New(NullHandle{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := dev.Handle().(NullHandle); !ok {
		t.Errorf("Handle() = %T, want NullHandle", dev.Handle())
	}
	if _, ok := dev.Backend().(nullBackend); !ok {
		t.Errorf("Backend() = %T, want the null backend", dev.Backend())
	}
	if dev.StateCache() == nil {
		t.Error("StateCache() should be enabled by default")
	}
}

func TestNew_NilBackendOption(t *testing.T) {
	dev, err := New(NullHandle{}, WithBackend(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := dev.Backend().(nullBackend); !ok {
		t.Errorf("Backend() = %T, want the null backend", dev.Backend())
	}
}

func TestNullHandle(t *testing.T) {
	var h NullHandle
	if h.Device() != nil {
		t.Error("Device() should be nil")
	}
	if h.Queue() != nil {
		t.Error("Queue() should be nil")
	}
	if h.Adapter() != nil {
		t.Error("Adapter() should be nil")
	}
	if got := h.SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want Undefined", got)
	}
	if info := h.AdapterInfo(); info.Name != "" || info.Type != gpucontext.AdapterTypeUnknown {
		t.Errorf("AdapterInfo() = %+v, want unnamed Unknown", info)
	}
}

func TestWrapTexture(t *testing.T) {
	dev, _ := newTestDevice(t)

	if _, err := dev.WrapTexture(nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("WrapTexture(nil) error = %v, want ErrNilResource", err)
	}

	raw := &mockHALTexture{label: "color"}
	a, err := dev.WrapTexture(raw)
	if err != nil {
		t.Fatalf("WrapTexture() error = %v", err)
	}
	b, err := dev.WrapTexture(raw)
	if err != nil {
		t.Fatalf("WrapTexture() error = %v", err)
	}
	if a != b {
		t.Error("WrapTexture() returned different objects for one texture")
	}
	if got := refCount(t, a); got != 2 {
		t.Errorf("RefCount = %d, want 2", got)
	}

	other, err := dev.WrapTexture(&mockHALTexture{label: "other"})
	if err != nil {
		t.Fatalf("WrapTexture() error = %v", err)
	}
	if com.SameObject(a, other) {
		t.Error("distinct textures share a wrapper")
	}
	other.Release()

	var legacy Texture2D10
	if err := com.Query(a, com.IIDD3D10Texture2D, &legacy); err != nil {
		t.Fatalf("Query(legacy) error = %v", err)
	}
	if legacy.Raw() != raw {
		t.Error("legacy Raw() mismatch")
	}
	var res Texture2D10
	if err := com.Query(legacy, com.IIDD3D10Resource, &res); err != nil {
		t.Fatalf("Query(resource) error = %v", err)
	}
	res.Release()
	legacy.Release()

	a.Release()
	b.Release()
	if got := dev.textures.len(); got != 0 {
		t.Errorf("registry holds %d textures, want 0", got)
	}

	// A new wrapper is made once the old one is gone.
	c, err := dev.WrapTexture(raw)
	if err != nil {
		t.Fatalf("WrapTexture() error = %v", err)
	}
	defer c.Release()
	if got := refCount(t, c); got != 1 {
		t.Errorf("RefCount = %d, want 1", got)
	}
	if raw.destroyed.Load() != 0 {
		t.Error("wrapper destruction must not destroy the backend texture")
	}
}

func TestDestroyedObjectRefusesQueries(t *testing.T) {
	dev, _ := newTestDevice(t)

	raw := &mockHALTexture{}
	tex, _ := dev.WrapTexture(raw)
	tex.Release()

	if _, err := tex.QueryInterface(com.IIDUnknown); !errors.Is(err, com.ErrNoInterface) {
		t.Errorf("QueryInterface() error = %v, want ErrNoInterface", err)
	}
	if got := tex.AddRef(); got != 0 {
		t.Errorf("AddRef() = %d, want 0 on a destroyed object", got)
	}
}
