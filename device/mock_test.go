// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/dxcompat/blend"
	"github.com/gogpu/dxcompat/com"
)

// =============================================================================
// Mock Types for Testing
// =============================================================================

// mockHALTexture is a test double for hal.Texture.
type mockHALTexture struct {
	label     string
	destroyed atomic.Int32
}

// Destroy implements hal.Resource.
func (t *mockHALTexture) Destroy() { t.destroyed.Add(1) }

// NativeHandle implements hal.NativeHandle.
func (t *mockHALTexture) NativeHandle() uintptr { return 0 }

// CurrentUsage implements hal.Texture; the mock tracks no usage.
func (t *mockHALTexture) CurrentUsage() gputypes.TextureUsage { return 0 }

func (t *mockHALTexture) AddPendingRef() {}
func (t *mockHALTexture) DecPendingRef() {}

// mockHALTextureView is a test double for hal.TextureView.
type mockHALTextureView struct {
	texture   hal.Texture
	destroyed atomic.Int32
}

// Destroy implements hal.Resource.
func (v *mockHALTextureView) Destroy() { v.destroyed.Add(1) }

// NativeHandle implements hal.NativeHandle.
func (v *mockHALTextureView) NativeHandle() uintptr { return 0 }

var errUnknownView = errors.New("mock: unknown view")

// mockBackend is a test double for Backend.
type mockBackend struct {
	mu       sync.Mutex
	realized []blend.Desc1

	resolveCalls atomic.Int32
}

func (b *mockBackend) RealizeBlendState(desc blend.Desc1) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.realized = append(b.realized, desc)
}

func (b *mockBackend) ViewResource(view hal.TextureView) (hal.Texture, error) {
	b.resolveCalls.Add(1)
	v, ok := view.(*mockHALTextureView)
	if !ok {
		return nil, errUnknownView
	}
	return v.texture, nil
}

func (b *mockBackend) realizedCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.realized)
}

// newTestDevice creates a device over the null handle with a mock backend.
func newTestDevice(t *testing.T, opts ...Option) (*Device, *mockBackend) {
	t.Helper()
	backend := &mockBackend{}
	dev, err := New(NullHandle{}, append([]Option{WithBackend(backend)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return dev, backend
}

// refCount reads the shared reference count through any façade.
func refCount(t *testing.T, u com.Unknown) uint32 {
	t.Helper()
	u.AddRef()
	return u.Release()
}
