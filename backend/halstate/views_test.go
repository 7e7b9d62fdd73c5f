// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halstate

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxcompat/com"
	"github.com/gogpu/dxcompat/device"
)

// mockHALTexture is a test double for hal.Texture.
type mockHALTexture struct{ destroyed int }

func (t *mockHALTexture) Destroy()                            { t.destroyed++ }
func (t *mockHALTexture) NativeHandle() uintptr               { return 0 }
func (t *mockHALTexture) CurrentUsage() gputypes.TextureUsage { return 0 }
func (t *mockHALTexture) AddPendingRef()                      {}
func (t *mockHALTexture) DecPendingRef()                      {}

// mockHALTextureView is a test double for hal.TextureView.
type mockHALTextureView struct{ destroyed int }

func (v *mockHALTextureView) Destroy()              { v.destroyed++ }
func (v *mockHALTextureView) NativeHandle() uintptr { return 0 }

func TestTrack(t *testing.T) {
	b := New()
	view := &mockHALTextureView{}
	tex := &mockHALTexture{}

	if err := b.Track(nil, tex); !errors.Is(err, ErrNilView) {
		t.Errorf("Track(nil, tex) error = %v, want ErrNilView", err)
	}
	if err := b.Track(view, nil); !errors.Is(err, ErrNilTexture) {
		t.Errorf("Track(view, nil) error = %v, want ErrNilTexture", err)
	}
	if _, err := b.ViewResource(view); !errors.Is(err, ErrUntrackedView) {
		t.Errorf("ViewResource() error = %v, want ErrUntrackedView", err)
	}
	if _, err := b.ViewResource(nil); !errors.Is(err, ErrNilView) {
		t.Errorf("ViewResource(nil) error = %v, want ErrNilView", err)
	}

	if err := b.Track(view, tex); err != nil {
		t.Fatalf("Track() error = %v", err)
	}
	got, err := b.ViewResource(view)
	if err != nil {
		t.Fatalf("ViewResource() error = %v", err)
	}
	if got != tex {
		t.Error("ViewResource() returned a different texture")
	}
	if b.TrackedViews() != 1 {
		t.Errorf("TrackedViews() = %d, want 1", b.TrackedViews())
	}

	if !b.Untrack(view) {
		t.Error("Untrack() = false for a tracked view")
	}
	if b.Untrack(view) {
		t.Error("Untrack() = true for an untracked view")
	}
	if _, err := b.ViewResource(view); !errors.Is(err, ErrUntrackedView) {
		t.Errorf("ViewResource() error = %v after Untrack, want ErrUntrackedView", err)
	}
	if tex.destroyed != 0 || view.destroyed != 0 {
		t.Error("backend must not destroy hal objects it tracks")
	}
}

func TestDeviceIntegration(t *testing.T) {
	b := New()
	dev, err := device.New(device.NullHandle{}, device.WithBackend(b))
	if err != nil {
		t.Fatalf("device.New() error = %v", err)
	}

	bs, err := dev.CreateBlendState1(alphaBlendDesc(t))
	if err != nil {
		t.Fatalf("CreateBlendState1() error = %v", err)
	}
	defer bs.Release()

	r, ok := b.Lookup(bs.Desc1())
	if !ok {
		t.Fatal("device did not realize the blend state through the backend")
	}
	if r.Err != nil {
		t.Errorf("realized Err = %v", r.Err)
	}

	view := &mockHALTextureView{}
	tex := &mockHALTexture{}
	if err := b.Track(view, tex); err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	dsv, err := dev.CreateDepthStencilView10(nil, view)
	if err != nil {
		t.Fatalf("CreateDepthStencilView10() error = %v", err)
	}
	defer dsv.Release()

	res, err := dsv.Resource()
	if err != nil {
		t.Fatalf("Resource() error = %v", err)
	}
	defer res.Release()
	if res.Raw() != tex {
		t.Error("Resource() did not wrap the tracked texture")
	}

	var current device.DepthStencilView
	if err := com.Query(dsv, com.IIDD3D11DepthStencilView, &current); err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	defer current.Release()

	res11, err := current.Resource()
	if err != nil {
		t.Fatalf("Resource() error = %v", err)
	}
	defer res11.Release()
	if !com.SameObject(res, res11) {
		t.Error("versions resolved to different texture objects")
	}

	untracked, err := dev.CreateDepthStencilView(nil, &mockHALTextureView{})
	if err != nil {
		t.Fatalf("CreateDepthStencilView() error = %v", err)
	}
	defer untracked.Release()
	if _, err := untracked.Resource(); !errors.Is(err, ErrUntrackedView) {
		t.Errorf("Resource() error = %v, want ErrUntrackedView", err)
	}
}

func TestDeviceIntegration_RetrackKeepsResolvedTexture(t *testing.T) {
	b := New()
	dev, err := device.New(device.NullHandle{}, device.WithBackend(b))
	if err != nil {
		t.Fatalf("device.New() error = %v", err)
	}

	view := &mockHALTextureView{}
	first, second := &mockHALTexture{}, &mockHALTexture{}
	if err := b.Track(view, first); err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	dsv, err := dev.CreateDepthStencilView(nil, view)
	if err != nil {
		t.Fatalf("CreateDepthStencilView() error = %v", err)
	}
	defer dsv.Release()

	res, err := dsv.Resource()
	if err != nil {
		t.Fatalf("Resource() error = %v", err)
	}
	defer res.Release()

	var legacy device.DepthStencilView10
	if err := com.Query(dsv, com.IIDD3D10DepthStencilView, &legacy); err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	defer legacy.Release()

	tests := []struct {
		name   string
		mutate func() error
	}{
		{"retracked", func() error { return b.Track(view, second) }},
		{"untracked", func() error { b.Untrack(view); return nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mutate(); err != nil {
				t.Fatalf("mutate error = %v", err)
			}
			res10, err := legacy.Resource()
			if err != nil {
				t.Fatalf("legacy Resource() error = %v", err)
			}
			defer res10.Release()

			if res10.Raw() != first {
				t.Error("legacy Resource() does not denote the first resolved texture")
			}
			if !com.SameObject(res, res10) {
				t.Error("versions resolved to different texture objects")
			}
		})
	}
}
