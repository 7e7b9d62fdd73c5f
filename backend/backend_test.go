// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/dxcompat/blend"
	"github.com/gogpu/dxcompat/device"
)

func TestNullBackend(t *testing.T) {
	var b Null
	b.RealizeBlendState(blend.Desc1{})

	tex, err := b.ViewResource(nil)
	if !errors.Is(err, device.ErrNoBackend) {
		t.Errorf("ViewResource() error = %v, want ErrNoBackend", err)
	}
	if tex != nil {
		t.Error("ViewResource() returned a texture")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Null backend is auto-registered via init()
	if !IsRegistered(BackendNull) {
		t.Error("null backend should be auto-registered")
	}

	b := Get(BackendNull)
	if b == nil {
		t.Fatal("Get(null) returned nil")
	}
	if _, ok := b.(Null); !ok {
		t.Errorf("Get(null) = %T, want Null", b)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}

	_, err := New("nonexistent")
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("New(nonexistent) error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := Available()
	if !slices.Contains(available, BackendNull) {
		t.Errorf("Available() = %v, should include %q", available, BackendNull)
	}
	if !slices.IsSorted(available) {
		t.Errorf("Available() = %v, want sorted", available)
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	// Null is the default unless halstate is linked in.
	if _, ok := b.(Null); !ok {
		t.Logf("Default() returned %T (may vary based on registered backends)", b)
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", func() device.Backend { return Null{} })

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	b, err := New("test-backend")
	if err != nil || b == nil {
		t.Errorf("New(test-backend) = %v, %v", b, err)
	}

	Unregister("test-backend")

	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	Register(BackendHAL, func() device.Backend { return priorityBackend{} })
	defer Unregister(BackendHAL)

	if _, ok := Default().(priorityBackend); !ok {
		t.Errorf("Default() = %T, want the %q backend", Default(), BackendHAL)
	}
}

type priorityBackend struct{ Null }
