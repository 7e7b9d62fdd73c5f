// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halstate

import (
	"errors"
	"sync"

	"github.com/gogpu/wgpu/hal"
)

// View tracking errors.
var (
	// ErrNilView is returned when tracking a nil view.
	ErrNilView = errors.New("halstate: view is nil")

	// ErrNilTexture is returned when tracking a view of a nil texture.
	ErrNilTexture = errors.New("halstate: texture is nil")

	// ErrUntrackedView is returned when resolving a view that was never
	// tracked or has been untracked.
	ErrUntrackedView = errors.New("halstate: view not tracked")
)

// viewTable maps hal views to the textures they were created from.
// hal implementations are pointers, so views are comparable map keys.
type viewTable struct {
	mu    sync.RWMutex
	views map[hal.TextureView]hal.Texture
}

func newViewTable() viewTable {
	return viewTable{views: make(map[hal.TextureView]hal.Texture)}
}

// Track records that view was created from tex. Tracking a view again
// replaces its texture for later lookups; device views that already resolved
// their resource keep it.
func (b *Backend) Track(view hal.TextureView, tex hal.Texture) error {
	if view == nil {
		return ErrNilView
	}
	if tex == nil {
		return ErrNilTexture
	}

	b.views.mu.Lock()
	defer b.views.mu.Unlock()
	b.views.views[view] = tex
	return nil
}

// Untrack forgets view. It reports whether the view was tracked.
func (b *Backend) Untrack(view hal.TextureView) bool {
	b.views.mu.Lock()
	defer b.views.mu.Unlock()

	if _, ok := b.views.views[view]; !ok {
		return false
	}
	delete(b.views.views, view)
	return true
}

// ViewResource implements device.Backend.
func (b *Backend) ViewResource(view hal.TextureView) (hal.Texture, error) {
	if view == nil {
		return nil, ErrNilView
	}

	b.views.mu.RLock()
	defer b.views.mu.RUnlock()

	tex, ok := b.views.views[view]
	if !ok {
		return nil, ErrUntrackedView
	}
	return tex, nil
}

// TrackedViews returns the number of tracked views.
func (b *Backend) TrackedViews() int {
	b.views.mu.RLock()
	defer b.views.mu.RUnlock()
	return len(b.views.views)
}
