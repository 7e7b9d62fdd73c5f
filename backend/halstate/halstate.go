// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halstate

import (
	"log/slog"

	"github.com/gogpu/dxcompat"
	"github.com/gogpu/dxcompat/backend"
	"github.com/gogpu/dxcompat/blend"
	"github.com/gogpu/dxcompat/device"
	"github.com/gogpu/dxcompat/internal/cache"
)

// init registers the backend on package import.
func init() {
	backend.Register(backend.BackendHAL, func() device.Backend {
		return New()
	})
}

// Realized is the backend form of one canonical blend descriptor.
type Realized struct {
	// Desc is the canonical descriptor.
	Desc blend.Desc1

	// Hash is blend.Hash(Desc).
	Hash uint64

	// Targets holds the per-target backend state. Zero when Err is set.
	Targets [blend.SimultaneousRenderTargetCount]blend.TargetState

	// Err records why translation failed, e.g. a dual-source factor the
	// backend cannot express. The descriptor itself is still valid.
	Err error
}

// Backend realizes blend states and resolves views.
//
// Thread Safety:
// Backend is safe for concurrent use. Realized states live in a sharded LRU
// cache keyed by canonical descriptor; the view table has its own lock.
type Backend struct {
	states *cache.Sharded[blend.Desc1, *Realized]
	views  viewTable
	logger *slog.Logger
}

// New creates an empty backend.
func New(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{
		states: cache.NewSharded[blend.Desc1, *Realized](o.capacity, blend.Hash),
		views:  newViewTable(),
		logger: o.logger,
	}
}

// Ensure Backend implements device.Backend.
var _ device.Backend = (*Backend)(nil)

// RealizeBlendState implements device.Backend.
func (b *Backend) RealizeBlendState(desc blend.Desc1) {
	b.Realize(desc)
}

// Realize returns the realized form of a canonical descriptor, translating
// it on first use. Descriptors are compared in full, so equal hashes of
// different descriptors never share an entry.
func (b *Backend) Realize(desc blend.Desc1) *Realized {
	return b.states.GetOrCreate(desc, func() *Realized {
		return b.realize(desc)
	})
}

func (b *Backend) realize(desc blend.Desc1) *Realized {
	r := &Realized{Desc: desc, Hash: blend.Hash(desc)}
	r.Targets, r.Err = blend.TargetStates(desc)
	if r.Err != nil {
		r.Targets = [blend.SimultaneousRenderTargetCount]blend.TargetState{}
		b.log().Warn("blend state not expressible by backend", "hash", r.Hash, "err", r.Err)
	}
	return r
}

// Lookup returns the realized form of desc if it is cached. It counts
// neither as a hit nor as a use for eviction.
func (b *Backend) Lookup(desc blend.Desc1) (*Realized, bool) {
	return b.states.Peek(desc)
}

// Len returns the number of cached blend states.
func (b *Backend) Len() int {
	return b.states.Len()
}

// Clear drops every cached blend state and resets the statistics.
// Tracked views are kept.
func (b *Backend) Clear() {
	b.states.Clear()
	b.states.ResetStats()
}

// Stats returns cache hit and miss counts.
func (b *Backend) Stats() (hits, misses uint64) {
	s := b.states.Stats()
	return s.Hits, s.Misses
}

// Evictions returns the number of realized states dropped for capacity.
func (b *Backend) Evictions() uint64 {
	return b.states.Stats().Evictions
}

// HitRate returns the cache hit rate in [0, 1], or 0 with no lookups.
func (b *Backend) HitRate() float64 {
	return b.states.Stats().HitRate
}

func (b *Backend) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return dxcompat.Logger()
}
