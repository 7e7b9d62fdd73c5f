// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/dxcompat/blend"
)

// StateCache deduplicates live state objects by canonical descriptor.
//
// Canonical descriptors are comparable values, so the cache is keyed by the
// descriptor itself rather than by its hash. An entry lives as long as its
// object: the object's destroy hook removes it.
//
// Thread Safety:
// StateCache is safe for concurrent use. It uses RWMutex with double-check
// locking for efficient reads and safe writes. A lookup that finds an object
// whose last reference is being released concurrently treats it as a miss.
type StateCache struct {
	// mu protects mutable state.
	mu sync.RWMutex

	// blendStates stores live blend states indexed by canonical descriptor.
	blendStates map[blend.Desc1]*blendState

	// hits counts cache hits (atomic for lock-free reads).
	hits uint64

	// misses counts cache misses (atomic for lock-free reads).
	misses uint64
}

// NewStateCache creates an empty state cache.
func NewStateCache() *StateCache {
	return &StateCache{
		blendStates: make(map[blend.Desc1]*blendState),
	}
}

// getOrCreateBlend returns the live blend state for desc with a new
// reference, or creates one.
//
// This method implements the "get or create" pattern with double-check locking:
//  1. Fast path: RLock, check cache, return if found and still alive
//  2. Slow path: Lock, double-check, create if needed
func (c *StateCache) getOrCreateBlend(desc blend.Desc1, create func(blend.Desc1) *blendState) *blendState {
	// Fast path: read lock
	c.mu.RLock()
	if s, ok := c.blendStates[desc]; ok && s.TryAddRef() {
		c.mu.RUnlock()
		atomic.AddUint64(&c.hits, 1)
		return s
	}
	c.mu.RUnlock()

	// Slow path: write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.blendStates[desc]; ok && s.TryAddRef() {
		atomic.AddUint64(&c.hits, 1)
		return s
	}

	s := create(desc)
	c.blendStates[desc] = s
	atomic.AddUint64(&c.misses, 1)

	return s
}

// removeBlend drops the entry for desc if it still refers to s.
func (c *StateCache) removeBlend(desc blend.Desc1, s *blendState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.blendStates[desc] == s {
		delete(c.blendStates, desc)
	}
}

// Stats returns cache statistics.
//
// Returns the number of cache hits and misses.
// These values are read atomically and may not be perfectly synchronized.
func (c *StateCache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}

// HitRate returns the cache hit rate as a fraction (0.0 to 1.0).
//
// Returns 0.0 if no requests have been made.
func (c *StateCache) HitRate() float64 {
	hits := atomic.LoadUint64(&c.hits)
	misses := atomic.LoadUint64(&c.misses)
	total := hits + misses
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// BlendStateCount returns the number of live cached blend states.
func (c *StateCache) BlendStateCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blendStates)
}
