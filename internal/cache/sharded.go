// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"sync"
	"sync/atomic"
)

const (
	// MaxShards is the largest number of shards a cache is split into.
	// Must be a power of 2 for shard selection by mask.
	MaxShards = 16

	// minShardCapacity is the smallest per-shard capacity worth splitting
	// for. Smaller caches use fewer shards so eviction stays close to a
	// global LRU.
	minShardCapacity = 64
)

// Hasher computes the hash used to pick a key's shard.
type Hasher[K any] func(K) uint64

// Stats is a snapshot of cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the total capacity, or 0 when unbounded.
	Capacity int
	// Shards is the number of shards.
	Shards int
	// Hits, Misses and Evictions count GetOrCreate outcomes and evicted
	// entries since creation or the last ResetStats.
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// HitRate is Hits / (Hits + Misses), or 0 with no lookups.
	HitRate float64
}

// Sharded is a thread-safe LRU cache split into shards.
//
// Each shard has its own lock and its own LRU order; eviction is per shard.
type Sharded[K comparable, V any] struct {
	shards   []*shard[K, V]
	mask     uint64
	hasher   Hasher[K]
	capacity int // total; 0 = unbounded
	perShard int // 0 = unbounded

	// Statistics (atomic for lock-free reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	lru     lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewSharded creates a cache holding at most capacity entries in total.
// capacity <= 0 means unbounded.
//
// The shard count grows with capacity up to MaxShards; a cache smaller than
// 2*minShardCapacity has a single shard and therefore exact LRU eviction.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	n := 1
	switch {
	case capacity <= 0:
		capacity = 0
		n = MaxShards
	default:
		for n < MaxShards && capacity >= 2*n*minShardCapacity {
			n *= 2
		}
	}

	c := &Sharded[K, V]{
		shards:   make([]*shard[K, V], n),
		mask:     uint64(n - 1),
		hasher:   hasher,
		capacity: capacity,
	}
	if capacity > 0 {
		c.perShard = capacity / n
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*entry[K, V])}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&c.mask]
}

// GetOrCreate returns the cached value for key or stores the result of
// create. create runs with the shard locked, so it runs once per key while
// the entry stays cached. Keep it fast.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)

	// Recency must be updated even on a hit, so lookups take the write lock.
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}

	c.misses.Add(1)
	value := create()

	if c.perShard > 0 {
		for s.lru.Len() >= c.perShard {
			oldest, ok := s.lru.RemoveOldest()
			if !ok {
				break
			}
			delete(s.entries, oldest)
			c.evictions.Add(1)
		}
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.PushFront(key)}
	return value
}

// Peek returns the cached value for key without touching recency or
// statistics.
func (c *Sharded[K, V]) Peek(key K) (V, bool) {
	s := c.shardFor(key)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.entries[key]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Clear removes all entries. Statistics are kept; see ResetStats.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats returns current cache statistics.
func (c *Sharded[K, V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()

	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Shards:    len(c.shards),
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   rate,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Sharded[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
