// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a concurrent, capacity-bounded LRU cache split into
// shards by key hash.
//
// Keys are compared with ==, so a hash collision never returns the wrong
// value; the hash only picks the shard.
package cache
