// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halstate

import "log/slog"

// DefaultCacheCapacity is the number of realized blend states kept by default.
const DefaultCacheCapacity = 4096

// Option configures a Backend.
type Option func(*options)

type options struct {
	capacity int
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{capacity: DefaultCacheCapacity}
}

// WithCacheCapacity bounds the number of realized blend states kept. When
// full, the least recently realized entry is evicted. A value <= 0 means
// unbounded.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets a logger for the backend, overriding dxcompat.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
