// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "log/slog"

// Option configures a Device during creation.
//
// Example:
//
//	// Validation only, no backend, no deduplication
//	dev, _ := device.New(device.NullHandle{}, device.WithStateCache(false))
type Option func(*options)

// options holds optional configuration for Device creation.
type options struct {
	backend    Backend
	logger     *slog.Logger
	stateCache bool
}

// defaultOptions returns the default device options.
func defaultOptions() options {
	return options{
		backend:    nil, // Will be set to nullBackend if nil
		stateCache: true,
	}
}

// WithBackend sets the backend that realizes state objects and resolves
// views to their resources.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithStateCache enables or disables deduplication of state objects.
// When enabled (the default), creating a state object from a descriptor
// equivalent to a live one returns the live object.
func WithStateCache(enabled bool) Option {
	return func(o *options) {
		o.stateCache = enabled
	}
}

// WithLogger sets a logger for this device and the objects it creates,
// overriding dxcompat.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
