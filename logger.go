// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxcompat

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard rejects every level, so callers that check Enabled skip building
// attributes such as descriptor hashes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

// NopLogger returns a logger that drops everything.
func NopLogger() *slog.Logger { return slog.New(discard{}) }

// global is the logger shared by objects created without their own.
var global atomic.Pointer[slog.Logger]

func init() {
	global.Store(NopLogger())
}

// SetLogger installs the logger used by com identities, devices and
// backends that were not given one through their own WithLogger option.
// Nil restores the silent default. Objects read the logger when they log,
// so a change reaches objects that already exist.
//
// Levels:
//   - [slog.LevelDebug]: blend state creation and destruction, view resource resolution
//   - [slog.LevelWarn]: unknown interface queries, queries and AddRef on destroyed
//     objects, reference count underflow, blend states a backend cannot express
//
// Example:
//
//	dxcompat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelWarn,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NopLogger()
	}
	global.Store(l)
}

// Logger returns the logger installed with SetLogger. It is never nil.
func Logger() *slog.Logger {
	return global.Load()
}
