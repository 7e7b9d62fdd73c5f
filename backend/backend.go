// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/gogpu/dxcompat/device"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend name constants.
const (
	// BackendNull is the name of the backend that realizes nothing and
	// cannot resolve views.
	BackendNull = "null"

	// BackendHAL is the name of the in-memory hal state backend
	// (package backend/halstate).
	BackendHAL = "halstate"
)

// Factory creates a new backend instance.
type Factory func() device.Backend
