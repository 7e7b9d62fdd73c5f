// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dxcompat is the core of a graphics API translation layer: blend
// state objects and depth-stencil views that answer to two generations of a
// COM-style device API at once.
//
// # Overview
//
// An application written against the legacy (D3D10-shaped) contracts and one
// written against the current (D3D11-shaped) contracts share one object
// model. A blend state created through either entry point is validated and
// canonicalized once; both façades report the same identity and the same
// descriptor, and share one reference count.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/dxcompat/backend/halstate"
//		"github.com/gogpu/dxcompat/device"
//	)
//
//	dev, err := device.New(device.NullHandle{},
//		device.WithBackend(halstate.New()))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	bs, err := dev.CreateBlendState1(desc)
//	if err != nil {
//		log.Fatal(err) // wraps blend.ErrInvalidArg
//	}
//	defer bs.Release()
//
// # Architecture
//
// The module is organized into:
//   - blend: descriptor types, validation, canonicalization, backend translation
//   - com: interface identifiers, shared reference counting, capability queries
//   - device: the device, blend state objects, textures and depth-stencil views
//   - backend: backend registry; backend/halstate realizes states over gputypes
//   - cmd/dxstate: normalizes a JSON blend descriptor from the command line
//
// # Logging
//
// Diagnostics go through the logger installed with SetLogger. Nothing is
// logged by default.
package dxcompat

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
