// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend provides a registry of device backends.
//
// A device backend realizes canonical state objects and resolves views to the
// textures they view (see device.Backend). Backends register themselves by
// name from init() functions and are selected at runtime:
//
//	import _ "github.com/gogpu/dxcompat/backend/halstate"
//
//	b, err := backend.New("halstate")
//	if err != nil {
//		log.Fatal(err)
//	}
//	dev, err := device.New(device.NullHandle{}, device.WithBackend(b))
//
// # Available Backends
//
//   - "null": realizes nothing, resolves no views (always available)
//   - "halstate": translates blend states to gputypes target states and
//     tracks hal view ownership (registered by backend/halstate)
package backend
