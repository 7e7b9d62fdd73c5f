// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package halstate is an in-memory device backend built on gputypes and
// wgpu/hal.
//
// It realizes canonical blend descriptors into per-target
// gputypes.ColorTargetState values, cached by descriptor hash, and tracks
// which hal texture each hal view belongs to so that depth-stencil views can
// resolve their resource.
//
// Importing the package registers it with the backend registry as
// "halstate".
package halstate
