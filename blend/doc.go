// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend validates and canonicalizes blend-state descriptors.
//
// Descriptors arrive from callers in one of two shapes: the legacy Desc and
// the current Desc1, which adds a per-target logic operation. Promote lifts a
// legacy descriptor into the current shape; Desc1.Legacy projects it back.
//
// Normalize is the only way a descriptor becomes canonical. It rejects
// structurally invalid input and rewrites every field the contract treats as
// "don't care", so that two descriptors with the same effective blend
// behavior are == and Hash to the same value:
//
//	desc, err := blend.Normalize(draft)
//	if err != nil {
//	    var verr *blend.ValidationError
//	    errors.As(err, &verr) // verr.RenderTarget, verr.Field
//	    return err
//	}
//	key := blend.Hash(desc)
//
// TargetStates translates a canonical descriptor into gputypes color target
// states for the rendering backend.
package blend
