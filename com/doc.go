// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package com provides versioned object identity and capability dispatch.
//
// A logical object is addressed through several façades, one per API
// version. Each façade is a distinct Go type with its own method set, but all
// of them embed the object's single *Identity, which owns:
//
//   - the reference count shared by every façade
//   - a small fixed table mapping interface identifiers to façades
//   - the hook run when the last reference is released
//
// Releasing through any façade releases the object; there is no way to destroy
// one façade and keep another.
//
// Query is the typed entry point for capability queries:
//
//	var bs device.BlendState
//	if err := com.Query(legacy, com.IIDD3D11BlendState1, &bs); err != nil {
//	    return err // com.ErrNoInterface
//	}
//	defer bs.Release()
//
// SameObject compares identities through the base interface.
package com
