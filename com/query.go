// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package com

import (
	"fmt"
	"reflect"
)

// Query asks src for iid and stores the result in out as a T.
//
// A nil out is rejected with ErrPointer before src is touched. If the façade
// answering iid does not satisfy T, the reference taken by the query is
// released and ErrNoInterface is returned; out is never set to a value of the
// wrong contract. On failure *out is the zero T.
func Query[T any](src Unknown, iid IID, out *T) error {
	if out == nil {
		return ErrPointer
	}
	var zero T
	*out = zero
	if src == nil {
		return ErrPointer
	}

	u, err := src.QueryInterface(iid)
	if err != nil {
		return err
	}
	typed, ok := u.(T)
	if !ok {
		u.Release()
		return fmt.Errorf("%w: %s does not satisfy %v", ErrNoInterface, InterfaceName(iid), reflect.TypeFor[T]())
	}
	*out = typed
	return nil
}

// With acquires iid from src as a T, calls fn, and releases the reference on
// every exit path.
func With[T Unknown](src Unknown, iid IID, fn func(T) error) error {
	var v T
	if err := Query(src, iid, &v); err != nil {
		return err
	}
	defer v.Release()
	return fn(v)
}

// SameObject reports whether a and b are façades of the same logical object.
// Identity is decided by the base interface; reference counts are unchanged
// on return.
func SameObject(a, b Unknown) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ua, err := a.QueryInterface(IIDUnknown)
	if err != nil {
		return false
	}
	defer ua.Release()

	ub, err := b.QueryInterface(IIDUnknown)
	if err != nil {
		return false
	}
	defer ub.Release()

	return ua == ub
}
