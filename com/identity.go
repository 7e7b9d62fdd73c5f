// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package com

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/dxcompat"
)

var (
	// ErrNoInterface is returned when an object does not implement the
	// requested interface.
	ErrNoInterface = errors.New("com: no such interface")

	// ErrPointer is returned when a query has nowhere to store its result.
	ErrPointer = errors.New("com: nil output pointer")
)

// Unknown is the base contract every façade satisfies.
//
// QueryInterface returns the façade answering iid on the same logical object
// with one new reference. AddRef and Release adjust the reference count shared
// by all façades and return its new value.
type Unknown interface {
	QueryInterface(iid IID) (Unknown, error)
	AddRef() uint32
	Release() uint32
}

type entry struct {
	iid    IID
	facade Unknown
}

// Identity is the shared core of one logical object.
//
// Façades embed *Identity, so every façade of an object answers
// QueryInterface from the same table and counts references in the same
// place. The object starts with one reference, owned by its creator; when the
// count reaches zero the destroy hook runs exactly once.
//
// Identity is safe for concurrent use. The interface table must be filled
// with Expose before the object is published.
type Identity struct {
	name    string
	refs    atomic.Int64
	entries []entry
	destroy func()
	logger  *slog.Logger
}

// NewIdentity creates an identity with a reference count of one. name is used
// in diagnostics; destroy may be nil; logger may be nil to use the package
// logger.
func NewIdentity(name string, logger *slog.Logger, destroy func()) *Identity {
	id := &Identity{
		name:    name,
		destroy: destroy,
		logger:  logger,
	}
	id.refs.Store(1)
	return id
}

// Expose registers facade as the answer to each of iids.
func (id *Identity) Expose(facade Unknown, iids ...IID) {
	for _, iid := range iids {
		id.entries = append(id.entries, entry{iid: iid, facade: facade})
	}
}

// QueryInterface implements Unknown.
func (id *Identity) QueryInterface(iid IID) (Unknown, error) {
	for i := range id.entries {
		if id.entries[i].iid == iid {
			if !id.TryAddRef() {
				id.log().Warn("interface query on destroyed object", "object", id.name)
				return nil, ErrNoInterface
			}
			return id.entries[i].facade, nil
		}
	}

	id.log().Warn("unknown interface query",
		"object", id.name,
		"iid", iid.String(),
		"interface", InterfaceName(iid))
	return nil, ErrNoInterface
}

// AddRef implements Unknown. Adding a reference to a destroyed object is
// reported and has no effect.
func (id *Identity) AddRef() uint32 {
	n, ok := id.addRef()
	if !ok {
		id.log().Warn("reference added to destroyed object", "object", id.name)
	}
	return n
}

// TryAddRef adds a reference unless the object has already been destroyed.
// Caches use it to hand out objects whose last reference may be racing away.
func (id *Identity) TryAddRef() bool {
	_, ok := id.addRef()
	return ok
}

func (id *Identity) addRef() (uint32, bool) {
	for {
		n := id.refs.Load()
		if n <= 0 {
			return 0, false
		}
		if id.refs.CompareAndSwap(n, n+1) {
			return uint32(n + 1), true
		}
	}
}

// Release implements Unknown. Releasing a destroyed object is reported and
// has no effect.
func (id *Identity) Release() uint32 {
	for {
		n := id.refs.Load()
		if n <= 0 {
			id.log().Warn("reference count underflow", "object", id.name)
			return 0
		}
		if id.refs.CompareAndSwap(n, n-1) {
			if n == 1 && id.destroy != nil {
				id.destroy()
			}
			return uint32(n - 1)
		}
	}
}

// RefCount returns the current reference count.
func (id *Identity) RefCount() uint32 {
	n := id.refs.Load()
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// Name returns the diagnostic name of the object.
func (id *Identity) Name() string {
	return id.name
}

func (id *Identity) log() *slog.Logger {
	if id.logger != nil {
		return id.logger
	}
	return dxcompat.Logger()
}
