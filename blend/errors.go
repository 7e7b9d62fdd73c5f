// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArg is wrapped by every ValidationError.
	ErrInvalidArg = errors.New("blend: invalid argument")

	// ErrUnsupportedFactor is returned by TargetStates for factors that have
	// no backend equivalent.
	ErrUnsupportedFactor = errors.New("blend: factor has no backend equivalent")
)

// ValidationError describes the first structural violation found in a
// descriptor.
type ValidationError struct {
	// RenderTarget is the index of the offending render target.
	RenderTarget int

	// Field names the offending descriptor field.
	Field string

	// Value is the raw value of the offending field.
	Value uint32

	// Reason is a short human-readable explanation.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("blend: render target %d: %s=%d: %s", e.RenderTarget, e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidArg.
func (e *ValidationError) Unwrap() error { return ErrInvalidArg }

func invalid(rt int, field string, value uint32, reason string) error {
	return &ValidationError{RenderTarget: rt, Field: field, Value: value, Reason: reason}
}
