// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scalar is the closed set of non-nullable element types
// that a [Typed] column can hold.
type Scalar interface {
	bool | time.Time |
		int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		Char | decimal.Decimal | float32 | float64 | string
}

// Nullable is the set of nullable forms of every [Scalar] type.
type Nullable interface {
	Null[bool] | Null[time.Time] |
		Null[int8] | Null[int16] | Null[int32] | Null[int64] | Null[int] |
		Null[uint8] | Null[uint16] | Null[uint32] | Null[uint64] | Null[uint] |
		Null[Char] | Null[decimal.Decimal] | Null[float32] | Null[float64] | Null[string]
}

// Element is the full closed set of element types supported by the
// generic constructors. Opaque object columns (element type any) are
// only created through [NewObjects] and [From].
type Element interface {
	Scalar | Nullable
}

// Char is a single character. It is a distinct type from rune
// (which is an alias of int32), so that character columns are not
// confused with int32 columns.
type Char rune

// String returns the character as a one-character string.
func (c Char) String() string { return string(rune(c)) }

// Null is a value of type T that may be absent.
// The zero value is absent.
type Null[T Scalar] struct {
	// V is the value, only meaningful when Valid is true.
	V T

	// Valid is true when V is present.
	Valid bool
}

// NullOf returns a present [Null] holding v.
func NullOf[T Scalar](v T) Null[T] {
	return Null[T]{V: v, Valid: true}
}

// String returns the text of the value, or "" when absent.
func (n Null[T]) String() string {
	if !n.Valid {
		return ""
	}
	return Text(n.V, &DefaultFormat)
}

// IsNull returns true if given boxed value is nil or an absent [Null].
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if nv, ok := v.(nullValue); ok {
		_, valid := nv.value()
		return !valid
	}
	return false
}

// nullValue is implemented by all [Null] types, so that
// boxed values can be inspected without knowing T.
type nullValue interface {
	value() (any, bool)
}

func (n Null[T]) value() (any, bool) {
	if !n.Valid {
		return nil, false
	}
	return n.V, true
}
