// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types that support arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns a new unnamed column with the elementwise sum of a and b,
// which must have the same length.
func Add[T Number](a, b *Typed[T]) (*Typed[T], error) {
	return AddValues(a, b.values)
}

// Sub returns a new unnamed column with the elementwise difference of
// a and b, which must have the same length.
func Sub[T Number](a, b *Typed[T]) (*Typed[T], error) {
	return SubValues(a, b.values)
}

// Mul returns a new unnamed column with the elementwise product of
// a and b, which must have the same length.
func Mul[T Number](a, b *Typed[T]) (*Typed[T], error) {
	return MulValues(a, b.values)
}

// Div returns a new unnamed column with the elementwise quotient of
// a and b, which must have the same length. Integer division by zero
// is an [ErrInvalidArgument] error.
func Div[T Number](a, b *Typed[T]) (*Typed[T], error) {
	return DivValues(a, b.values)
}

// AddValues is a version of [Add] that takes a slice for b.
func AddValues[T Number](a *Typed[T], b []T) (*Typed[T], error) {
	return binaryOp("Add", a, b, func(x, y T) T { return x + y })
}

// SubValues is a version of [Sub] that takes a slice for b.
func SubValues[T Number](a *Typed[T], b []T) (*Typed[T], error) {
	return binaryOp("Sub", a, b, func(x, y T) T { return x - y })
}

// MulValues is a version of [Mul] that takes a slice for b.
func MulValues[T Number](a *Typed[T], b []T) (*Typed[T], error) {
	return binaryOp("Mul", a, b, func(x, y T) T { return x * y })
}

// DivValues is a version of [Div] that takes a slice for b.
func DivValues[T Number](a *Typed[T], b []T) (*Typed[T], error) {
	if isInteger[T]() {
		for i, v := range b {
			if v == 0 {
				return nil, fmt.Errorf("column.Div: %w: integer division by zero at index %d", ErrInvalidArgument, i)
			}
		}
	}
	return binaryOp("Div", a, b, func(x, y T) T { return x / y })
}

// AddScalar returns a new unnamed column with v added to each value of a.
func AddScalar[T Number](a *Typed[T], v T) *Typed[T] {
	return scalarOp(a, func(x T) T { return x + v })
}

// SubScalar returns a new unnamed column with v subtracted from each value of a.
func SubScalar[T Number](a *Typed[T], v T) *Typed[T] {
	return scalarOp(a, func(x T) T { return x - v })
}

// MulScalar returns a new unnamed column with each value of a multiplied by v.
func MulScalar[T Number](a *Typed[T], v T) *Typed[T] {
	return scalarOp(a, func(x T) T { return x * v })
}

// DivScalar returns a new unnamed column with each value of a divided by v.
// Integer division by zero is an [ErrInvalidArgument] error.
func DivScalar[T Number](a *Typed[T], v T) (*Typed[T], error) {
	if v == 0 && isInteger[T]() {
		return nil, fmt.Errorf("column.DivScalar: %w: integer division by zero", ErrInvalidArgument)
	}
	return scalarOp(a, func(x T) T { return x / v }), nil
}

func binaryOp[T Number](op string, a *Typed[T], b []T, fun func(x, y T) T) (*Typed[T], error) {
	if len(a.values) != len(b) {
		return nil, fmt.Errorf("column.%s: %w: lengths differ: %d != %d", op, ErrInvalidArgument, len(a.values), len(b))
	}
	vals := make([]T, len(b))
	for i, x := range a.values {
		vals[i] = fun(x, b[i])
	}
	return newTyped(vals), nil
}

func scalarOp[T Number](a *Typed[T], fun func(x T) T) *Typed[T] {
	vals := make([]T, len(a.values))
	for i, x := range a.values {
		vals[i] = fun(x)
	}
	return newTyped(vals)
}

func isInteger[T Number]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return false
	}
	return true
}
