// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// Typed is a named column of values of one element type T.
// T is always one of the [Element] types, or any for object columns:
// a Typed can only be made by the constructors in this package.
type Typed[T any] struct {
	name   string
	values []T
}

// NewTyped returns a new unnamed [Typed] column with a copy of given values.
func NewTyped[T Element](values []T) *Typed[T] {
	return newTyped(slices.Clone(values))
}

// newTyped returns a new [Typed] that takes ownership of given values.
func newTyped[T any](values []T) *Typed[T] {
	if values == nil {
		values = []T{}
	}
	return &Typed[T]{values: values}
}

// AsTyped returns the [Typed] column wrapped by given column, which must
// have element type T, otherwise an [ErrTypeMismatch] error is returned.
// The result shares memory with the column.
func AsTyped[T any](c *Column) (*Typed[T], error) {
	tc, ok := c.values.(*Typed[T])
	if !ok {
		return nil, fmt.Errorf("column.AsTyped: %w: column %q is %v, not %v", ErrTypeMismatch, c.Name(), c.DataType(), reflect.TypeFor[T]())
	}
	return tc, nil
}

func (c *Typed[T]) Name() string        { return c.name }
func (c *Typed[T]) SetName(name string) { c.name = name }
func (c *Typed[T]) Len() int            { return len(c.values) }

// DataType returns the element type T.
func (c *Typed[T]) DataType() reflect.Type { return reflect.TypeFor[T]() }

// Values returns the underlying values. Modifications to the returned
// slice modify this column, and are not visible to any column
// previously duplicated from it.
func (c *Typed[T]) Values() []T { return c.values }

// At returns the value at given index, which must be valid.
func (c *Typed[T]) At(i int) T { return c.values[i] }

// Set sets the value at given index, which must be valid.
func (c *Typed[T]) Set(i int, val T) { c.values[i] = val }

// AsColumn returns a type-erased [Column] handle for this column.
// The handle shares memory with this column.
func (c *Typed[T]) AsColumn() *Column { return &Column{values: c} }

// IsValidIndex returns an error if given index is not in [0, Len).
func (c *Typed[T]) IsValidIndex(i int) error {
	if i < 0 || i >= len(c.values) {
		return fmt.Errorf("%w: %d is not in [0, %d)", ErrOutOfRange, i, len(c.values))
	}
	return nil
}

func (c *Typed[T]) Value(i int) (any, error) {
	if err := c.IsValidIndex(i); err != nil {
		return nil, fmt.Errorf("column.Value: column %q: %w", c.name, err)
	}
	return c.values[i], nil
}

// derive returns a new column with our name and given values,
// which it takes ownership of.
func (c *Typed[T]) derive(values []T) *Column {
	return &Column{values: &Typed[T]{name: c.name, values: values}}
}

func (c *Typed[T]) DuplicateIndexes(indexes []int) (*Column, error) {
	vals := make([]T, len(indexes))
	for i, idx := range indexes {
		if idx == -1 {
			continue
		}
		if err := c.IsValidIndex(idx); err != nil {
			return nil, fmt.Errorf("column.DuplicateIndexes: column %q, position %d: %w", c.name, i, err)
		}
		vals[i] = c.values[idx]
	}
	return c.derive(vals), nil
}

func (c *Typed[T]) Duplicate() *Column {
	return c.derive(slices.Clone(c.values))
}

func (c *Typed[T]) DuplicateTiled(n int) (*Column, error) {
	if n < 0 {
		return nil, fmt.Errorf("column.DuplicateTiled: column %q: %w: negative repeat count %d", c.name, ErrInvalidArgument, n)
	}
	if len(c.values) == 0 {
		return c.derive([]T{}), nil
	}
	if n > math.MaxInt/len(c.values) {
		return nil, fmt.Errorf("column.DuplicateTiled: column %q: %w: %d repeats of %d values is too many", c.name, ErrInvalidArgument, n, len(c.values))
	}
	return c.derive(slices.Repeat(c.values, n)), nil
}

// sameType returns the typed column of other, or an error if it is nil
// or does not have element type T.
func (c *Typed[T]) sameType(op string, other *Column) (*Typed[T], error) {
	if other == nil {
		return nil, fmt.Errorf("column.%s: column %q: %w: nil column", op, c.name, ErrInvalidArgument)
	}
	oc, ok := other.values.(*Typed[T])
	if !ok {
		return nil, fmt.Errorf("column.%s: %w: column %q is %v, column %q is %v", op, ErrTypeMismatch, c.name, c.DataType(), other.Name(), other.DataType())
	}
	return oc, nil
}

func (c *Typed[T]) Append(other *Column) (*Column, error) {
	oc, err := c.sameType("Append", other)
	if err != nil {
		return nil, err
	}
	return c.derive(slices.Concat(c.values, oc.values)), nil
}

func (c *Typed[T]) Union(other *Column) (*Column, error) {
	oc, err := c.sameType("Union", other)
	if err != nil {
		return nil, err
	}
	seen := make(map[any]struct{}, len(c.values)+len(oc.values))
	vals := make([]T, 0, len(c.values)+len(oc.values))
	add := func(src []T) {
		for _, v := range src {
			k := Key(v)
			if _, has := seen[k]; has {
				continue
			}
			seen[k] = struct{}{}
			vals = append(vals, v)
		}
	}
	add(c.values)
	add(oc.values)
	return c.derive(vals), nil
}

// String satisfies the [fmt.Stringer] interface, rendering the column
// with the [DefaultFormat].
func (c *Typed[T]) String() string { return c.Format(&DefaultFormat) }

// Format returns a right-aligned rendering of the column using given
// format: the name on the first line, and then one value per line, all
// padded to a common width.
func (c *Typed[T]) Format(f *Format) string {
	if f == nil {
		f = &DefaultFormat
	}
	cells := make([]string, len(c.values))
	for i, v := range c.values {
		cells[i] = Text(v, f)
	}
	return renderLines(c.name, cells, f)
}
