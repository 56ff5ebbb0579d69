// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"reflect"
	"slices"
)

// Column is a type-erased handle on exactly one typed column.
// It lets table code store, move, and reindex columns without knowing
// their element type; use [AsTyped] to recover the typed column.
// All methods forward to the wrapped column.
type Column struct {
	values Values
}

// New returns a new unnamed column with a copy of given values.
func New[T Element](values []T) *Column {
	return NewTyped(values).AsColumn()
}

// Of returns a new unnamed column of given values.
func Of[T Element](values ...T) *Column {
	return New(values)
}

// NewObjects returns a new unnamed column of opaque values,
// with a copy of given values.
func NewObjects(values []any) *Column {
	return newTyped(slices.Clone(values)).AsColumn()
}

// Data returns the wrapped typed column.
func (c *Column) Data() Values { return c.values }

func (c *Column) Name() string             { return c.values.Name() }
func (c *Column) SetName(name string)      { c.values.SetName(name) }
func (c *Column) Len() int                 { return c.values.Len() }
func (c *Column) DataType() reflect.Type   { return c.values.DataType() }
func (c *Column) Value(i int) (any, error) { return c.values.Value(i) }
func (c *Column) Duplicate() *Column       { return c.values.Duplicate() }
func (c *Column) String() string           { return c.values.String() }
func (c *Column) Format(f *Format) string  { return c.values.Format(f) }

func (c *Column) Append(other *Column) (*Column, error) {
	return c.values.Append(other)
}

func (c *Column) Union(other *Column) (*Column, error) {
	return c.values.Union(other)
}

func (c *Column) DuplicateIndexes(indexes []int) (*Column, error) {
	return c.values.DuplicateIndexes(indexes)
}

func (c *Column) DuplicateTiled(n int) (*Column, error) {
	return c.values.DuplicateTiled(n)
}
