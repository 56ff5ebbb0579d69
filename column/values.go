// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"reflect"
)

// Values is the interface that every typed column implements, so that
// a table can hold columns of different element types and manipulate
// them without knowing the element type.
// All of the methods that return a [*Column] return a new column with
// its own separate memory, and never modify the receiver.
// It is implemented by [Typed] and by the type-erased [Column] handle.
type Values interface {
	fmt.Stringer

	// Name returns the name of the column.
	Name() string

	// SetName sets the name of the column.
	SetName(name string)

	// Len returns the number of values in the column.
	Len() int

	// DataType returns the type of the values in the column.
	DataType() reflect.Type

	// Value returns the value at given index, boxed as an any.
	// It returns an [ErrOutOfRange] error if i is not in [0, Len).
	Value(i int) (any, error)

	// DuplicateIndexes returns a new column with the values at the
	// given indexes, in order. An index of -1 gives the zero value of
	// the element type, which marks a row with no corresponding source
	// row (e.g., in an outer join). Any other index outside of [0, Len)
	// is an [ErrOutOfRange] error.
	DuplicateIndexes(indexes []int) (*Column, error)

	// Duplicate returns a new column with a copy of all of the values.
	Duplicate() *Column

	// DuplicateTiled returns a new column with all of the values
	// repeated n times end to end. It returns an [ErrInvalidArgument]
	// error if n is negative, or if the result would have more than
	// [math.MaxInt] values.
	DuplicateTiled(n int) (*Column, error)

	// Append returns a new column with the values of this column
	// followed by all of the values of the other column, which must
	// have the same element type, otherwise an [ErrTypeMismatch]
	// error is returned.
	Append(other *Column) (*Column, error)

	// Union returns a new column with the values of this column followed
	// by the values of the other column that are not already present,
	// with duplicates removed. The other column must have the same
	// element type, otherwise an [ErrTypeMismatch] error is returned.
	Union(other *Column) (*Column, error)

	// Format returns the text rendering of the column using given format.
	Format(f *Format) string
}
