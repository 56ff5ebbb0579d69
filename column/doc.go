// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package column provides typed columns of in-memory tabular data, with a
type-erased [Column] handle so that columns of different element types
can be held together in a table.

A [Typed] column stores a dense, ordered sequence of values of one
element type, plus a name. The element types are a closed set: the
[Scalar] types, their [Null] forms, and any for opaque object columns.

The [Values] interface is the contract that a table uses to manipulate
columns without knowing their element type. All of its structural
operations (DuplicateIndexes, Duplicate, DuplicateTiled, Union) return a
new column with its own memory, and never modify the receiver, so
columns can be safely read from multiple goroutines. Direct modification
of a column's values (e.g., [Typed.Set]) is not synchronized.

	c := column.Of("a", "b", "c")
	c.SetName("Letters")
	d, err := c.DuplicateIndexes([]int{2, 0, -1, 1}) // c, a, "", b
	s, err := column.AsTyped[string](d)
*/
package column
