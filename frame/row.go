// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"cogentcore.org/frames/column"
)

// Row is a view onto one row of a [Frame].
type Row struct {
	frame *Frame
	index int
}

// Index returns the row index in the frame.
func (r Row) Index() int { return r.index }

// Get returns the value of the column with given name in this row.
func (r Row) Get(name string) (any, error) {
	return r.frame.Value(r.index, name)
}

// RowValue returns the value of the column with given name in given row,
// which must have element type T.
//
//	start, err := frame.RowValue[time.Time](r, "StartDate")
func RowValue[T any](r Row, name string) (T, error) {
	var zv T
	c, err := r.frame.ColumnTry(name)
	if err != nil {
		return zv, err
	}
	tc, err := column.AsTyped[T](c)
	if err != nil {
		return zv, err
	}
	if err := tc.IsValidIndex(r.index); err != nil {
		return zv, fmt.Errorf("frame.RowValue: column %q: %w", name, err)
	}
	return tc.At(r.index), nil
}
