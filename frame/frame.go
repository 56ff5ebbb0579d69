// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides Frame, a table of named [column.Column]s aligned
// by a common row index, that manipulates its columns only through the
// type-erased [column.Values] contract.
package frame

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"cogentcore.org/frames/base/errors"
	"cogentcore.org/frames/base/keylist"
	"cogentcore.org/frames/column"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrRowCount is returned when a column does not have the
	// number of rows of the frame it is added to.
	ErrRowCount = errors.New("column row count does not match frame")

	// ErrNoColumn is returned when a named column is not in a frame.
	ErrNoColumn = errors.New("column not found")
)

// Frame is a table of named columns with the same number of rows.
// The columns are kept in the order they were added.
// A Frame is not safe for concurrent modification.
type Frame struct {
	// columns are the columns, in order, by name.
	columns *keylist.List[string, *column.Column]

	// rows is the number of rows in every column.
	rows int
}

// New returns a new empty Frame.
func New() *Frame {
	return &Frame{columns: keylist.New[string, *column.Column]()}
}

// NumRows returns the number of rows.
func (fr *Frame) NumRows() int { return fr.rows }

// NumColumns returns the number of columns.
func (fr *Frame) NumColumns() int { return fr.columns.Len() }

// Names returns the names of the columns, in order.
func (fr *Frame) Names() []string { return slices.Clone(fr.columns.Keys) }

// Column returns the column with given name, or nil if not found.
// The column shares memory with the frame.
func (fr *Frame) Column(name string) *column.Column {
	return fr.columns.At(name)
}

// ColumnTry is a version of [Frame.Column] that returns an [ErrNoColumn]
// error if the column name is not found, which suggests the most similar
// column name, if there is one.
func (fr *Frame) ColumnTry(name string) (*column.Column, error) {
	c, ok := fr.columns.AtTry(name)
	if ok {
		return c, nil
	}
	if s := fr.similarName(name); s != "" {
		return nil, fmt.Errorf("frame: %w: %q (did you mean %q?)", ErrNoColumn, name, s)
	}
	return nil, fmt.Errorf("frame: %w: %q", ErrNoColumn, name)
}

// similarName returns the column name that is most similar to given
// name, ignoring case, or "" if none is at least half similar.
func (fr *Frame) similarName(name string) string {
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	best, score := "", 0.0
	for _, n := range fr.columns.Keys {
		if s := strutil.Similarity(name, n, metric); s > score {
			best, score = n, s
		}
	}
	if score < 0.5 {
		return ""
	}
	return best
}

// Set sets the column with given name to given column, which is renamed
// to name and is then owned by the frame. An existing column with that
// name is replaced in place, otherwise the column is added at the end.
// The column must have [Frame.NumRows] rows, unless it is the only column,
// otherwise an [ErrRowCount] error is returned.
func (fr *Frame) Set(name string, c *column.Column) error {
	if c == nil {
		return fmt.Errorf("frame.Set: column %q: %w: nil column", name, column.ErrInvalidArgument)
	}
	only := fr.NumColumns() == 0 || (fr.NumColumns() == 1 && fr.columns.IndexByKey(name) == 0)
	if !only && c.Len() != fr.rows {
		return fmt.Errorf("frame.Set: column %q: %w: %d rows, frame has %d", name, ErrRowCount, c.Len(), fr.rows)
	}
	c.SetName(name)
	fr.columns.Set(name, c)
	fr.rows = c.Len()
	return nil
}

// SetValues sets the column with given name to a new column with a copy
// of given values, which can be any slice or array accepted by [column.From].
func (fr *Frame) SetValues(name string, values any) error {
	c, err := column.From(values)
	if err != nil {
		return fmt.Errorf("frame.SetValues: column %q: %w", name, err)
	}
	return fr.Set(name, c)
}

// Broadcast sets the column with given name to given column repeated
// end to end to fill the rows of the frame. The frame row count must be
// a multiple of the column length, otherwise an [ErrRowCount] error
// is returned. On an empty frame it is the same as [Frame.Set].
func (fr *Frame) Broadcast(name string, c *column.Column) error {
	if fr.NumColumns() == 0 {
		return fr.Set(name, c)
	}
	n := c.Len()
	if n == 0 || fr.rows%n != 0 {
		return fmt.Errorf("frame.Broadcast: column %q: %w: %d rows do not divide %d", name, ErrRowCount, n, fr.rows)
	}
	tc, err := c.DuplicateTiled(fr.rows / n)
	if err != nil {
		return err
	}
	return fr.Set(name, tc)
}

// Delete deletes the column with given name, returning false if not found.
func (fr *Frame) Delete(name string) bool {
	if !fr.columns.DeleteByKey(name) {
		return false
	}
	if fr.NumColumns() == 0 {
		fr.rows = 0
	}
	return true
}

// Rename renames the column named old to new, keeping its position.
func (fr *Frame) Rename(old, new string) error {
	c, err := fr.ColumnTry(old)
	if err != nil {
		return err
	}
	if err := fr.columns.Rename(old, new); err != nil {
		return fmt.Errorf("frame.Rename: %w: %w", column.ErrInvalidArgument, err)
	}
	c.SetName(new)
	return nil
}

// Value returns the value in given row of the column with given name.
func (fr *Frame) Value(row int, name string) (any, error) {
	c, err := fr.ColumnTry(name)
	if err != nil {
		return nil, err
	}
	return c.Value(row)
}

// Clone returns a new frame with a copy of every column.
func (fr *Frame) Clone() *Frame {
	nf := &Frame{columns: fr.columns.Clone(), rows: fr.rows}
	for i, c := range nf.columns.Values {
		nf.columns.Values[i] = c.Duplicate()
	}
	return nf
}

// Select returns a new frame with a copy of the columns with given
// names, in the given order.
func (fr *Frame) Select(names ...string) (*Frame, error) {
	nf := New()
	for _, name := range names {
		c, err := fr.ColumnTry(name)
		if err != nil {
			return nil, err
		}
		if err := nf.Set(name, c.Duplicate()); err != nil {
			return nil, err
		}
	}
	return nf, nil
}

// Reindex returns a new frame with the rows at given indexes, in order,
// for every column. An index of -1 gives a row of zero values.
func (fr *Frame) Reindex(indexes []int) (*Frame, error) {
	return fr.derive(func(c *column.Column) (*column.Column, error) {
		return c.DuplicateIndexes(indexes)
	})
}

// Tile returns a new frame with all of the rows repeated n times.
func (fr *Frame) Tile(n int) (*Frame, error) {
	return fr.derive(func(c *column.Column) (*column.Column, error) {
		return c.DuplicateTiled(n)
	})
}

// derive returns a new frame with the result of fun on every column.
func (fr *Frame) derive(fun func(c *column.Column) (*column.Column, error)) (*Frame, error) {
	nf := New()
	for i, c := range fr.columns.Values {
		nc, err := fun(c)
		if err != nil {
			return nil, err
		}
		if err := nf.Set(fr.columns.Keys[i], nc); err != nil {
			return nil, err
		}
	}
	return nf, nil
}

// Filter returns a new frame with the rows for which fun returns true.
func (fr *Frame) Filter(fun func(r Row) bool) (*Frame, error) {
	var indexes []int
	for r := range fr.Rows() {
		if fun(r) {
			indexes = append(indexes, r.Index())
		}
	}
	return fr.Reindex(indexes)
}

// Head returns a new frame with the first n rows (or fewer).
func (fr *Frame) Head(n int) (*Frame, error) {
	return fr.Reindex(rowRange(0, min(max(n, 0), fr.rows)))
}

// Tail returns a new frame with the last n rows (or fewer).
func (fr *Frame) Tail(n int) (*Frame, error) {
	return fr.Reindex(rowRange(max(fr.rows-max(n, 0), 0), fr.rows))
}

func rowRange(start, end int) []int {
	indexes := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indexes = append(indexes, i)
	}
	return indexes
}

// Distinct returns a new column with the values of the named column
// with duplicates removed, in order of first appearance.
func (fr *Frame) Distinct(name string) (*column.Column, error) {
	c, err := fr.ColumnTry(name)
	if err != nil {
		return nil, err
	}
	empty, err := c.DuplicateTiled(0)
	if err != nil {
		return nil, err
	}
	return c.Union(empty)
}

// Names of the columns that [Frame.Melt] adds.
const (
	MeltVariable = "variable"
	MeltValue    = "value"
)

// Melt returns a new frame that reshapes the valueNames columns from
// wide to long form: the idNames columns are repeated once per value
// column, the [MeltVariable] column has the name of the value column
// each row came from, and the [MeltValue] column has the values of the
// value columns stacked in order. The value columns must have the same
// element type, otherwise an [column.ErrTypeMismatch] error is returned.
func (fr *Frame) Melt(idNames, valueNames []string) (*Frame, error) {
	if len(valueNames) == 0 {
		return nil, fmt.Errorf("frame.Melt: %w: no value columns", column.ErrInvalidArgument)
	}
	nf := New()
	for _, name := range idNames {
		if name == MeltVariable || name == MeltValue {
			return nil, fmt.Errorf("frame.Melt: %w: id column %q clashes with a melted column", column.ErrInvalidArgument, name)
		}
		c, err := fr.ColumnTry(name)
		if err != nil {
			return nil, err
		}
		tc, err := c.DuplicateTiled(len(valueNames))
		if err != nil {
			return nil, err
		}
		if err := nf.Set(name, tc); err != nil {
			return nil, err
		}
	}
	var value *column.Column
	variable := make([]string, 0, len(valueNames)*fr.rows)
	for _, name := range valueNames {
		c, err := fr.ColumnTry(name)
		if err != nil {
			return nil, err
		}
		if value == nil {
			value = c.Duplicate()
		} else if value, err = value.Append(c); err != nil {
			return nil, fmt.Errorf("frame.Melt: %w", err)
		}
		variable = append(variable, slices.Repeat([]string{name}, fr.rows)...)
	}
	if err := nf.Set(MeltVariable, column.New(variable)); err != nil {
		return nil, err
	}
	if err := nf.Set(MeltValue, value); err != nil {
		return nil, err
	}
	return nf, nil
}

// Rows returns an iterator over the rows of the frame.
func (fr *Frame) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for i := range fr.rows {
			if !yield(Row{frame: fr, index: i}) {
				return
			}
		}
	}
}

// String returns the frame rendered with [column.DefaultFormat].
func (fr *Frame) String() string { return fr.Format(&column.DefaultFormat) }

// Format returns the columns rendered side by side using given format:
// a line of names, and then one line per row. Line breaks within names
// and values are escaped as in [column.Column.Format].
func (fr *Frame) Format(f *column.Format) string {
	if fr.NumColumns() == 0 {
		return ""
	}
	lines := make([]strings.Builder, fr.rows+1)
	for _, c := range fr.columns.Values {
		cl := strings.Split(strings.TrimSuffix(c.Format(f), "\n"), "\n")
		for i := range lines {
			lines[i].WriteString(cl[i])
		}
	}
	var b strings.Builder
	for i := range lines {
		b.WriteString(lines[i].String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Print writes the frame to given writer with [column.DefaultFormat],
// followed by a blank line. If names are given, only those columns
// are printed, in the given order.
func (fr *Frame) Print(w io.Writer, names ...string) error {
	pf := fr
	if len(names) > 0 {
		var err error
		if pf, err = fr.Select(names...); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, pf.String())
	return err
}
