// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/frames/column"
)

// RightSuffix is appended to the name of a right column in a join
// that has the same name as a left column.
const RightSuffix = "_right"

// JoinKinds are the kinds of join.
type JoinKinds int32

const (
	// Inner keeps only the pairs of rows with equal keys.
	Inner JoinKinds = iota

	// Left also keeps the left rows with no matching right row,
	// with zero values in the right columns.
	Left

	// Outer also keeps the rows of both sides with no matching row
	// on the other side, with zero values in the other side's columns.
	Outer
)

func (k JoinKinds) String() string {
	switch k {
	case Inner:
		return "inner"
	case Left:
		return "left"
	case Outer:
		return "outer"
	}
	return fmt.Sprintf("JoinKinds(%d)", int32(k))
}

// Join returns the inner join of left and right, matching the values of
// the leftKey column of left to the rightKey column of right. See [JoinOn].
func Join(left, right *Frame, leftKey, rightKey string) (*Frame, error) {
	return JoinOn(Inner, left, right, []string{leftKey}, []string{rightKey})
}

// LeftJoin returns the left join of left and right. See [JoinOn].
func LeftJoin(left, right *Frame, leftKey, rightKey string) (*Frame, error) {
	return JoinOn(Left, left, right, []string{leftKey}, []string{rightKey})
}

// OuterJoin returns the full outer join of left and right. See [JoinOn].
func OuterJoin(left, right *Frame, leftKey, rightKey string) (*Frame, error) {
	return JoinOn(Outer, left, right, []string{leftKey}, []string{rightKey})
}

// JoinOn returns a new frame joining left and right by the given kind of
// join, matching rows whose leftKeys columns of left have the same values
// as the rightKeys columns of right, pairwise in order. Each pair of key
// columns must have the same element type. Values are matched by
// [column.Key], and a row with an absent value in any key column never
// matches.
//
// The result has the left columns followed by the right columns except
// rightKeys, with [RightSuffix] added to right names that clash with left
// ones. Rows are in left row order, with one row per matching right row,
// in right row order; in an [Outer] join, unmatched right rows follow.
// The key columns of an [Outer] join have the keys of every row,
// including the right-only ones.
func JoinOn(kind JoinKinds, left, right *Frame, leftKeys, rightKeys []string) (*Frame, error) {
	if len(leftKeys) == 0 || len(leftKeys) != len(rightKeys) {
		return nil, fmt.Errorf("frame.Join: %w: %d left keys and %d right keys", column.ErrInvalidArgument, len(leftKeys), len(rightKeys))
	}
	lks := make([]*column.Column, len(leftKeys))
	rks := make([]*column.Column, len(rightKeys))
	for i := range leftKeys {
		lk, err := left.ColumnTry(leftKeys[i])
		if err != nil {
			return nil, fmt.Errorf("frame.Join: left: %w", err)
		}
		rk, err := right.ColumnTry(rightKeys[i])
		if err != nil {
			return nil, fmt.Errorf("frame.Join: right: %w", err)
		}
		if lk.DataType() != rk.DataType() {
			return nil, fmt.Errorf("frame.Join: %w: key %q is %v, key %q is %v", column.ErrTypeMismatch, leftKeys[i], lk.DataType(), rightKeys[i], rk.DataType())
		}
		lks[i], rks[i] = lk, rk
	}
	rkeys, err := rowKeys(rks)
	if err != nil {
		return nil, err
	}
	lkeys, err := rowKeys(lks)
	if err != nil {
		return nil, err
	}

	matches := make(map[any][]int)
	for ri, k := range rkeys {
		if k != nil {
			matches[k] = append(matches[k], ri)
		}
	}
	var lix, rix []int
	matched := make([]bool, len(rkeys))
	for li, k := range lkeys {
		rows := matches[k]
		if k == nil || len(rows) == 0 {
			if kind != Inner {
				lix = append(lix, li)
				rix = append(rix, -1)
			}
			continue
		}
		for _, ri := range rows {
			lix = append(lix, li)
			rix = append(rix, ri)
			matched[ri] = true
		}
	}
	if kind == Outer {
		for ri, m := range matched {
			if !m {
				lix = append(lix, -1)
				rix = append(rix, ri)
			}
		}
	}

	nf, err := left.Reindex(lix)
	if err != nil {
		return nil, err
	}
	if kind == Outer {
		for i, lk := range lks {
			kc, err := outerKey(lk, rks[i], lix, rix)
			if err != nil {
				return nil, err
			}
			if err := nf.Set(leftKeys[i], kc); err != nil {
				return nil, err
			}
		}
	}
	for i, rc := range right.columns.Values {
		name := right.columns.Keys[i]
		if slices.Contains(rightKeys, name) {
			continue
		}
		if nf.columns.IndexByKey(name) >= 0 {
			name += RightSuffix
		}
		if nf.columns.IndexByKey(name) >= 0 {
			return nil, fmt.Errorf("frame.Join: %w: right column %q clashes with %q", column.ErrInvalidArgument, right.columns.Keys[i], name)
		}
		c, err := rc.DuplicateIndexes(rix)
		if err != nil {
			return nil, err
		}
		if err := nf.Set(name, c); err != nil {
			return nil, err
		}
	}
	slog.Debug("join", "kind", kind, "keys", leftKeys, "left.rows", left.NumRows(), "right.rows", right.NumRows(), "rows", nf.NumRows())
	return nf, nil
}

// keys returns the [column.Key] of every value of given column,
// with nil for absent values.
func keys(c *column.Column) ([]any, error) {
	ks := make([]any, c.Len())
	for i := range ks {
		v, err := c.Value(i)
		if err != nil {
			return nil, err
		}
		if !column.IsNull(v) {
			ks[i] = column.Key(v)
		}
	}
	return ks, nil
}

// tupleKey is the key of a row over several key columns:
// the key of the earlier columns, and the key of the next one.
type tupleKey struct {
	head, next any
}

// rowKeys returns the key of every row over given key columns, with nil
// for a row with an absent value in any of them. A single column gives
// its [column.Key] values, and more give nested [tupleKey]s.
func rowKeys(cols []*column.Column) ([]any, error) {
	ks, err := keys(cols[0])
	if err != nil {
		return nil, err
	}
	for _, c := range cols[1:] {
		cks, err := keys(c)
		if err != nil {
			return nil, err
		}
		for i, k := range cks {
			if ks[i] == nil || k == nil {
				ks[i] = nil
				continue
			}
			ks[i] = tupleKey{ks[i], k}
		}
	}
	return ks, nil
}

// outerKey returns the key column of an outer join with given row
// indexes, taking each key from the left key column lk, or from the
// right key column rk for right-only rows. It draws the keys from the
// union of both key columns, so the key column of a right-only row
// has its right key rather than a zero value.
func outerKey(lk, rk *column.Column, lix, rix []int) (*column.Column, error) {
	all, err := lk.Union(rk)
	if err != nil {
		return nil, err
	}
	uks, err := keys(all)
	if err != nil {
		return nil, err
	}
	index := make(map[any]int, len(uks))
	absent := -1
	for i, k := range uks {
		if k == nil {
			absent = i
			continue
		}
		index[k] = i
	}
	lkeys, err := keys(lk)
	if err != nil {
		return nil, err
	}
	rkeys, err := keys(rk)
	if err != nil {
		return nil, err
	}
	kix := make([]int, len(lix))
	for i, li := range lix {
		var k any
		if li >= 0 {
			k = lkeys[li]
		} else {
			k = rkeys[rix[i]]
		}
		if k == nil {
			kix[i] = absent
			continue
		}
		kix[i] = index[k]
	}
	return all.DuplicateIndexes(kix)
}
