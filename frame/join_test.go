// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"testing"

	"cogentcore.org/frames/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func books(t *testing.T) *Frame {
	fr := New()
	require.NoError(t, fr.Set("Name", column.Of("Tukey", "Venables", "Tierney", "Ripley", "Ripley", "McNeil", "R Core")))
	require.NoError(t, fr.Set("Title", column.Of(
		"Exploratory Data Analysis",
		"Modern Applied Statistics ...",
		"LISP-STAT",
		"Spatial Statistics",
		"Stochastic Simulation",
		"Interactive Data Analysis",
		"An Introduction to R")))
	return fr
}

func authors(t *testing.T) *Frame {
	fr := New()
	require.NoError(t, fr.Set("Surname", column.Of("Tukey", "Venables", "Tierney", "Ripley", "McNeil", "Chambers")))
	require.NoError(t, fr.Set("Nationality", column.Of("US", "Australia", "US", "UK", "Australia", "US")))
	require.NoError(t, fr.Set("Deceased", column.Of(true, false, false, false, false, false)))
	return fr
}

func TestJoin(t *testing.T) {
	jf, err := Join(books(t), authors(t), "Name", "Surname")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Title", "Nationality", "Deceased"}, jf.Names())
	assert.Equal(t, []string{"Tukey", "Venables", "Tierney", "Ripley", "Ripley", "McNeil"}, typedValues[string](t, jf, "Name"))
	assert.Equal(t, []string{"US", "Australia", "US", "UK", "UK", "Australia"}, typedValues[string](t, jf, "Nationality"))
	assert.Equal(t, []bool{true, false, false, false, false, false}, typedValues[bool](t, jf, "Deceased"))
	assert.Equal(t, "Stochastic Simulation", typedValues[string](t, jf, "Title")[4])
}

func TestLeftJoin(t *testing.T) {
	jf, err := LeftJoin(books(t), authors(t), "Name", "Surname")
	require.NoError(t, err)
	assert.Equal(t, 7, jf.NumRows())
	assert.Equal(t, []string{"Tukey", "Venables", "Tierney", "Ripley", "Ripley", "McNeil", "R Core"}, typedValues[string](t, jf, "Name"))
	assert.Equal(t, []string{"US", "Australia", "US", "UK", "UK", "Australia", ""}, typedValues[string](t, jf, "Nationality"))
	assert.False(t, typedValues[bool](t, jf, "Deceased")[6])
}

func TestOuterJoin(t *testing.T) {
	jf, err := OuterJoin(books(t), authors(t), "Name", "Surname")
	require.NoError(t, err)
	assert.Equal(t, 8, jf.NumRows())
	assert.Equal(t, []string{"Name", "Title", "Nationality", "Deceased"}, jf.Names())
	assert.Equal(t, []string{"Tukey", "Venables", "Tierney", "Ripley", "Ripley", "McNeil", "R Core", "Chambers"}, typedValues[string](t, jf, "Name"))
	assert.Equal(t, "", typedValues[string](t, jf, "Title")[7])
	assert.Equal(t, "", typedValues[string](t, jf, "Nationality")[6])
	assert.Equal(t, "US", typedValues[string](t, jf, "Nationality")[7])
}

func TestJoinNameClash(t *testing.T) {
	left := New()
	require.NoError(t, left.Set("ID", column.Of(1, 2)))
	require.NoError(t, left.Set("Name", column.Of("a", "b")))
	right := New()
	require.NoError(t, right.Set("Key", column.Of(2, 1, 2)))
	require.NoError(t, right.Set("Name", column.Of("x", "y", "z")))

	jf, err := Join(left, right, "ID", "Key")
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Name", "Name_right"}, jf.Names())
	assert.Equal(t, []int{1, 2, 2}, typedValues[int](t, jf, "ID"))
	assert.Equal(t, []string{"a", "b", "b"}, typedValues[string](t, jf, "Name"))
	assert.Equal(t, []string{"y", "x", "z"}, typedValues[string](t, jf, "Name_right"))
	assert.Equal(t, "Name_right", jf.Column("Name_right").Name())
	// the right frame is not renamed
	assert.Equal(t, "Name", right.Column("Name").Name())
}

func TestJoinNullKeys(t *testing.T) {
	left := New()
	require.NoError(t, left.Set("K", column.Of(column.NullOf(1), column.Null[int]{}, column.NullOf(3))))
	right := New()
	require.NoError(t, right.Set("K", column.Of(column.Null[int]{}, column.NullOf(1), column.NullOf(4))))
	require.NoError(t, right.Set("V", column.Of("absent", "one", "four")))

	jf, err := LeftJoin(left, right, "K", "K")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "", ""}, typedValues[string](t, jf, "V"))

	jf, err = OuterJoin(left, right, "K", "K")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "", "", "absent", "four"}, typedValues[string](t, jf, "V"))
	ks := typedValues[column.Null[int]](t, jf, "K")
	assert.Equal(t, []column.Null[int]{column.NullOf(1), {}, column.NullOf(3), {}, column.NullOf(4)}, ks)
}

func TestJoinErrors(t *testing.T) {
	_, err := Join(books(t), authors(t), "Author", "Surname")
	assert.ErrorIs(t, err, ErrNoColumn)
	_, err = Join(books(t), authors(t), "Name", "Author")
	assert.ErrorIs(t, err, ErrNoColumn)
	_, err = Join(books(t), authors(t), "Name", "Deceased")
	assert.ErrorIs(t, err, column.ErrTypeMismatch)
}

func TestJoinKinds(t *testing.T) {
	assert.Equal(t, "inner", Inner.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "outer", Outer.String())
	assert.Equal(t, "JoinKinds(7)", JoinKinds(7).String())
}

func sites(t *testing.T) *Frame {
	fr := New()
	require.NoError(t, fr.Set("State", column.Of("IL", "IL", "IN")))
	require.NoError(t, fr.Set("Site", column.Of(1, 2, 1)))
	require.NoError(t, fr.Set("Latitude", column.Of(42.46757, 42.04915, 41.6814)))
	return fr
}

func parameters(t *testing.T) *Frame {
	fr := New()
	require.NoError(t, fr.Set("Region", column.Of("IL", "IN", "IL", "IL", "IN")))
	require.NoError(t, fr.Set("Monitor", column.Of(1, 1, 2, 2, 2)))
	require.NoError(t, fr.Set("Parameter", column.Of("ozone", "so2", "ozone", "no2", "pm25")))
	return fr
}

func TestJoinCompositeKey(t *testing.T) {
	leftOn := []string{"State", "Site"}
	rightOn := []string{"Region", "Monitor"}
	jf, err := JoinOn(Inner, sites(t), parameters(t), leftOn, rightOn)
	require.NoError(t, err)
	assert.Equal(t, []string{"State", "Site", "Latitude", "Parameter"}, jf.Names())
	assert.Equal(t, []string{"IL", "IL", "IL", "IN"}, typedValues[string](t, jf, "State"))
	assert.Equal(t, []int{1, 2, 2, 1}, typedValues[int](t, jf, "Site"))
	assert.Equal(t, []string{"ozone", "ozone", "no2", "so2"}, typedValues[string](t, jf, "Parameter"))

	jf, err = JoinOn(Outer, sites(t), parameters(t), leftOn, rightOn)
	require.NoError(t, err)
	assert.Equal(t, 5, jf.NumRows())
	assert.Equal(t, []string{"IL", "IL", "IL", "IN", "IN"}, typedValues[string](t, jf, "State"))
	assert.Equal(t, []int{1, 2, 2, 1, 2}, typedValues[int](t, jf, "Site"))
	assert.Equal(t, "pm25", typedValues[string](t, jf, "Parameter")[4])
	assert.Equal(t, 0.0, typedValues[float64](t, jf, "Latitude")[4])

	// a single key matches on State alone
	jf, err = JoinOn(Inner, sites(t), parameters(t), leftOn[:1], rightOn[:1])
	require.NoError(t, err)
	assert.Equal(t, 8, jf.NumRows())
	assert.Equal(t, []string{"State", "Site", "Latitude", "Monitor", "Parameter"}, jf.Names())
}

func TestJoinCompositeNullKeys(t *testing.T) {
	left := New()
	require.NoError(t, left.Set("A", column.Of("x", "x")))
	require.NoError(t, left.Set("B", column.Of(column.NullOf(1), column.Null[int]{})))
	right := New()
	require.NoError(t, right.Set("A", column.Of("x", "x")))
	require.NoError(t, right.Set("B", column.Of(column.Null[int]{}, column.NullOf(1))))
	require.NoError(t, right.Set("V", column.Of("absent", "one")))

	jf, err := JoinOn(Left, left, right, []string{"A", "B"}, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", ""}, typedValues[string](t, jf, "V"))
}

func TestJoinKeyErrors(t *testing.T) {
	_, err := JoinOn(Inner, sites(t), parameters(t), []string{"State", "Site"}, []string{"Region"})
	assert.ErrorIs(t, err, column.ErrInvalidArgument)
	_, err = JoinOn(Inner, sites(t), parameters(t), nil, nil)
	assert.ErrorIs(t, err, column.ErrInvalidArgument)
	_, err = JoinOn(Inner, sites(t), parameters(t), []string{"State", "Site"}, []string{"Region", "Parameter"})
	assert.ErrorIs(t, err, column.ErrTypeMismatch)
	_, err = JoinOn(Inner, sites(t), parameters(t), []string{"State", "Site"}, []string{"Region", "Station"})
	assert.ErrorIs(t, err, ErrNoColumn)
}
