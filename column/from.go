// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// From returns a new unnamed column with a copy of given values, which
// must be a slice or an array of one of the supported element types:
// any [Scalar] type, its [Null] form, or any (for an object column).
// Anything else is an [ErrUnsupportedType] error.
// Note that []byte and []rune are []uint8 and []int32 columns:
// use []Char for a column of characters.
func From(values any) (*Column, error) {
	switch x := values.(type) {
	case []bool:
		return New(x), nil
	case []time.Time:
		return New(x), nil
	case []int8:
		return New(x), nil
	case []int16:
		return New(x), nil
	case []int32:
		return New(x), nil
	case []int64:
		return New(x), nil
	case []int:
		return New(x), nil
	case []uint8:
		return New(x), nil
	case []uint16:
		return New(x), nil
	case []uint32:
		return New(x), nil
	case []uint64:
		return New(x), nil
	case []uint:
		return New(x), nil
	case []Char:
		return New(x), nil
	case []decimal.Decimal:
		return New(x), nil
	case []float32:
		return New(x), nil
	case []float64:
		return New(x), nil
	case []string:
		return New(x), nil
	case []Null[bool]:
		return New(x), nil
	case []Null[time.Time]:
		return New(x), nil
	case []Null[int8]:
		return New(x), nil
	case []Null[int16]:
		return New(x), nil
	case []Null[int32]:
		return New(x), nil
	case []Null[int64]:
		return New(x), nil
	case []Null[int]:
		return New(x), nil
	case []Null[uint8]:
		return New(x), nil
	case []Null[uint16]:
		return New(x), nil
	case []Null[uint32]:
		return New(x), nil
	case []Null[uint64]:
		return New(x), nil
	case []Null[uint]:
		return New(x), nil
	case []Null[Char]:
		return New(x), nil
	case []Null[decimal.Decimal]:
		return New(x), nil
	case []Null[float32]:
		return New(x), nil
	case []Null[float64]:
		return New(x), nil
	case []Null[string]:
		return New(x), nil
	case []any:
		return NewObjects(x), nil
	case nil:
		return nil, fmt.Errorf("column.From: %w: nil", ErrUnsupportedType)
	}
	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("column.From: %w: %T", ErrUnsupportedType, values)
	}
	sv := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), rv.Len(), rv.Len())
	reflect.Copy(sv, rv)
	c, err := From(sv.Interface())
	if err != nil {
		return nil, fmt.Errorf("column.From: %w: %T", ErrUnsupportedType, values)
	}
	return c, nil
}
