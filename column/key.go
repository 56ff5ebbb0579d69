// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// absentKey is the key of every absent [Null] value.
type absentKey struct{}

// nanKey is the key of every floating point NaN, so that NaNs
// are equal to each other for the purposes of [Key].
type nanKey struct{}

// decimalKey is the key of a decimal value.
type decimalKey string

// Key returns a comparable key for given value, such that two values
// have equal keys if and only if they are equal values.
// It is used for the set semantics of [Values.Union], and can be used
// to match rows by value, as in a join.
//   - time.Time values are equal if they are the same instant,
//     regardless of location.
//   - decimal.Decimal values are equal if they are numerically equal.
//   - all absent [Null] values are equal, and present ones are keyed
//     by their value.
//   - all NaN floats are equal.
//   - values that are not comparable are keyed by their %#v text.
func Key(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case nullValue:
		nv, ok := x.value()
		if !ok {
			return absentKey{}
		}
		return Key(nv)
	case time.Time:
		return x.UTC()
	case decimal.Decimal:
		// String gives the same text for numerically equal values,
		// such as 1.5 and 1.50.
		return decimalKey(x.String())
	case float64:
		if math.IsNaN(x) {
			return nanKey{}
		}
		return x
	case float32:
		if math.IsNaN(float64(x)) {
			return nanKey{}
		}
		return x
	}
	if reflect.ValueOf(v).Comparable() {
		return v
	}
	return fmt.Sprintf("%T:%#v", v, v)
}
