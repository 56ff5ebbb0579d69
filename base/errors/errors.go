// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors has helpers for handling errors at the edges of a
// program, by logging them or panicking on them.
package errors

import (
	"errors"
	"log/slog"
)

// Log logs err with [slog.Error] if it is not nil, and returns it,
// so that a call can be wrapped in place:
//
//	return errors.Log(fr.Print(w))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Must panics with err if it is not nil. It is for errors that can
// only come from a bug, such as a constant argument being invalid.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is [Must] for a call that returns a value and an error,
// returning the value when there is no error:
//
//	c := errors.Must1(column.From([3]int{1, 2, 3}))
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// New returns an error that formats as the given text, as [errors.New].
func New(text string) error { return errors.New(text) }
