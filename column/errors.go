// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import "cogentcore.org/frames/base/errors"

// Errors returned by column operations. They are always wrapped with
// the name of the failing operation, so use errors.Is from the
// standard library to test for them.
var (
	// ErrOutOfRange is returned when an index is outside [0, Len).
	ErrOutOfRange = errors.New("index out of range")

	// ErrTypeMismatch is returned when two columns must have the same
	// element type and do not.
	ErrTypeMismatch = errors.New("element type mismatch")

	// ErrInvalidArgument is returned for arguments that violate an
	// operation's preconditions, such as a negative repeat count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedType is returned by [From] for values that are not
	// a slice or array of a supported element type.
	ErrUnsupportedType = errors.New("unsupported element type")
)
