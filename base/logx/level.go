// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a colored [slog.Handler] and helpers for
// selecting the logging verbosity from command line flags.
package logx

import "log/slog"

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level are shown by handlers made with [NewHandler].
// It starts at [slog.LevelInfo], or [slog.LevelDebug] with the debug
// build tag, or [slog.LevelWarn] with the release build tag.
var UserLevel = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(buildLevel)
	return lv
}()

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so if both vv and q are
// specified, it still returns [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetLevelFromFlags sets [UserLevel] from the given flags,
// using [LevelFromFlags].
func SetLevelFromFlags(vv, v, q bool) {
	UserLevel.Set(LevelFromFlags(vv, v, q))
}
