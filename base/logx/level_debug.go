// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package logx

import "log/slog"

// buildLevel is the initial [UserLevel] of a debug build.
const buildLevel = slog.LevelDebug
