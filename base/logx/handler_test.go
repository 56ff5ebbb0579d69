// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := NewHandler(&buf, level, termenv.WithProfile(termenv.Ascii))
	return slog.New(h), &buf
}

func TestHandler(t *testing.T) {
	lg, buf := newTestLogger(slog.LevelInfo)
	lg.Debug("hidden")
	lg.Info("joined", "rows", 4, "on", "Names")
	lg.Warn("odd name", "name", "two words")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO joined rows=4 on=Names")
	assert.Contains(t, lines[1], `WARN odd name name="two words"`)
}

func TestHandlerAttrsAndGroups(t *testing.T) {
	lg, buf := newTestLogger(slog.LevelDebug)
	lg = lg.With("frame", "employees").WithGroup("join")
	lg.Debug("done", "left", 3, slog.Group("right", "rows", 2))
	assert.Contains(t, buf.String(), "DEBUG done frame=employees join.left=3 join.right.rows=2")
}

func TestHandlerLevelVar(t *testing.T) {
	var buf bytes.Buffer
	lv := &slog.LevelVar{}
	lv.Set(slog.LevelError)
	lg := slog.New(NewHandler(&buf, lv, termenv.WithProfile(termenv.Ascii)))
	lg.Warn("first")
	lv.Set(slog.LevelWarn)
	lg.Warn("second")
	assert.NotContains(t, buf.String(), "first")
	assert.Contains(t, buf.String(), "WARN second")
}
