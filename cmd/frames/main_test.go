// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/frames/base/logx"
	"cogentcore.org/frames/column"
	"cogentcore.org/frames/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployees(t *testing.T) {
	fr, err := employees()
	require.NoError(t, err)
	assert.Equal(t, []string{"Names", "StartDate", "Ages", "LowScore", "HighScore", "ScoreDiff", "HighPlus1", "Hours", "Pay"}, fr.Names())
	pay, err := column.AsTyped[float64](fr.Column("Pay"))
	require.NoError(t, err)
	assert.Equal(t, []float64{375, 600, 456}, pay.Values())
	assert.Equal(t, "Pay", pay.Name())
}

func TestStartYears(t *testing.T) {
	fr, err := employees()
	require.NoError(t, err)
	yf, err := startYears(fr)
	require.NoError(t, err)
	want := "   Year   AverageAge   Count\n" +
		"   2016         34.5       2\n" +
		"   2017           35       1\n"
	assert.Equal(t, want, yf.String())
}

func TestDemo(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, demo(&b))
	out := b.String()
	assert.Contains(t, out, "average age: 34.666666666666664")
	assert.Contains(t, out, "total high score: 269")
	assert.Contains(t, out, "outer join:")
	assert.Contains(t, out, "Chambers")
	assert.Contains(t, out, "Venables & Smith")
	assert.Contains(t, out, "sites and parameters:")
	assert.Contains(t, out, "Longitude   Parameter   Duration")
	assert.Contains(t, out, "melted:")
	assert.Contains(t, out, "variable")
}

func TestMonitors(t *testing.T) {
	sites, params := monitors()
	jf, err := frame.JoinOn(frame.Inner, sites, params, []string{"State", "Site"}, []string{"Region", "Monitor"})
	require.NoError(t, err)
	assert.Equal(t, []string{"State", "Site", "Latitude", "Longitude", "Parameter", "Duration"}, jf.Names())
	par, err := column.AsTyped[string](jf.Column("Parameter"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ozone", "ozone", "no2", "so2"}, par.Values())
}

func TestFactorGroups(t *testing.T) {
	mf, err := factorGroups().Melt([]string{"FactorA", "FactorB"}, []string{"Group1", "Group2"})
	require.NoError(t, err)
	assert.Equal(t, 18, mf.NumRows())
	assert.Equal(t, []string{"FactorA", "FactorB", frame.MeltVariable, frame.MeltValue}, mf.Names())
	v, err := mf.Value(9, frame.MeltValue)
	require.NoError(t, err)
	assert.Equal(t, -0.5228371, v)
	v, err = mf.Value(9, frame.MeltVariable)
	require.NoError(t, err)
	assert.Equal(t, "Group2", v)
}

func TestCommands(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "format.toml")
	require.NoError(t, os.WriteFile(fn, []byte("margin = 1\nnull_text = \"NA\"\n"), 0666))
	saved := column.DefaultFormat
	t.Cleanup(func() { column.DefaultFormat = saved })

	var b bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"format", "--format", fn, "-q"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, b.String(), "margin = 1")
	assert.Equal(t, 1, column.DefaultFormat.Margin)

	cmd = newRootCmd()
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"demo", "extra"})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"format", "--format", filepath.Join(t.TempDir(), "missing.toml"), "-q"})
	assert.Error(t, cmd.Execute())

	yfn := filepath.Join(t.TempDir(), "saved.yaml")
	cmd = newRootCmd()
	cmd.SetArgs([]string{"format", yfn, "--format", fn, "-q"})
	require.NoError(t, cmd.Execute())
	loaded, err := column.OpenFormat(yfn)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Margin)
	assert.Equal(t, "NA", loaded.Null)
}

func TestCommandErrors(t *testing.T) {
	var b bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(logx.NewHandler(&b, slog.LevelInfo)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	for args, msg := range map[string]string{
		"demo --bogus": "unknown flag: --bogus",
		"dmeo":         `unknown command "dmeo"`,
		"format a b":   "accepts at most 1 arg(s), received 2",
	} {
		b.Reset()
		cmd := newRootCmd()
		cmd.SetArgs(strings.Fields(args))
		assert.Error(t, run(cmd), args)
		assert.Contains(t, b.String(), msg, args)
		assert.Contains(t, b.String(), "ERROR", args)
	}
}
