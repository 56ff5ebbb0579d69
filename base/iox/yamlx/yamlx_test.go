// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type options struct {
	Margin int    `yaml:"margin"`
	Null   string `yaml:"null_text"`
}

func TestReadWrite(t *testing.T) {
	var o options
	require.NoError(t, Read(&o, strings.NewReader("margin: 2\nnull_text: NA\n")))
	assert.Equal(t, options{Margin: 2, Null: "NA"}, o)

	var b bytes.Buffer
	require.NoError(t, Write(o, &b))
	assert.Equal(t, "margin: 2\nnull_text: NA\n", b.String())

	assert.Error(t, Read(&o, strings.NewReader("margin: [")))
	assert.Error(t, Read(&o, strings.NewReader("width: 3\n")))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, Save(options{Margin: 5, Null: "-"}, fn))

	var o options
	require.NoError(t, Open(&o, fn))
	assert.Equal(t, options{Margin: 5, Null: "-"}, o)

	assert.Error(t, Open(&o, filepath.Join(t.TempDir(), "missing.yaml")))
}
