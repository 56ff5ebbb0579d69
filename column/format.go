// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/frames/base/iox/tomlx"
	"cogentcore.org/frames/base/iox/yamlx"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

// Format has the options for the text rendering of columns.
// It can be loaded from a TOML or YAML file with [OpenFormat],
// and written to one with [Format.Save].
type Format struct {

	// Margin is the number of extra spaces of left padding added
	// to the width of the widest value (or name) in a column.
	Margin int `toml:"margin" yaml:"margin"`

	// Null is the text shown for an absent value.
	Null string `toml:"null_text" yaml:"null_text"`

	// TimeLayout is the [time.Time.Format] layout for time values.
	// If empty, [time.Time.String] is used.
	TimeLayout string `toml:"time_layout" yaml:"time_layout"`

	// Precision is the number of significant digits for floating
	// point values, with -1 for the minimum needed to represent
	// the value exactly.
	Precision int `toml:"precision" yaml:"precision"`
}

// DefaultFormat is the [Format] used by the String methods.
var DefaultFormat = Format{
	Margin:     3,
	TimeLayout: time.DateTime,
	Precision:  -1,
}

// ReadFormat reads a [Format] in TOML from given reader.
// Options that are not specified keep their [DefaultFormat] values.
func ReadFormat(r io.Reader) (*Format, error) {
	f := DefaultFormat
	if err := tomlx.Read(&f, r); err != nil {
		return nil, fmt.Errorf("column.ReadFormat: %w", err)
	}
	return &f, nil
}

// OpenFormat reads a [Format] from given file, which is YAML if it has
// a .yaml or .yml extension, and TOML otherwise.
// Options that are not specified keep their [DefaultFormat] values.
func OpenFormat(filename string) (*Format, error) {
	f := DefaultFormat
	open := tomlx.Open
	if isYAML(filename) {
		open = yamlx.Open
	}
	if err := open(&f, filename); err != nil {
		return nil, fmt.Errorf("column.OpenFormat: %w", err)
	}
	return &f, nil
}

// isYAML returns whether given file name has a YAML extension.
func isYAML(filename string) bool {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Save writes the format to given file, as YAML if it has a .yaml
// or .yml extension, and TOML otherwise.
func (f *Format) Save(filename string) error {
	save := tomlx.Save
	if isYAML(filename) {
		save = yamlx.Save
	}
	if err := save(f, filename); err != nil {
		return fmt.Errorf("column.Format.Save: %w", err)
	}
	return nil
}

// Text returns the text of given value using given format,
// with f.Null for nil and absent values.
func Text(v any, f *Format) string {
	if f == nil {
		f = &DefaultFormat
	}
	switch x := v.(type) {
	case nil:
		return f.Null
	case nullValue:
		nv, ok := x.value()
		if !ok {
			return f.Null
		}
		return Text(nv, f)
	case string:
		return x
	case time.Time:
		if f.TimeLayout == "" {
			return x.String()
		}
		return x.Format(f.TimeLayout)
	case float64:
		return strconv.FormatFloat(x, 'g', f.Precision, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', f.Precision, 32)
	case decimal.Decimal:
		return x.String()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// lineEscaper escapes line breaks so that every cell is one line.
var lineEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`)

// renderLines returns the name and the cells one per line, all
// right-aligned to the display width of the widest one plus f.Margin.
// Line breaks within the name or a cell are rendered as \n and \r.
func renderLines(name string, cells []string, f *Format) string {
	name = lineEscaper.Replace(name)
	width := runewidth.StringWidth(name)
	for i, s := range cells {
		cells[i] = lineEscaper.Replace(s)
		width = max(width, runewidth.StringWidth(cells[i]))
	}
	width += max(f.Margin, 0)
	var b strings.Builder
	b.WriteString(runewidth.FillLeft(name, width))
	b.WriteByte('\n')
	for _, s := range cells {
		b.WriteString(runewidth.FillLeft(s, width))
		b.WriteByte('\n')
	}
	return b.String()
}
