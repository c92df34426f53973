// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui renders the plain-text building blocks of monitor reports:
// aligned tables, progress bars, separators and optional color accents.
package tui

import (
	"fmt"
	"strings"
)

// colGap is the padding between table columns.
const colGap = 2

// Table renders headers and rows as left-aligned columns sized to the
// widest cell, with a dashed rule under the header. Rows may be ragged;
// cells beyond the header count are dropped.
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(LeftAlign(h, widths[i]+colGap))
	}
	b.WriteByte('\n')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+colGap))
	}
	b.WriteByte('\n')
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			b.WriteString(LeftAlign(cell, widths[i]+colGap))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ProgressBar renders a 0-100 value as "[███---] 42.5%". Values outside
// the range are clamped.
func ProgressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteByte('-')
		}
	}
	fmt.Fprintf(&b, "] %.1f%%", pct)
	return b.String()
}

// Separator returns a dashed rule of the given length.
func Separator(length int) string {
	if length <= 0 {
		length = 50
	}
	return strings.Repeat("-", length)
}

// LeftAlign pads s with trailing spaces to width; longer strings pass
// through unchanged.
func LeftAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RightAlign pads s with leading spaces to width.
func RightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// Center pads s on both sides to width, biasing left on odd padding.
func Center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := width - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Truncate shortens s to max characters, using "..." when it fits.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
