// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units formats byte counts, percentages, frequencies and
// temperatures for display. Byte formatting either picks a unit
// automatically or sticks to one fixed unit selected with the --type
// option, so columns of numbers line up across a report.
package units

import "fmt"

// ByteUnit selects a fixed display unit for byte counts. Auto picks the
// largest unit that keeps the value above one.
type ByteUnit int

const (
	Auto ByteUnit = iota
	KB
	MB
	GB
	TB
)

const div = 1024

var unitNames = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// ParseByteUnit maps the numeric --type option (0=auto, 1=KB, 2=MB,
// 3=GB, 4=TB) to a ByteUnit.
func ParseByteUnit(n int) (ByteUnit, error) {
	if n < int(Auto) || n > int(TB) {
		return Auto, fmt.Errorf("byte unit out of range [0-4]: %d", n)
	}
	return ByteUnit(n), nil
}

func (u ByteUnit) String() string {
	if u == Auto {
		return "auto"
	}
	return unitNames[u]
}

// divisor returns 1024^u.
func (u ByteUnit) divisor() uint64 {
	d := uint64(1)
	for i := ByteUnit(0); i < u; i++ {
		d *= div
	}
	return d
}

// Formatter renders byte counts in a configured unit. The zero value
// formats in auto mode.
type Formatter struct {
	unit ByteUnit
}

func NewFormatter(unit ByteUnit) Formatter {
	return Formatter{unit: unit}
}

func (f Formatter) Unit() ByteUnit { return f.unit }

// Bytes renders b in the configured unit, or the best-fitting unit in
// auto mode.
func (f Formatter) Bytes(b uint64) string {
	if f.unit == Auto {
		return FormatBytes(b)
	}
	return fmt.Sprintf("%d %s", b/f.unit.divisor(), unitNames[f.unit])
}

// FormatBytes renders b with an automatically chosen unit and one decimal
// place above bytes.
func FormatBytes(b uint64) string {
	if b < div {
		return fmt.Sprintf("%d B", b)
	}
	d, exp := uint64(div), 1
	for b/d >= div && exp < len(unitNames)-1 {
		d *= div
		exp++
	}
	return fmt.Sprintf("%.1f %s", float64(b)/float64(d), unitNames[exp])
}

// FormatPercent renders a 0-100 value with one decimal and a percent
// sign, right-aligned to width.
func FormatPercent(v float64, width int) string {
	return fmt.Sprintf("%*.1f%%", width, v)
}

// FormatFrequency renders a frequency in MHz, switching to GHz at 1000.
func FormatFrequency(mhz float64) string {
	if mhz >= 1000 {
		return fmt.Sprintf("%.1f GHz", mhz/1000)
	}
	return fmt.Sprintf("%.0f MHz", mhz)
}

// FormatTemperature renders a Celsius reading with one decimal.
func FormatTemperature(c float64) string {
	return fmt.Sprintf("%.1f°C", c)
}
