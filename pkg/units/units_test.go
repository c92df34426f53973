// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "testing"

func TestFormatBytesAuto(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5*1024*1024*1024 + 512*1024*1024, "5.5 GB"},
		{1024 * 1024 * 1024 * 1024, "1.0 TB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatterFixedUnit(t *testing.T) {
	tests := []struct {
		unit ByteUnit
		in   uint64
		want string
	}{
		{KB, 2048, "2 KB"},
		{MB, 3 * 1024 * 1024, "3 MB"},
		{GB, 1024 * 1024 * 1024, "1 GB"},
		{KB, 100, "0 KB"}, // fixed unit truncates, it never switches down
	}
	for _, tt := range tests {
		f := NewFormatter(tt.unit)
		if got := f.Bytes(tt.in); got != tt.want {
			t.Errorf("Formatter(%s).Bytes(%d) = %q, want %q", tt.unit, tt.in, got, tt.want)
		}
	}
}

func TestFormatterZeroValueIsAuto(t *testing.T) {
	var f Formatter
	if got := f.Bytes(2048); got != "2.0 KB" {
		t.Errorf("zero Formatter.Bytes(2048) = %q, want %q", got, "2.0 KB")
	}
}

func TestParseByteUnit(t *testing.T) {
	for n, want := range map[int]ByteUnit{0: Auto, 1: KB, 2: MB, 3: GB, 4: TB} {
		got, err := ParseByteUnit(n)
		if err != nil || got != want {
			t.Errorf("ParseByteUnit(%d) = %v, %v; want %v, nil", n, got, err, want)
		}
	}
	for _, n := range []int{-1, 5, 100} {
		if _, err := ParseByteUnit(n); err == nil {
			t.Errorf("ParseByteUnit(%d) succeeded, want error", n)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(42.25, 5); got != " 42.2%" {
		t.Errorf("FormatPercent(42.25, 5) = %q, want %q", got, " 42.2%")
	}
}

func TestFormatFrequency(t *testing.T) {
	if got := FormatFrequency(800); got != "800 MHz" {
		t.Errorf("FormatFrequency(800) = %q", got)
	}
	if got := FormatFrequency(3600); got != "3.6 GHz" {
		t.Errorf("FormatFrequency(3600) = %q", got)
	}
}

func TestFormatTemperature(t *testing.T) {
	if got := FormatTemperature(67.25); got != "67.2°C" {
		t.Errorf("FormatTemperature(67.25) = %q", got)
	}
}
