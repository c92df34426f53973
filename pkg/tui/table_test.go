// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTable(t *testing.T) {
	got := Table(
		[]string{"PID", "NAME"},
		[][]string{
			{"1", "systemd"},
			{"4242", "evos"},
		},
	)
	want := strings.Join([]string{
		"PID   NAME     ",
		"---------------",
		"1     systemd  ",
		"4242  evos     ",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Table() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if got := Table(nil, [][]string{{"x"}}); got != "" {
		t.Errorf("Table(nil, ...) = %q, want empty", got)
	}
}

func TestTableRaggedRows(t *testing.T) {
	got := Table([]string{"A"}, [][]string{{"1", "spill"}})
	if strings.Contains(got, "spill") {
		t.Errorf("Table() kept cells beyond the header count:\n%s", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct   float64
		width int
		want  string
	}{
		{0, 4, "[----] 0.0%"},
		{50, 4, "[██--] 50.0%"},
		{100, 4, "[████] 100.0%"},
		{150, 4, "[████] 100.0%"}, // clamped
		{-5, 4, "[----] 0.0%"},   // clamped
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.pct, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%v, %d) = %q, want %q", tt.pct, tt.width, got, tt.want)
		}
	}
}

func TestAlignment(t *testing.T) {
	if got := LeftAlign("ab", 4); got != "ab  " {
		t.Errorf("LeftAlign = %q", got)
	}
	if got := RightAlign("ab", 4); got != "  ab" {
		t.Errorf("RightAlign = %q", got)
	}
	if got := Center("ab", 5); got != " ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := LeftAlign("toolong", 3); got != "toolong" {
		t.Errorf("LeftAlign overflow = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("averylongname", 8); got != "avery..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("abcdef", 2); got != "ab" {
		t.Errorf("Truncate tiny = %q", got)
	}
}

func TestColorizerDisabledPassthrough(t *testing.T) {
	var c Colorizer
	if got := c.Header("x"); got != "x" {
		t.Errorf("Header = %q, want passthrough", got)
	}
	if got := c.Grade("95%", 95); got != "95%" {
		t.Errorf("Grade = %q, want passthrough", got)
	}
}
