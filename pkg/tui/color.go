// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colorizer decides whether report output gets ANSI color. Monitors print
// a lot of thresholded numbers (usage percentages, temperatures), so the
// accent helpers grade values rather than exposing raw codes.
type Colorizer struct {
	Enabled bool

	header *color.Color
	good   *color.Color
	warn   *color.Color
	bad    *color.Color
	dim    *color.Color
}

// NewColorizer returns a Colorizer that is active only when enabled is
// true, output is a terminal, and the environment does not opt out.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return Colorizer{}
	}
	return Colorizer{
		Enabled: true,
		header:  color.New(color.FgCyan, color.Bold),
		good:    color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		bad:     color.New(color.FgRed),
		dim:     color.New(color.Faint),
	}
}

func (c Colorizer) sprint(col *color.Color, s string) string {
	if !c.Enabled || col == nil {
		return s
	}
	return col.Sprint(s)
}

// Header styles a section title.
func (c Colorizer) Header(s string) string { return c.sprint(c.header, s) }

// Dim styles secondary detail.
func (c Colorizer) Dim(s string) string { return c.sprint(c.dim, s) }

// Grade styles s by where pct falls against the usual usage thresholds:
// green below 70, yellow below 90, red at 90 and above.
func (c Colorizer) Grade(s string, pct float64) string {
	switch {
	case pct < 70:
		return c.sprint(c.good, s)
	case pct < 90:
		return c.sprint(c.warn, s)
	default:
		return c.sprint(c.bad, s)
	}
}
