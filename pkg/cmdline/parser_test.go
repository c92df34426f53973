// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"errors"
	"strings"
	"testing"
)

// monitorRegistry mirrors the option set of a small monitoring CLI.
func monitorRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	AddFlag(reg, "help", '?', "show help message.")
	AddFlag(reg, "sys", 's', "show system memory info.")
	AddFlag(reg, "each", 'e', "show each process info.")
	Add(reg, "count", 'c', "sample count.", false, uint(0))
	Add(reg, "inquire", 'i', "inquire the selected process info.", false, uint64(1))
	Add(reg, "type", 'y', "set the byte unit.", false, 0)
	Add(reg, "output", 'o', "write report to file.", false, "")
	return reg
}

func TestParseLongValued(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	if reg.Exist("count") {
		t.Fatal("count exists before parse")
	}
	if err := par.Parse([]string{"--count", "42"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reg.Exist("count") {
		t.Fatal("count does not exist after parse")
	}
	if got := Get[uint](reg, "count"); got != 42 {
		t.Errorf("count = %d, want 42", got)
	}
	if par.Err() != "" {
		t.Errorf("Err() = %q, want empty", par.Err())
	}
}

func TestParseShortBoolean(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	if err := par.Parse([]string{"-?"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reg.Exist("help") {
		t.Fatal("help not set by -?")
	}
	if got := Get[bool](reg, "help"); !got {
		t.Error("help = false, want true")
	}
}

func TestParseShortBundlingWithAttachedValue(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	// s and e are boolean and bundle; o takes the remainder verbatim.
	if err := par.Parse([]string{"-seofile.txt"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, name := range []string{"sys", "each", "output"} {
		if !reg.Exist(name) {
			t.Errorf("%s not set", name)
		}
	}
	if got := Get[string](reg, "output"); got != "file.txt" {
		t.Errorf("output = %q, want %q", got, "file.txt")
	}
}

func TestParseShortValueInNextToken(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	if err := par.Parse([]string{"-o", "out.log", "-s"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := Get[string](reg, "output"); got != "out.log" {
		t.Errorf("output = %q, want %q", got, "out.log")
	}
	if !reg.Exist("sys") {
		t.Error("sys not set after valued short flag")
	}
}

func TestParseValuedShortStopsBundle(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	// Characters after a valued short flag are its value, never more
	// flags: "se" here is the value of -o, not -s -e.
	if err := par.Parse([]string{"-ose"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := Get[string](reg, "output"); got != "se" {
		t.Errorf("output = %q, want %q", got, "se")
	}
	if reg.Exist("sys") || reg.Exist("each") {
		t.Error("flags after a valued short flag were processed")
	}
}

func TestParseBooleanLongDoesNotConsumeValue(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	// "true" after a boolean flag is a plain token and is ignored.
	if err := par.Parse([]string{"--sys", "true"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reg.Exist("sys") {
		t.Error("sys not set")
	}
}

func TestParseIgnoresPlainTokens(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	if err := par.Parse([]string{"leftover", "", "-", "--", "-s"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reg.Exist("sys") {
		t.Error("sys not set after ignored tokens")
	}
}

func TestParseNegativeValueConsumed(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	// The token after a valued long flag is its value even when it starts
	// with a dash.
	if err := par.Parse([]string{"--type", "-2"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := Get[int](reg, "type"); got != -2 {
		t.Errorf("type = %d, want -2", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string // substring of Err()
	}{
		{
			name:    "unknown long flag",
			args:    []string{"--bogus"},
			wantErr: &UnknownParameterError{},
			wantMsg: "--bogus",
		},
		{
			name:    "unknown short flag",
			args:    []string{"-sx"},
			wantErr: &UnknownParameterError{},
			wantMsg: "-x",
		},
		{
			name:    "long flag missing value",
			args:    []string{"--type"},
			wantErr: &MissingValueError{},
			wantMsg: "--type requires a value",
		},
		{
			name:    "short flag missing value",
			args:    []string{"-o"},
			wantErr: &MissingValueError{},
			wantMsg: "-o requires a value",
		},
		{
			name:    "malformed number",
			args:    []string{"--count", "42abc"},
			wantErr: &ConversionError{},
			wantMsg: `"42abc"`,
		},
		{
			name:    "negative value for unsigned",
			args:    []string{"--count", "-1"},
			wantErr: &ConversionError{},
			wantMsg: `"-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := monitorRegistry(t)
			par := NewParser(reg, "evos")
			err := par.Parse(tt.args)
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !errorIs(err, tt.wantErr) {
				t.Errorf("Parse() error = %T, want %T", err, tt.wantErr)
			}
			if !strings.Contains(par.Err(), tt.wantMsg) {
				t.Errorf("Err() = %q, want substring %q", par.Err(), tt.wantMsg)
			}
			if !strings.HasSuffix(par.Err(), "\n") {
				t.Errorf("Err() = %q, want trailing newline", par.Err())
			}
		})
	}
}

// errorIs matches err against the concrete type of target.
func errorIs(err, target error) bool {
	switch target.(type) {
	case *UnknownParameterError:
		var e *UnknownParameterError
		return errors.As(err, &e)
	case *MissingValueError:
		var e *MissingValueError
		return errors.As(err, &e)
	case *MissingRequiredError:
		var e *MissingRequiredError
		return errors.As(err, &e)
	case *ConversionError:
		var e *ConversionError
		return errors.As(err, &e)
	}
	return false
}

func TestParseAbortsAtFirstError(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	err := par.Parse([]string{"--sys", "--bogus", "--each"})
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}
	// State from before the failing token is kept, later tokens are not
	// processed.
	if !reg.Exist("sys") {
		t.Error("sys assignment before the failure was lost")
	}
	if reg.Exist("each") {
		t.Error("token after the failure was processed")
	}
}

func TestParseRequiredMissing(t *testing.T) {
	reg := NewRegistry()
	Add(reg, "x", NoShort, "mandatory value.", true, "")
	par := NewParser(reg, "evos")

	err := par.Parse(nil)
	if err == nil {
		t.Fatal("Parse() succeeded with required parameter missing")
	}
	var mre *MissingRequiredError
	if !errors.As(err, &mre) {
		t.Fatalf("Parse() error = %T, want *MissingRequiredError", err)
	}
	if mre.Name != "x" {
		t.Errorf("missing parameter = %q, want %q", mre.Name, "x")
	}
	if !strings.Contains(par.Err(), "x") {
		t.Errorf("Err() = %q, does not name x", par.Err())
	}
}

func TestParseRequiredReportsFirstByNameOrder(t *testing.T) {
	reg := NewRegistry()
	Add(reg, "zeta", NoShort, "", true, "")
	Add(reg, "alpha", NoShort, "", true, "")
	par := NewParser(reg, "evos")

	err := par.Parse(nil)
	var mre *MissingRequiredError
	if !errors.As(err, &mre) {
		t.Fatalf("Parse() error = %T, want *MissingRequiredError", err)
	}
	if mre.Name != "alpha" {
		t.Errorf("reported %q, want first name in order %q", mre.Name, "alpha")
	}
}

func TestParseRequiredSatisfied(t *testing.T) {
	reg := NewRegistry()
	Add(reg, "x", 'x', "mandatory value.", true, "")
	par := NewParser(reg, "evos")

	if err := par.Parse([]string{"-x", "v"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := Get[string](reg, "x"); got != "v" {
		t.Errorf("x = %q, want %q", got, "v")
	}
}

func TestReparseClearsDiagnostic(t *testing.T) {
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")

	if err := par.Parse([]string{"--bogus"}); err == nil {
		t.Fatal("first Parse() succeeded, want error")
	}
	if par.Err() == "" {
		t.Fatal("Err() empty after failed parse")
	}
	if err := par.Parse([]string{"--sys"}); err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}
	if par.Err() != "" {
		t.Errorf("Err() = %q after successful re-parse, want empty", par.Err())
	}
}

func TestParseBooleanValueSet(t *testing.T) {
	// Boolean flags set through the parser are always literally true; the
	// accepted-string set only matters for conversion, exercised via a
	// valued assignment path in convert_test.go.
	reg := monitorRegistry(t)
	par := NewParser(reg, "evos")
	if err := par.Parse([]string{"--each"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !Get[bool](reg, "each") {
		t.Error("each = false, want true")
	}
}
