// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdline implements a small typed command-line parameter
// framework: a registry of declared options, a POSIX-style tokenizer
// with short-flag bundling and attached values, and aligned usage text.
//
// Unlike the flag packages built around struct tags, cmdline keeps an
// explicit, caller-owned registry so that option sets can be assembled
// at runtime (for example from a table of monitor commands) and queried
// with typed getters afterwards:
//
//	reg := cmdline.NewRegistry()
//	cmdline.AddFlag(reg, "verbose", 'v', "enable verbose output")
//	cmdline.Add(reg, "count", 'c', "sample count", false, uint(1))
//
//	par := cmdline.NewParser(reg, "prog")
//	if err := par.Parse(os.Args[1:]); err != nil {
//	    fmt.Print(par.Err(), par.Usage())
//	    os.Exit(2)
//	}
//	if reg.Exist("count") {
//	    n := cmdline.Get[uint](reg, "count")
//	    ...
//	}
//
// Supported syntax:
//   - Boolean flags: --verbose, -v, bundled -ab
//   - Valued flags: --count 3, -c 3, attached -c3
//
// Bad user input (unknown flags, missing values, malformed numbers,
// missing required parameters) is reported through Parse's error and the
// Err accessor. Misuse of the API itself — duplicate registrations,
// reading an unregistered name, reading with the wrong type — panics,
// since it cannot arise from untrusted input.
//
// A Registry is not safe for concurrent use; construct one per argument
// vector.
package cmdline
