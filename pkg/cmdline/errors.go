// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import "fmt"

// UnknownParameterError is returned when an argument names a flag that was
// never registered. Flag carries the dashes as the user typed them
// ("--name" or "-c").
type UnknownParameterError struct {
	Flag string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter: %s", e.Flag)
}

// MissingValueError is returned when a non-boolean flag is the last token
// and has nothing left to consume as its value.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("parameter %s requires a value", e.Flag)
}

// MissingRequiredError is returned after a scan completes with a required
// parameter still unset. Only the first such parameter (by name order) is
// reported.
type MissingRequiredError struct {
	Name string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("required parameter missing: --%s", e.Name)
}

// ConversionError is returned when a flag value cannot be parsed as the
// parameter's declared kind. Value is the offending token.
type ConversionError struct {
	Flag  string
	Value string
	Kind  Kind
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("parameter %s: invalid %s value %q", e.Flag, e.Kind, e.Value)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// The error types below indicate misuse of the package rather than bad
// user input; they are used as panic values.

// NotFoundError reports a typed read of a name that was never registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cmdline: parameter not found: %s", e.Name)
}

// TypeMismatchError reports a typed read whose type parameter does not
// match the kind the parameter was registered with.
type TypeMismatchError struct {
	Name string
	Want Kind // kind requested by the caller
	Got  Kind // kind the parameter was registered with
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cmdline: parameter %s is %s, not %s", e.Name, e.Got, e.Want)
}

// DuplicateNameError reports a second registration of the same long name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("cmdline: parameter already registered: %s", e.Name)
}

// DuplicateShortError reports a short flag already bound to another name.
type DuplicateShortError struct {
	Short byte
	Name  string // name being registered
	Bound string // name the short flag is already bound to
}

func (e *DuplicateShortError) Error() string {
	return fmt.Sprintf("cmdline: short flag -%c of %s already bound to %s", e.Short, e.Name, e.Bound)
}
