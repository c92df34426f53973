// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import "strings"

// Parser scans an argument vector against a Registry, assigning values as
// it goes. It stops at the first bad token; assignments made before the
// failure are kept, so the registry stays queryable either way.
type Parser struct {
	reg    *Registry
	prog   string
	errMsg string
}

// NewParser returns a parser over reg. prog is the program name shown in
// usage text.
func NewParser(reg *Registry, prog string) *Parser {
	if prog == "" {
		prog = "program"
	}
	return &Parser{reg: reg, prog: prog}
}

// Parse processes args (the program name excluded) in order:
//
//   - "--name": long form. Boolean parameters are set to true; any other
//     kind consumes the following token as its value.
//   - "-abc": short form. Boolean short flags may be bundled. The first
//     non-boolean short flag takes the rest of the token as an attached
//     value ("-ofile.txt"), or the following token if nothing is attached,
//     and ends processing of the token.
//   - Anything else is ignored; there are no positional arguments.
//
// After the scan, every required parameter must have received a value.
// The first failure aborts the scan and is both returned and recorded for
// Err. Calling Parse again re-scans against the same registry, clearing
// the previous diagnostic.
func (p *Parser) Parse(args []string) error {
	p.errMsg = ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case len(arg) > 2 && strings.HasPrefix(arg, "--"):
			n, err := p.parseLong(arg[2:], args, i)
			if err != nil {
				return p.fail(err)
			}
			i += n
		case len(arg) > 1 && arg[0] == '-' && arg[1] != '-':
			n, err := p.parseShort(arg, args, i)
			if err != nil {
				return p.fail(err)
			}
			i += n
		}
	}

	for _, name := range p.reg.names() {
		param, _ := p.reg.resolveLong(name)
		if param.required && !param.hasValue {
			return p.fail(&MissingRequiredError{Name: name})
		}
	}
	return nil
}

// parseLong handles one "--name" token. It returns how many extra tokens
// were consumed (0 or 1).
func (p *Parser) parseLong(name string, args []string, i int) (int, error) {
	param, ok := p.reg.resolveLong(name)
	if !ok {
		return 0, &UnknownParameterError{Flag: "--" + name}
	}
	if param.kind == KindBool {
		param.set(true)
		return 0, nil
	}
	if i+1 >= len(args) {
		return 0, &MissingValueError{Flag: "--" + name}
	}
	// The next token is the value no matter what it looks like.
	return 1, assign(param, "--"+name, args[i+1])
}

// parseShort handles one "-abc" token. Boolean flags bundle; the first
// valued flag ends the bundle, taking either the token remainder or the
// next token as its value. Returns how many extra tokens were consumed.
func (p *Parser) parseShort(arg string, args []string, i int) (int, error) {
	for j := 1; j < len(arg); j++ {
		short := arg[j]
		name, ok := p.reg.ResolveShort(short)
		if !ok {
			return 0, &UnknownParameterError{Flag: "-" + string(short)}
		}
		param, _ := p.reg.resolveLong(name)
		if param.kind == KindBool {
			param.set(true)
			continue
		}
		if j+1 < len(arg) {
			// Attached value, e.g. -ofile.txt.
			return 0, assign(param, "-"+string(short), arg[j+1:])
		}
		if i+1 >= len(args) {
			return 0, &MissingValueError{Flag: "-" + string(short)}
		}
		return 1, assign(param, "-"+string(short), args[i+1])
	}
	return 0, nil
}

func assign(param *parameter, flag, tok string) error {
	v, err := convert(param.kind, flag, tok)
	if err != nil {
		return err
	}
	param.set(v)
	return nil
}

func (p *Parser) fail(err error) error {
	p.errMsg = err.Error()
	return err
}

// Err returns the diagnostic recorded by the last Parse, with a trailing
// newline so it can be printed directly ahead of Usage. It is empty when
// the last Parse succeeded or Parse has not run.
func (p *Parser) Err() string {
	if p.errMsg == "" {
		return ""
	}
	return p.errMsg + "\n"
}
