// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"sort"
)

// Kind identifies the value type a parameter was registered with. It is
// fixed for the lifetime of the parameter.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindUint
	KindInt64
	KindUint64
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is the set of Go types a parameter may hold.
type Value interface {
	bool | int | uint | int64 | uint64 | string
}

// NoShort is the sentinel for a parameter without a short flag.
const NoShort byte = 0

// parameter is one registered option. The registry owns all parameter
// state; the parser and usage formatter only borrow it. current is always
// one of the six Value types and always matches kind.
type parameter struct {
	name     string
	short    byte
	desc     string
	required bool
	kind     Kind

	def      any
	current  any
	hasValue bool
}

// set installs a converted value. Only the parser calls this.
func (p *parameter) set(v any) {
	p.current = v
	p.hasValue = true
}

// Registry holds the declared parameters for one argument vector.
// Registration must complete before parsing starts. The zero value is not
// usable; call NewRegistry.
type Registry struct {
	params map[string]*parameter
	shorts map[byte]string
}

func NewRegistry() *Registry {
	return &Registry{
		params: make(map[string]*parameter),
		shorts: make(map[byte]string),
	}
}

// Add registers a parameter with the given default. The long name must be
// unique and non-empty; short may be NoShort. Duplicate names or short
// flags panic, since they indicate a wiring bug rather than user input.
func Add[T Value](r *Registry, name string, short byte, desc string, required bool, def T) {
	if name == "" {
		panic("cmdline: empty parameter name")
	}
	if _, ok := r.params[name]; ok {
		panic(&DuplicateNameError{Name: name})
	}
	if short != NoShort {
		if bound, ok := r.shorts[short]; ok {
			panic(&DuplicateShortError{Short: short, Name: name, Bound: bound})
		}
	}
	r.params[name] = &parameter{
		name:     name,
		short:    short,
		desc:     desc,
		required: required,
		kind:     kindOf[T](),
		def:      def,
		current:  def,
	}
	if short != NoShort {
		r.shorts[short] = name
	}
}

// AddFlag registers a boolean switch defaulting to false. Most options of
// a typical CLI are of this form.
func AddFlag(r *Registry, name string, short byte, desc string) {
	Add(r, name, short, desc, false, false)
}

// Get returns the current value of name, which is its default until the
// parser assigns one. It panics with NotFoundError or TypeMismatchError on
// misuse.
func Get[T Value](r *Registry, name string) T {
	p, ok := r.params[name]
	if !ok {
		panic(&NotFoundError{Name: name})
	}
	v, ok := p.current.(T)
	if !ok {
		panic(&TypeMismatchError{Name: name, Want: kindOf[T](), Got: p.kind})
	}
	return v
}

// Exist reports whether name received a value during parsing. It is false
// for registered-but-unset parameters and for names that were never
// registered.
func (r *Registry) Exist(name string) bool {
	p, ok := r.params[name]
	if !ok {
		return false
	}
	return p.hasValue
}

// ResolveShort returns the long name bound to a short flag.
func (r *Registry) ResolveShort(short byte) (string, bool) {
	name, ok := r.shorts[short]
	return name, ok
}

// resolveLong returns the parameter registered under name.
func (r *Registry) resolveLong(name string) (*parameter, bool) {
	p, ok := r.params[name]
	return p, ok
}

// names returns all registered long names in sorted order. Both the usage
// formatter and the required-parameter check iterate in this order so the
// output is deterministic.
func (r *Registry) names() []string {
	names := make([]string, 0, len(r.params))
	for name := range r.params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func kindOf[T Value]() Kind {
	var v T
	switch any(v).(type) {
	case bool:
		return KindBool
	case int:
		return KindInt
	case uint:
		return KindUint
	case int64:
		return KindInt64
	case uint64:
		return KindUint64
	case string:
		return KindString
	}
	panic("unreachable")
}
