// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"strings"
)

// descMargin is the gap between the longest long name and the description
// column.
const descMargin = 2

// Usage renders the full help text: a usage line followed by one aligned
// row per registered parameter, in name order. It reads only the registry
// and can be called in any parse state.
func (p *Parser) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [options]\n\nOptions:\n", p.prog)

	width := 0
	names := p.reg.names()
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range names {
		param, _ := p.reg.resolveLong(name)
		if param.short != NoShort {
			fmt.Fprintf(&b, "  -%c, --%s", param.short, param.name)
		} else {
			fmt.Fprintf(&b, "      --%s", param.name)
		}
		b.WriteString(strings.Repeat(" ", width-len(param.name)+descMargin))
		b.WriteString(param.desc)
		b.WriteByte('\n')
	}
	return b.String()
}
