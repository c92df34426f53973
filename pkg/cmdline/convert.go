// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import "strconv"

// convert parses a raw token as the given kind. Numeric kinds require the
// whole token to be a base-10 number in range; "42abc" fails rather than
// truncating. Boolean conversion cannot fail: anything outside the
// accepted set is false.
func convert(kind Kind, flag, tok string) (any, error) {
	switch kind {
	case KindBool:
		switch tok {
		case "true", "1", "yes", "y":
			return true, nil
		}
		return false, nil
	case KindInt:
		n, err := strconv.ParseInt(tok, 10, strconv.IntSize)
		if err != nil {
			return nil, &ConversionError{Flag: flag, Value: tok, Kind: kind, Err: err}
		}
		return int(n), nil
	case KindUint:
		n, err := strconv.ParseUint(tok, 10, strconv.IntSize)
		if err != nil {
			return nil, &ConversionError{Flag: flag, Value: tok, Kind: kind, Err: err}
		}
		return uint(n), nil
	case KindInt64:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &ConversionError{Flag: flag, Value: tok, Kind: kind, Err: err}
		}
		return n, nil
	case KindUint64:
		n, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, &ConversionError{Flag: flag, Value: tok, Kind: kind, Err: err}
		}
		return n, nil
	case KindString:
		return tok, nil
	}
	panic("cmdline: unknown kind")
}
