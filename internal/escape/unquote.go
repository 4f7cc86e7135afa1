// Copyright (C) 2024 Simon Howard. All Rights Reserved.

// Package escape handles quoting and unquoting of yocton strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// Unquote decodes the contents of a quoted string. The input must have
// the enclosing double quotation marks already removed. Escape sequences
// are replaced with their unescaped equivalents; an unknown or incomplete
// escape sequence is reported as an error.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		c := src.At(0)
		src = src.SliceFrom(1)

		if b, ok := Simple(c); ok {
			dec = append(dec, b)
		} else if c == 'x' {
			if src.Len() < 2 {
				return nil, errHexDigits
			}
			b, err := HexByte(src.At(0), src.At(1))
			if err != nil {
				return nil, err
			}
			dec = append(dec, b)
			src = src.SliceFrom(2)
		} else {
			return nil, fmt.Errorf("unknown string escape: \\%c", c)
		}

		// Look for the next escape sequence, and if one is not found we
		// can blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// Simple returns the replacement for the single-character escape \c,
// and reports whether c names one.
func Simple(c byte) (byte, bool) {
	switch c {
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	}
	return 0, false
}

var errHexDigits = errors.New("\\x sequence must be followed by two hexadecimal characters")

// HexByte decodes the two hexadecimal digits of a \x escape sequence.
// Only control characters (0x01-0x1f) may be written this way; anything
// printable has no business being escaped, and NUL is forbidden outright.
func HexByte(hi, lo byte) (byte, error) {
	h, ok1 := hexVal(hi)
	l, ok2 := hexVal(lo)
	if !ok1 || !ok2 {
		return 0, errHexDigits
	}
	switch v := h<<4 | l; {
	case v == 0:
		return 0, errors.New("NUL byte not allowed in \\x escape sequence")
	case v >= 0x20:
		return 0, errors.New("\\x escape sequence can only be used for control characters")
	default:
		return v, nil
	}
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
