// Copyright (C) 2024 Simon Howard. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\n': 'n',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote escapes the contents of src for inclusion in a quoted string.
// The enclosing quotation marks are not added. Newlines, tabs, quotation
// marks and backslashes use their named escapes; any other byte below
// 0x20 is written as a \xHH sequence. All other bytes pass through
// unmodified, so UTF-8 text survives intact.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b == '\\' || b == '"':
			buf = append(buf, '\\', b)
		case b >= 0x20:
			buf = append(buf, b)
		default:
			if e := controlEsc[b]; e != 0 {
				buf = append(buf, '\\', e)
			} else {
				buf = append(buf, '\\', 'x', hexDigit[b>>4], hexDigit[b&15])
			}
		}
	}
	return buf
}

// IsBare reports whether src is a non-empty string composed entirely of
// bare-string characters, and may therefore be written without quotation.
func IsBare(src mem.RO) bool {
	if src.Len() == 0 {
		return false
	}
	for i := 0; i < src.Len(); i++ {
		if !IsBareByte(src.At(i)) {
			return false
		}
	}
	return true
}

// IsBareByte reports whether b may appear in a bare string: an ASCII
// letter or digit, or one of "_-+.".
func IsBareByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == '-' || b == '+' || b == '.':
		return true
	}
	return false
}
