// Copyright (C) 2024 Simon Howard. All Rights Reserved.

package yocton

import (
	"errors"
	"strings"

	"github.com/fragglet/yocton/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a quoted yocton string value. The contents are
// escaped and double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a quoted yocton string value. Double quotation marks
// are removed, and escape sequences are replaced with their unescaped
// equivalents. An unknown or incomplete escape sequence is reported as an
// error.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
