// Copyright (C) 2024 Simon Howard. All Rights Reserved.

package yocton

import "strconv"

// Typed accessors layered on top of string property values. Like the
// plain accessors, a value that does not parse latches an error on the
// enclosing parse rather than returning it.

// Int64 parses the value of p as a signed decimal integer. A property
// that carries an object, or a value that is not a well-formed integer,
// latches an error and returns 0.
func (p *Prop) Int64() int64 {
	v, err := strconv.ParseInt(p.Value(), 10, 64)
	if err != nil {
		p.scn.failf("property %q: invalid integer value %q", p.name, p.value)
		return 0
	}
	return v
}

// Uint64 parses the value of p as an unsigned decimal integer. A property
// that carries an object, or a value that is not a well-formed unsigned
// integer, latches an error and returns 0.
func (p *Prop) Uint64() uint64 {
	v, err := strconv.ParseUint(p.Value(), 10, 64)
	if err != nil {
		p.scn.failf("property %q: invalid unsigned integer value %q", p.name, p.value)
		return 0
	}
	return v
}

// Enum parses the value of p as one of a fixed set of symbolic names,
// returning its index in values. A value not listed in values latches an
// error and returns 0.
func (p *Prop) Enum(values []string) int {
	v := p.Value()
	for i, name := range values {
		if name == v {
			return i
		}
	}
	p.scn.failf("property %q: invalid value %q", p.name, v)
	return 0
}
