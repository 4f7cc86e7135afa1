// Copyright (C) 2024 Simon Howard. All Rights Reserved.

package yocton

import (
	"io"
	"iter"
)

// Kind is the type of value a property carries.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindString Kind = iota // a string value
	KindObject             // a nested object
)

var kindStr = [...]string{
	KindString: "string",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// An Object is a cursor over the properties of one object scope: either
// the undelimited root scope of the input, or the contents of one
// "name { ... }" block. Every cursor derived from one input shares a
// single scanner, and only the innermost open cursor reads from it;
// reading the next property of an outer object first drains any still
// open inner object (see NextProp).
type Object struct {
	scn  *Scanner
	prop *Prop // most recently returned property
	root bool
	done bool // closing brace or end of input observed; terminal
}

// NewObject returns a root cursor over the properties of the input read
// from r.
func NewObject(r io.Reader) *Object {
	return &Object{scn: NewScanner(r), root: true}
}

// NewObjectWithScanner returns a root cursor that consumes input from s.
func NewObjectWithScanner(s *Scanner) *Object {
	return &Object{scn: s, root: true}
}

// NextProp returns the next property of o, or nil when the end of the
// object has been reached. Once any error has been latched, NextProp
// returns nil at every nesting level, indistinguishable at the call site
// from a clean end of input; check Err once after reading is finished.
//
// If the previous property opened an inner object that the caller has not
// fully read, NextProp first skips forward past its remaining properties,
// so ignoring an inner object never corrupts subsequent reads. The
// returned property, and any inner cursor obtained from it, are
// invalidated by the next call to NextProp on o.
func (o *Object) NextProp() *Prop {
	if o == nil || o.done || o.scn.err != nil {
		return nil
	}
	o.skipForward()
	o.prop = nil

	if err := o.scn.Next(); err == io.EOF {
		// EOF is only valid at the top level.
		if !o.root {
			o.scn.failf(errEOF)
		}
		o.done = true
		return nil
	} else if err != nil {
		return nil
	}

	switch o.scn.Token() {
	case String:
		return o.readProp(string(o.scn.Text()))
	case RBrace:
		if o.root {
			o.scn.failf("closing brace '}' not expected at top level")
			return nil
		}
		o.done = true
		return nil
	default:
		o.scn.failf("expected start of next property")
		return nil
	}
}

// readProp reads the remainder of a property whose name has just been
// scanned: either ": value" or an opening brace.
func (o *Object) readProp(name string) *Prop {
	p := &Prop{scn: o.scn, name: name}
	if err := o.scn.Next(); err != nil {
		if err == io.EOF {
			o.scn.failf("':' or '{' expected to follow property name")
		}
		return nil
	}
	switch o.scn.Token() {
	case Colon:
		if err := o.scn.Next(); err != nil || o.scn.Token() != String {
			o.scn.failf("string expected to follow ':'")
			return nil
		}
		p.value = string(o.scn.Text())
	case LBrace:
		p.kind = KindObject
		p.inner = &Object{scn: o.scn}
	default:
		o.scn.failf("':' or '{' expected to follow property name")
		return nil
	}
	o.prop = p
	return p
}

// skipForward drains any still-open inner object of the previously
// returned property, advancing the shared scanner past the rest of its
// scope before o reads its own next property.
func (o *Object) skipForward() {
	if o.prop == nil || o.prop.inner == nil {
		return
	}
	inner := o.prop.inner
	for inner.NextProp() != nil {
	}
	o.prop.inner = nil
}

// Props returns an iterator over the remaining properties of o. It is
// equivalent to calling NextProp until it returns nil.
func (o *Object) Props() iter.Seq[*Prop] {
	return func(yield func(*Prop) bool) {
		for p := o.NextProp(); p != nil; p = o.NextProp() {
			if !yield(p) {
				return
			}
		}
	}
}

// Err reports the first error latched during parsing, or nil if none has
// occurred. Reaching the end of the input cleanly is not an error.
func (o *Object) Err() error {
	if err := o.scn.err; err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Check latches message as a parse error if ok is false, recording the
// current line number. It lets a caller report a violated domain-level
// constraint on a parsed value through the same sticky channel as syntax
// errors: all subsequent reads across the whole cursor tree then behave
// as though the end of input had been reached.
func (o *Object) Check(ok bool, message string) {
	if !ok {
		o.scn.failf("%s", message)
	}
}

// Close releases the parse tree rooted at o: every cursor sharing its
// input stops returning properties and no further input is read. Closing
// a non-root cursor is a no-op. Close returns the error latched during
// parsing, if any, like Err.
func (o *Object) Close() error {
	if o.root {
		o.scn.setErr(io.EOF)
		o.done = true
	}
	return o.Err()
}

// A Prop is a single property read from an object: a name together with
// either a string value or an inner object. A Prop is only valid until
// the next call to NextProp on the cursor that returned it.
type Prop struct {
	scn   *Scanner
	name  string
	value string
	kind  Kind
	inner *Object
}

// Kind returns the kind of value p carries.
func (p *Prop) Kind() Kind { return p.kind }

// Name returns the property name.
func (p *Prop) Name() string { return p.name }

// Value returns the string value of p. If p carries an inner object
// instead, a type error is latched on the enclosing parse and Value
// returns "".
func (p *Prop) Value() string {
	if p.kind != KindString {
		p.scn.failf("property %q has object, not value type", p.name)
		return ""
	}
	return p.value
}

// Inner returns the cursor over the inner object of p. If p carries a
// string value instead, a type error is latched on the enclosing parse
// and Inner returns nil.
func (p *Prop) Inner() *Object {
	if p.kind != KindObject {
		p.scn.failf("property %q has value, not object type", p.name)
		return nil
	}
	return p.inner
}
