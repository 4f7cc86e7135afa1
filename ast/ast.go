// Copyright (C) 2024 Simon Howard. All Rights Reserved.

// Package ast defines a document tree for yocton objects, and a parser
// that constructs document trees from yocton source.
package ast

import (
	"bytes"
	"io"
	"strconv"

	"github.com/fragglet/yocton"
)

// An Object is a parsed object scope: an ordered sequence of properties.
// Property order is preserved, and duplicate names are kept as distinct
// properties; repeating a name is the format's way of representing a
// list.
type Object struct {
	Props []*Prop
}

// A Prop is a single parsed property. A property carrying a nested object
// has a non-nil Object and an empty Value.
type Prop struct {
	Name   string
	Value  string
	Object *Object
}

// IsObject reports whether p carries a nested object.
func (p *Prop) IsObject() bool { return p.Object != nil }

// Int64 returns the value of p parsed as a signed decimal integer.
// It panics if the value is not a well-formed integer.
func (p *Prop) Int64() int64 {
	v, err := strconv.ParseInt(p.Value, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Uint64 returns the value of p parsed as an unsigned decimal integer.
// It panics if the value is not a well-formed unsigned integer.
func (p *Prop) Uint64() uint64 {
	v, err := strconv.ParseUint(p.Value, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Find returns the first property of o with the given name, or nil.
func (o *Object) Find(name string) *Prop {
	for _, p := range o.Props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindAll returns all properties of o with the given name, in order.
func (o *Object) FindAll(name string) []*Prop {
	var ps []*Prop
	for _, p := range o.Props {
		if p.Name == name {
			ps = append(ps, p)
		}
	}
	return ps
}

// Write re-serializes o as yocton text on w.
func (o *Object) Write(w io.Writer) error {
	yw := yocton.NewWriter(w)
	o.write(yw)
	return yw.Flush()
}

// String returns the yocton serialization of o. In case of error in
// formatting, it returns an empty string.
func (o *Object) String() string {
	var buf bytes.Buffer
	if o.Write(&buf) != nil {
		return ""
	}
	return buf.String()
}

func (o *Object) write(yw *yocton.Writer) {
	for _, p := range o.Props {
		if p.Object != nil {
			yw.BeginObject(p.Name)
			p.Object.write(yw)
			yw.EndObject()
		} else {
			yw.Prop(p.Name, p.Value)
		}
	}
}
