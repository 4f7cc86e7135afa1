// Copyright (C) 2024 Simon Howard. All Rights Reserved.

// Package cursor implements traversal over the document tree of a parsed
// yocton object.
package cursor

import (
	"errors"
	"fmt"

	"github.com/fragglet/yocton/ast"
)

// Path traverses a sequential path into the structure of o, where path
// elements are as documented for the Cursor.Down method. It is a
// convenience wrapper for creating a cursor, applying path, and
// retrieving the property it lands on.
func Path(o *ast.Object, path ...any) (*ast.Prop, error) {
	c := New(o).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	if c.AtOrigin() {
		return nil, errors.New("empty path")
	}
	return c.Prop(), nil
}

// A Cursor is a pointer that navigates into the structure of a parsed
// yocton object.
type Cursor struct {
	org *ast.Object
	stk []*ast.Prop
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *ast.Object) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin object of c.
func (c *Cursor) Origin() *ast.Object { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Prop reports the property under the cursor, or nil if the cursor is at
// its origin.
func (c *Cursor) Prop() *ast.Prop {
	if c.AtOrigin() {
		return nil
	}
	return c.stk[len(c.stk)-1]
}

// Object returns the object scope at the cursor's position: the origin
// when the cursor is at its origin, otherwise the nested object of the
// current property. It returns nil if the current property carries a
// string value.
func (c *Cursor) Object() *ast.Object {
	if c.AtOrigin() {
		return c.org
	}
	return c.Prop().Object
}

// Path reports the complete sequence of properties from the origin to the
// current location in c.
func (c *Cursor) Path() []*ast.Prop {
	return append([]*ast.Prop(nil), c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from
// the current position, where path elements are either strings (denoting
// property names), integers (denoting offsets into an object's property
// list), or functions (see below). If the path cannot be completely
// consumed, traversal stops and an error is recorded. Use Err to recover
// the error.
//
// If a path element is a string, the current position must be an object
// scope, and the string resolves to the first property with that name.
//
// If a path element is an integer, it resolves to an index into the
// properties of the current object scope. Negative indices count backward
// from the end (-1 is last, -2 second last). An error is reported if the
// index is out of bounds.
//
// If a path element is a function, the function is applied to the current
// object scope and its result becomes the current property. The function
// must have a signature
//
//	func(*ast.Object) (*ast.Prop, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	for _, elt := range path {
		cur := c.Object()
		if cur == nil {
			return c.setErrorf("cannot traverse a string property with %v", elt)
		}

		switch t := elt.(type) {
		case string:
			p := cur.Find(t)
			if p == nil {
				return c.setErrorf("property %q not found", t)
			}
			c.push(p)

		case int:
			i, ok := fixBound(len(cur.Props), t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", t, len(cur.Props))
			}
			c.push(cur.Props[i])

		case func(*ast.Object) (*ast.Prop, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(p *ast.Prop) { c.stk = append(c.stk, p) }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
