// Copyright (C) 2024 Simon Howard. All Rights Reserved.

// Package yocton implements a pull parser and an incremental writer for
// the yocton structured-text format.
//
// Yocton is a minimal, human-readable format built from properties. A
// property is a name followed by either a string value or a nested object
// containing further properties:
//
//	name: "Alice"
//	address {
//	  city: "Springfield"
//	  zip: 12345
//	}
//
// Names and values are strings: bare strings composed of alphanumerics
// and "_-+.", or quoted strings with C-style escapes. There are no other
// value types at the grammar level; interpreting "12345" as a number is
// up to the reader (see the typed accessors on Prop).
//
// # Objects
//
// The Object type is a cursor over the properties of one object scope.
// Construct a root cursor from an io.Reader and call NextProp to pull
// properties one at a time, or range over Props:
//
//	obj := yocton.NewObject(input)
//	for p := range obj.Props() {
//	   if p.Kind() == yocton.KindObject {
//	      readInner(p.Inner())
//	   } else {
//	      log.Printf("%s = %s", p.Name(), p.Value())
//	   }
//	}
//	if err := obj.Err(); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Reading is strictly forward-only. Every cursor derived from one input
// shares a single scanner, and reading the next property of an outer
// object automatically skips past any unread properties of an inner one.
// A caller may therefore ignore an inner object entirely and still read
// the properties that follow it.
//
// # Errors
//
// Errors are sticky: the first error latched during a parse, whether a
// syntax error, a type mismatch from a Prop accessor, or a constraint
// reported through Object.Check, is kept and never overwritten. From then
// on NextProp returns nil at every nesting level, exactly as if the end
// of the input had been reached. Callers check for an error once, after
// reading is finished, rather than after every call:
//
//	if err := obj.Err(); err != nil {
//	   var serr *yocton.SyntaxError
//	   if errors.As(err, &serr) {
//	      log.Fatalf("line %d: %s", serr.Line, serr.Message)
//	   }
//	}
//
// # Scanning
//
// The Scanner type implements the lexical layer on its own. Next advances
// to the next token and returns nil, or reports an error; at the end of
// the input it returns io.EOF. Most callers want the Object layer
// instead, but a root cursor can be attached to an existing scanner with
// NewObjectWithScanner.
//
// # Writing
//
// The Writer type emits yocton text incrementally, quoting and indenting
// as it goes. It shares the parser's sticky-error idiom: write failures
// latch, later calls become no-ops, and the error is checked once at the
// end via Flush or Err.
//
//	w := yocton.NewWriter(output)
//	w.Prop("name", "Alice")
//	w.BeginObject("address")
//	w.Prop("city", "Springfield")
//	w.Prop("zip", "12345")
//	w.EndObject()
//	if err := w.Flush(); err != nil {
//	   log.Fatalf("Write failed: %v", err)
//	}
package yocton
