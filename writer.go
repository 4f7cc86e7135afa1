// Copyright (C) 2024 Simon Howard. All Rights Reserved.

package yocton

import (
	"io"

	"github.com/fragglet/yocton/internal/escape"

	"go4.org/mem"
)

// A Writer emits yocton text incrementally to an underlying io.Writer.
// Properties are written with Prop; nested objects are bracketed by
// BeginObject and EndObject and indented one tab stop per level. Output
// is buffered, and the buffer is pushed to the underlying writer each
// time a complete top-level property has been written.
//
// Write errors are sticky, mirroring the parser: after the underlying
// writer first fails, all further calls are no-ops and buffered bytes are
// discarded rather than retried. Check Err, or the result of Flush, once
// when writing is finished.
type Writer struct {
	w     io.Writer
	buf   []byte
	depth int
	err   error
}

// NewWriter returns a Writer that emits yocton text to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Prop writes a single "name: value" property at the current depth. The
// name and value are written bare when possible, quoted and escaped
// otherwise.
func (w *Writer) Prop(name, value string) {
	if w.err != nil {
		return
	}
	w.indent()
	w.writeString(name)
	w.buf = append(w.buf, ':', ' ')
	w.writeString(value)
	w.buf = append(w.buf, '\n')
	w.autoflush()
}

// BeginObject opens a nested object named name. Each call must be paired
// with a later call to EndObject.
func (w *Writer) BeginObject(name string) {
	if w.err != nil {
		return
	}
	w.indent()
	w.writeString(name)
	w.buf = append(w.buf, ' ', '{', '\n')
	w.depth++
}

// EndObject closes the most recently opened object. With no object open
// it is a no-op.
func (w *Writer) EndObject() {
	if w.err != nil || w.depth == 0 {
		return
	}
	w.depth--
	w.indent()
	w.buf = append(w.buf, '}', '\n')
	w.autoflush()
}

// Flush pushes any buffered output to the underlying writer and returns
// the first error encountered by w, if any.
func (w *Writer) Flush() error {
	w.flush()
	return w.err
}

// Err returns the first error encountered by w, if any.
func (w *Writer) Err() error { return w.err }

// autoflush pushes buffered output whenever the writer returns to the top
// level, so all bytes of a finished top-level property reach the sink
// before the next one starts.
func (w *Writer) autoflush() {
	if w.depth == 0 {
		w.flush()
	}
}

func (w *Writer) flush() {
	if w.err != nil || len(w.buf) == 0 {
		return
	}
	_, err := w.w.Write(w.buf)
	w.buf = w.buf[:0]
	if err != nil {
		w.err = err
		w.buf = nil
	}
}

func (w *Writer) indent() {
	for i := 0; i < w.depth; i++ {
		w.buf = append(w.buf, '\t')
	}
}

func (w *Writer) writeString(s string) {
	if escape.IsBare(mem.S(s)) {
		w.buf = append(w.buf, s...)
		return
	}
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, escape.Quote(mem.S(s))...)
	w.buf = append(w.buf, '"')
}
