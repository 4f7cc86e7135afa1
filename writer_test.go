// Copyright (C) 2024 Simon Howard. All Rights Reserved.

package yocton_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fragglet/yocton"
	"github.com/google/go-cmp/cmp"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := yocton.NewWriter(&buf)
	w.Prop("name", "Alice")
	w.BeginObject("address")
	w.Prop("city", "Springfield")
	w.Prop("zip", "12345")
	w.BeginObject("geo")
	w.Prop("lat", "40.1")
	w.EndObject()
	w.EndObject()
	w.Prop("after", "value with spaces")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "name: Alice\n" +
		"address {\n" +
		"\tcity: Springfield\n" +
		"\tzip: 12345\n" +
		"\tgeo {\n" +
		"\t\tlat: 40.1\n" +
		"\t}\n" +
		"}\n" +
		"after: \"value with spaces\"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
}

func TestWriterQuoting(t *testing.T) {
	tests := []struct {
		name, value string
		want        string
	}{
		// Bare strings are written unquoted.
		{"a", "b", "a: b\n"},
		{"key.2", "-12+3_x", "key.2: -12+3_x\n"},

		// Anything else gets quoted and escaped.
		{"key name", "v", "\"key name\": v\n"},
		{"a", "", "a: \"\"\n"},
		{"a", "tab\there", "a: \"tab\\there\"\n"},
		{"a", "line\nbreak", "a: \"line\\nbreak\"\n"},
		{"a", `back\slash`, `a: "back\\slash"` + "\n"},
		{"a", `quote"here`, `a: "quote\"here"` + "\n"},
		{"a", "bell\acr\r", `a: "bell\x07cr\x0d"` + "\n"},

		// Non-ASCII forces quoting but passes through unescaped.
		{"a", "héllo", "a: \"héllo\"\n"},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		w := yocton.NewWriter(&buf)
		w.Prop(test.name, test.value)
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
		if diff := cmp.Diff(test.want, buf.String()); diff != "" {
			t.Errorf("Prop(%q, %q): (-want, +got)\n%s", test.name, test.value, diff)
		}
	}
}

func TestWriterEndObjectAtTopLevel(t *testing.T) {
	var buf bytes.Buffer
	w := yocton.NewWriter(&buf)
	w.EndObject() // nothing open; must be a no-op
	w.Prop("a", "b")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := buf.String(); got != "a: b\n" {
		t.Errorf("Output: got %q, want %q", got, "a: b\n")
	}
}

// countingWriter records each Write it receives.
type countingWriter struct {
	writes int
	buf    bytes.Buffer
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.writes++
	return c.buf.Write(p)
}

func TestWriterAutoFlush(t *testing.T) {
	sink := new(countingWriter)
	w := yocton.NewWriter(sink)

	w.Prop("a", "1")
	if sink.writes != 1 {
		t.Errorf("after top-level property: %d writes, want 1", sink.writes)
	}

	// Inside an object nothing reaches the sink until it is closed.
	w.BeginObject("o")
	w.Prop("x", "2")
	w.Prop("y", "3")
	if sink.writes != 1 {
		t.Errorf("inside object: %d writes, want 1", sink.writes)
	}
	w.EndObject()
	if sink.writes != 2 {
		t.Errorf("after closing object: %d writes, want 2", sink.writes)
	}

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
}

var errSink = errors.New("sink failed")

// failAfter accepts n Writes and then fails every subsequent one.
type failAfter struct {
	n      int
	writes int
	buf    bytes.Buffer
}

func (f *failAfter) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > f.n {
		return 0, errSink
	}
	return f.buf.Write(p)
}

func TestWriterStickyError(t *testing.T) {
	sink := &failAfter{n: 1}
	w := yocton.NewWriter(sink)

	w.Prop("a", "1")
	if err := w.Err(); err != nil {
		t.Fatalf("unexpected error after first property: %v", err)
	}

	w.Prop("b", "2") // sink fails here
	if err := w.Err(); err != errSink {
		t.Fatalf("Err: got %v, want %v", err, errSink)
	}

	// All further calls are no-ops; the sink is never touched again and
	// buffered bytes are discarded.
	w.Prop("c", "3")
	w.BeginObject("o")
	w.EndObject()
	if err := w.Flush(); err != errSink {
		t.Errorf("Flush: got %v, want %v", err, errSink)
	}
	if sink.writes != 2 {
		t.Errorf("sink saw %d writes, want 2", sink.writes)
	}
	if got := sink.buf.String(); got != "a: 1\n" {
		t.Errorf("sink received %q, want %q", got, "a: 1\n")
	}
}

func TestRoundTrip(t *testing.T) {
	values := []string{
		`he said "hi"`,
		"line\nbreak\ttab\\backslash",
		"bell\a backspace\b return\r",
		"control \x01\x1f",
		"héllo wörld",
		"",
		"bare-string_ok.1",
	}

	var buf bytes.Buffer
	w := yocton.NewWriter(&buf)
	for i, v := range values {
		w.Prop(fmt.Sprintf("v%d", i), v)
	}
	w.BeginObject("nested")
	w.Prop("inner", values[0])
	w.EndObject()
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	obj := yocton.NewObject(&buf)
	i := 0
	for p := range obj.Props() {
		if p.Kind() == yocton.KindObject {
			inner := p.Inner().NextProp()
			if inner == nil || inner.Value() != values[0] {
				t.Errorf("nested property: got %v, want %q", inner, values[0])
			}
			continue
		}
		if got, want := p.Name(), fmt.Sprintf("v%d", i); got != want {
			t.Errorf("property %d: got name %q, want %q", i, got, want)
		}
		if got := p.Value(); got != values[i] {
			t.Errorf("property %d: got value %q, want %q", i, got, values[i])
		}
		i++
	}
	if err := obj.Err(); err != nil {
		t.Errorf("reparse failed: %v", err)
	}
	if i != len(values) {
		t.Errorf("reparse yielded %d properties, want %d", i, len(values))
	}
}
