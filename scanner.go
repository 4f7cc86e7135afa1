// Copyright (C) 2024 Simon Howard. All Rights Reserved.

package yocton

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/fragglet/yocton/internal/escape"
)

// Token is the type of a lexical token in the yocton grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	Colon                // colon ":"
	String               // bare or quoted string
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	Colon:   `":"`,
	String:  "string",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

const errEOF = "unexpected EOF"

// A Scanner reads lexical tokens from an input stream. Each call to Next
// advances the scanner to the next token, or reports an error. Errors are
// sticky: after the first failure every later call to Next reports the
// same error again, and no further input is read.
type Scanner struct {
	r    *bufio.Reader
	buf  bytes.Buffer // decoded text of the current string token
	tok  Token
	line int
	err  error
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br, line: 1}
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	if s.err != nil {
		return s.err
	}
	s.buf.Reset()
	s.tok = Invalid

	for {
		b, err := s.readByte()
		if err == io.EOF {
			return s.setErr(io.EOF)
		} else if err != nil {
			return err
		}

		switch b {
		case ' ', '\t', '\r', '\n':
			continue // discard whitespace
		case 0xef:
			// A UTF-8 byte-order mark is treated as whitespace.
			if err := s.skipBOM(); err != nil {
				return err
			}
			continue
		case ':':
			s.tok = Colon
			return nil
		case '{':
			s.tok = LBrace
			return nil
		case '}':
			s.tok = RBrace
			return nil
		case '"':
			return s.scanQuoted()
		default:
			return s.scanBare(b)
		}
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Text returns the decoded text of the current string token; escape
// sequences within a quoted string have already been replaced. The return
// value is only valid until the next call of Next. The caller must copy
// the contents of the returned slice if it is needed beyond that.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Copy returns a copy of the decoded text of the current string token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.buf.Bytes()...) }

// Line returns the 1-based line number of the scanner's current input
// position. It advances on every newline consumed, including newlines
// inside quoted strings.
func (s *Scanner) Line() int { return s.line }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) scanQuoted() error {
	for {
		b, err := s.readByte()
		if err == io.EOF {
			return s.failf(errEOF)
		} else if err != nil {
			return err
		}
		switch b {
		case '"':
			s.tok = String
			return nil
		case '\\':
			if err := s.scanEscape(); err != nil {
				return err
			}
		default:
			s.buf.WriteByte(b)
		}
	}
}

// scanEscape consumes the remainder of a \-escape and appends the byte it
// denotes to the token buffer.
func (s *Scanner) scanEscape() error {
	c, err := s.readByte()
	if err == io.EOF {
		return s.failf(errEOF)
	} else if err != nil {
		return err
	}
	if b, ok := escape.Simple(c); ok {
		s.buf.WriteByte(b)
		return nil
	}
	if c != 'x' {
		return s.failf("unknown string escape: \\%c", c)
	}
	var hex [2]byte
	for i := range hex {
		if hex[i], err = s.readByte(); err == io.EOF {
			return s.failf(errEOF)
		} else if err != nil {
			return err
		}
	}
	b, err := escape.HexByte(hex[0], hex[1])
	if err != nil {
		return s.failf("%v", err)
	}
	s.buf.WriteByte(b)
	return nil
}

func (s *Scanner) scanBare(first byte) error {
	if !escape.IsBareByte(first) {
		return s.failf("unknown token: not a valid bare-string character")
	}
	s.buf.WriteByte(first)
	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			break // a bare string may legally end the input
		} else if err != nil {
			return s.fail(err)
		} else if !escape.IsBareByte(b) {
			s.r.UnreadByte()
			break
		}
		s.buf.WriteByte(b)
	}
	s.tok = String
	return nil
}

// skipBOM consumes the trailing two bytes of a UTF-8 byte-order mark.
func (s *Scanner) skipBOM() error {
	for _, want := range [...]byte{0xbb, 0xbf} {
		b, err := s.readByte()
		if err == io.EOF {
			return s.failf(errEOF)
		} else if err != nil {
			return err
		} else if b != want {
			return s.failf("unknown token: not a valid bare-string character")
		}
	}
	return nil
}

func (s *Scanner) readByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == io.EOF {
		return 0, io.EOF
	} else if err != nil {
		return 0, s.fail(err)
	}
	if b == '\n' {
		s.line++
	}
	return b, nil
}

// setErr latches err as the scanner's sticky error. The first error wins
// and is never overwritten, except that a real error may replace a clean
// end-of-input.
func (s *Scanner) setErr(err error) error {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
	return s.err
}

func (s *Scanner) fail(err error) error {
	return s.setErr(&SyntaxError{Line: s.line, Message: err.Error(), err: err})
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.setErr(&SyntaxError{Line: s.line, Message: fmt.Sprintf(msg, args...)})
}

// SyntaxError is the concrete type of errors latched during parsing. Line
// is the 1-based line number of the input position where the error was
// detected.
type SyntaxError struct {
	Line    int
	Message string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }
