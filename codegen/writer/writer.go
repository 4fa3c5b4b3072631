// Package writer provides the prefix-aware text formatter code
// generators write through.
package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates generated text, applying a composable line prefix
// (indentation, comment markers) at the start of every line, including
// lines produced inside a single multi-line Write.
type Writer struct {
	sb     strings.Builder
	prefix string
	last   byte
}

// New creates an empty writer positioned at the start of a line.
func New() *Writer {
	return &Writer{last: '\n'}
}

// Write appends s to the buffer. The current prefix is emitted first when
// the writer is at the start of a line, and re-emitted after every
// interior newline of s. Writing the empty string changes nothing.
func (w *Writer) Write(s string) {
	if s == "" {
		return
	}

	if w.last == '\n' {
		w.sb.WriteString(w.prefix)
	}

	body, tail := s[:len(s)-1], s[len(s)-1]
	if w.prefix != "" {
		body = strings.ReplaceAll(body, "\n", "\n"+w.prefix)
	}
	w.sb.WriteString(body)
	w.sb.WriteByte(tail)
	w.last = tail
}

// Writef writes a formatted string without adding a newline.
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string followed by a newline.
func (w *Writer) WriteLine(s string) {
	w.Write(s + "\n")
}

// WriteLinef writes a formatted string followed by a newline.
func (w *Writer) WriteLinef(format string, args ...any) {
	w.WriteLine(fmt.Sprintf(format, args...))
}

// Prefix appends p to the current line prefix and returns a restore
// function that removes exactly that suffix again. Pair the two with
// defer so the restore runs on every exit path:
//
//	defer w.Prefix("/// ")()
//
// Prefixes compose in the order entered, so an indentation scope holding
// a comment scope yields indented comment lines.
func (w *Writer) Prefix(p string) (restore func()) {
	prev := len(w.prefix)
	w.prefix += p
	return func() {
		if prev <= len(w.prefix) {
			w.prefix = w.prefix[:prev]
		}
	}
}

// Indent is Prefix with n space characters.
func (w *Writer) Indent(n int) (restore func()) {
	return w.Prefix(strings.Repeat(" ", n))
}

// String returns the accumulated text. The writer is left untouched.
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the accumulated text as a byte slice.
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}

// Reset clears the accumulated text and any active prefix.
func (w *Writer) Reset() {
	w.sb.Reset()
	w.prefix = ""
	w.last = '\n'
}
