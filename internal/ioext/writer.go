// Package ioext contains io.Writer wrappers used when emitting pages.
package ioext

import "io"

// Writer is an io.Writer wrapper which keeps track of the number of bytes
// that have been written and of the first error returned by the underlying
// writer. Once an error occurred, all subsequent writes fail with it.
type Writer struct {
	writer io.Writer
	offset int64
	err    error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

func (w *Writer) Offset() int64 {
	return w.offset
}

// Err returns the first error that occurred, or nil.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.writer.Write(b)
	w.offset += int64(n)
	if err != nil {
		w.err = err
	}
	return n, err
}

func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := io.WriteString(w.writer, s)
	w.offset += int64(n)
	if err != nil {
		w.err = err
	}
	return n, err
}

var (
	_ io.StringWriter = (*Writer)(nil)
)
