package streams

import (
	"io"
)

// NamedWriter implements the io.WriteCloser interface as well as fmt.Stringer. Like the NamedReader,
// `Close()` may be called multiple times.
type NamedWriter struct {
	io.WriteCloser
	name   string
	closed bool
}

func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloser: wrapped,
		name:        name,
	}
}

func (ns *NamedWriter) String() string {
	return ns.name
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *NamedWriter) Close() error {
	if ns.closed {
		return nil
	}
	ns.closed = true
	return LogClose(ns.WriteCloser)
}

// Closed will return `true` if NamedWriter.Close has been called at least once
func (ns *NamedWriter) Closed() bool {
	return ns.closed
}

var _ WriteCloserClosed = &NamedWriter{}
