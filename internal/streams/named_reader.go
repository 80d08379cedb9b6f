package streams

import (
	"io"
)

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream which will be returned when outputing the stream with `%v`.
// It also makes sure that `Close()` can be called safely multiple times. Calling `Close()` on a closed object
// will simply succeed without an error.
type NamedReader struct {
	io.ReadCloser
	name   string
	closed bool
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloser: wrapped,
		name:       name,
	}
}

func (ns *NamedReader) String() string {
	return ns.name
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *NamedReader) Close() error {
	if ns.closed {
		return nil
	}
	ns.closed = true
	return LogClose(ns.ReadCloser)
}

// Closed will return `true` if NamedReader.Close has been called at least once
func (ns *NamedReader) Closed() bool {
	return ns.closed
}

var _ ReadCloserClosed = &NamedReader{}
