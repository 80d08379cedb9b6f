package streams

import "io"

// Closed is implemented by streams which can tell whether they have already been closed
type Closed interface {
	Closed() bool
}

// ReadCloserClosed is an io.ReadCloser which knows if it has been closed
type ReadCloserClosed interface {
	io.ReadCloser
	Closed
}

// WriteCloserClosed is an io.WriteCloser which knows if it has been closed
type WriteCloserClosed interface {
	io.WriteCloser
	Closed
}
