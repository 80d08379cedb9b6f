package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// TryClose will close the stream and log (but otherwise ignore) the error
func TryClose(closer io.Closer) {
	_ = LogClose(closer)
}

// LogClose will close the stream, log the failure and return it
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	}
	return nil
}

// nopWriteCloser lets the standard output be handed out without ever being closed
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
