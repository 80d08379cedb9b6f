package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
)

// StandardStream is the name used on the command line for stdin and stdout
const StandardStream = "-"

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// OpenInput opens the named file for reading. An empty name or `-` opens the standard input,
// which is never closed.
func OpenInput(name string) (*NamedReader, error) {
	if name == "" || name == StandardStream {
		return NewNamedReader(ioutil.NopCloser(stdin), "stdin"), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %v", name)
	}
	log.Debugf("Opened %v for reading", name)
	return NewNamedReader(f, name), nil
}

// OpenOutput creates (or truncates) the named file. An empty name or `-` returns the standard
// output, which is never closed.
func OpenOutput(name string) (*NamedWriter, error) {
	if name == "" || name == StandardStream {
		return NewNamedWriter(nopWriteCloser{stdout}, "stdout"), nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create %v", name)
	}
	log.Debugf("Opened %v for writing", name)
	return NewNamedWriter(f, name), nil
}

// ReadAll reads the whole named input and closes it
func ReadAll(name string) ([]byte, error) {
	r, err := OpenInput(name)
	if err != nil {
		return nil, err
	}
	defer TryClose(r)

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %v", r)
	}
	return data, nil
}
