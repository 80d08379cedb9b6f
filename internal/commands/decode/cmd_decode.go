package decode

import (
	"github.com/bokysan/b64ace/internal/args"
	"github.com/bokysan/b64ace/internal/logging"
	"github.com/bokysan/b64ace/internal/streams"
	"github.com/bokysan/b64ace/internal/util/enc"
	"github.com/bokysan/b64ace/pkg/base64"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
)

// Command decodes base64 text from files (or the standard input)
type Command struct {
	Encoder string `json:"encoder" yaml:"encoder" short:"e" long:"encoder" env:"B64ACE_DECODE_ENCODER" description:"Encoder to use. Defaults to the general default encoder." choice:"std" choice:"url" choice:"pem" choice:"mime"`
	Strip   bool   `json:"strip"   yaml:"strip"   short:"s" long:"strip"                               description:"Remove line breaks before decoding."`
	Output  string `json:"output"  yaml:"output"  short:"o" long:"output"                              description:"Output file. Use '-' for standard output." default:"-"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to decode. Reads standard input when none is given."`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{
		Output: streams.StandardStream,
	}
}

// decoder returns the decoding function selected for this invocation
func (c *Command) decoder() (func(string) ([]byte, error), error) {
	name := c.Encoder
	if name == "" {
		name = args.General.Encoder
	}

	var e enc.Encoder = enc.Base64Encoding
	if name != "" {
		var err error
		if e, err = enc.FromName(name); err != nil {
			return nil, err
		}
	}

	if c.Strip {
		return func(text string) ([]byte, error) {
			data, err := base64.Decode(text, true)
			return data, errors.WithStack(err)
		}, nil
	}
	return e.Decode, nil
}

// Run decodes the inputs into the output. Inputs which fail to decode produce no output; the
// rest are still written. All failures are returned together.
func (c *Command) Run(files []string, output io.Writer) error {
	decode, err := c.decoder()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		files = []string{streams.StandardStream}
	}

	var errs error
	for _, file := range files {
		text, err := streams.ReadAll(file)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		data, err := decode(trimNewline(string(text)))
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode %v", file))
			continue
		}

		log.Debugf("Decoded %d bytes from %v", len(data), file)
		if _, err := output.Write(data); err != nil {
			return multierror.Append(errs, errors.Wrapf(err, "Could not write output"))
		}
	}
	return errs
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	out, err := streams.OpenOutput(c.Output)
	if err != nil {
		return err
	}

	err = c.Run(append(c.Args.Files, args...), out)
	if closeErr := out.Close(); closeErr != nil {
		err = multierror.Append(err, closeErr)
	}
	return err
}

// trimNewline removes one trailing line ending, as left by most editors and by `encode`
func trimNewline(text string) string {
	if strings.HasSuffix(text, "\r\n") {
		return text[:len(text)-2]
	}
	return strings.TrimSuffix(text, "\n")
}
