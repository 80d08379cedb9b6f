package encode

import (
	"github.com/bokysan/b64ace/internal/args"
	"github.com/bokysan/b64ace/internal/logging"
	"github.com/bokysan/b64ace/internal/streams"
	"github.com/bokysan/b64ace/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command encodes files (or the standard input) into base64 text
type Command struct {
	Encoder   string `json:"encoder"   yaml:"encoder"   short:"e" long:"encoder"    env:"B64ACE_ENCODE_ENCODER" description:"Encoder to use. Defaults to the general default encoder." choice:"std" choice:"url" choice:"pem" choice:"mime"`
	Url       bool   `json:"url"       yaml:"url"       short:"u" long:"url"                                    description:"Use the URL-safe alphabet. Shorthand for --encoder=url."`
	Output    string `json:"output"    yaml:"output"    short:"o" long:"output"                                 description:"Output file. Use '-' for standard output." default:"-"`
	NoNewline bool   `json:"noNewline" yaml:"noNewline" short:"n" long:"no-newline"                             description:"Do not write a new line after the encoded text."`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to encode. Reads standard input when none is given."`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{
		Output: streams.StandardStream,
	}
}

// encoder returns the encoder selected for this invocation
func (c *Command) encoder() (enc.Encoder, error) {
	if c.Url {
		return enc.Base64uEncoding, nil
	}
	name := c.Encoder
	if name == "" {
		name = args.General.Encoder
	}
	if name == "" {
		return enc.Base64Encoding, nil
	}
	return enc.FromName(name)
}

// Run encodes the inputs into the output. All inputs are attempted; failures are returned together.
func (c *Command) Run(files []string, output io.Writer) error {
	e, err := c.encoder()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		files = []string{streams.StandardStream}
	}

	var errs error
	for _, file := range files {
		data, err := streams.ReadAll(file)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		text := e.Encode(data)
		log.Debugf("Encoded %d bytes from %v using %v", len(data), file, e.Name())
		if !c.NoNewline {
			text += "\n"
		}
		if _, err := io.WriteString(output, text); err != nil {
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
