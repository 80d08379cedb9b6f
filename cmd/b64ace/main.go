package main

import (
	"fmt"
	"github.com/bokysan/b64ace/internal/args"
	"github.com/bokysan/b64ace/internal/commands/decode"
	"github.com/bokysan/b64ace/internal/commands/encode"
	"github.com/bokysan/b64ace/internal/commands/server"
	"github.com/bokysan/b64ace/internal/commands/version"
	b64Flags "github.com/bokysan/b64ace/internal/flags"
	"github.com/bokysan/b64ace/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// B64Ace is the main executable
type B64Ace struct {
	parser *flags.Parser
}

// NewB64Ace will create a new instance of B64Ace and initialize the parser
func NewB64Ace() *B64Ace {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &B64Ace{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()
	b.setupServer()

	return b
}

// setupGeneral will configure general options
func (b *B64Ace) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *B64Ace) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *B64Ace) setupEncode() {
	cmd := encode.NewCommand()
	_, err := b.parser.AddCommand(
		"encode",
		"Encode to base64",
		"Encode files (or the standard input) to base64 text, one line of output per input",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *B64Ace) setupDecode() {
	cmd := decode.NewCommand()
	_, err := b.parser.AddCommand(
		"decode",
		"Decode base64",
		"Decode base64 text from files (or the standard input). Both alphabets are accepted.",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupServer adds the `server` command
func (b *B64Ace) setupServer() {
	cmd := server.NewCommand()
	_, err := b.parser.AddCommand(
		"server",
		"Run the server",
		"Run a server encoding and decoding over HTTP and websockets",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts b64ace and reads the configuration file
func main() {

	b64Ace := NewB64Ace()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := b64Flags.NewYamlParser(b64Ace.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := b64Ace.parser.Parse()
	util.MustErrorNilOrExit(err)

}
