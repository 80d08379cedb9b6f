package server

import (
	"github.com/bokysan/b64ace/internal/logging"
	"github.com/bokysan/b64ace/internal/server"
	"github.com/bokysan/b64ace/internal/util/addr"
	"github.com/bokysan/b64ace/internal/util/cert"
	"github.com/bokysan/b64ace/internal/util/enc"
	"github.com/bokysan/b64ace/internal/util/mime"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"reflect"
	"syscall"
)

type Command struct {
	Listen            []string `json:"listen"            yaml:"listen"            short:"L" long:"listen"         env:"B64ACE_LISTEN" env-delim:" " description:"Address to listen on, e.g. 'http://127.0.0.1:9988' or 'https://:8443'. May be repeated." default:"http://127.0.0.1:9988"`
	Encoders          string   `json:"encoders"          yaml:"encoders"          long:"encoders"       env:"B64ACE_ENCODERS"                description:"Comma-separated list of enabled encoders" default:"std,url,pem,mime"`
	EnableCompression bool     `json:"enableCompression" yaml:"enableCompression" long:"ws-compression" env:"B64ACE_WS_COMPRESSION"          description:"Negotiate per-message compression on websocket connections"`
	MaxBodySize       int64    `json:"maxBodySize"       yaml:"maxBodySize"       long:"max-body"       env:"B64ACE_MAX_BODY"                description:"Maximum size of a request body or websocket message, in bytes" default:"16777216"`

	Tls cert.ServerConfig `json:"tls" yaml:"tls" group:"TLS options"`

	Servers server.Servers `json:"-" yaml:"-" no-flag:"true"`
}

func NewCommand() *Command {
	return &Command{
		Listen:      make([]string, 0),
		Servers:     make(server.Servers, 0),
		MaxBodySize: server.DefaultMaxBodySize,
	}
}

// Setup creates a server for every listen address
func (s *Command) Setup() error {
	encoders, err := s.enabledEncoders()
	if err != nil {
		return err
	}

	if len(s.Listen) == 0 {
		return errors.Errorf("No listen address specified")
	}

	s.Servers = make(server.Servers, 0, len(s.Listen))
	for _, l := range s.Listen {
		a, err := addr.ParseAddress(l)
		if err != nil {
			return err
		}
		srv := server.NewHttpServer(a)
		srv.ServerConfig = s.Tls
		srv.Encoders = encoders
		srv.EnableCompression = s.EnableCompression
		srv.MaxBodySize = s.MaxBodySize
		s.Servers = append(s.Servers, srv)
	}
	return nil
}

func (s *Command) enabledEncoders() ([]enc.Encoder, error) {
	names := mime.SplitField(s.Encoders)
	if len(names) == 0 {
		return enc.All(), nil
	}

	res := make([]enc.Encoder, 0, len(names))
	for _, name := range names {
		e, err := enc.FromName(name)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

// Startup starts all the servers. If any of them fails, the ones already started are shut down.
func (s *Command) Startup() error {
	var errs error

	for _, srv := range s.Servers {
		if err := srv.Startup(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not start %v", srv))
		}
	}

	if errs != nil {
		if err := s.Shutdown(); err != nil {
			log.WithError(err).Warnf("Shutdown after failed startup: %v", err)
		}
	}

	return errs
}

func (s *Command) Shutdown() error {
	var errs error

	log.Infof("Graceful server shutdown...")
	for _, srv := range s.Servers {
		srvType := reflect.TypeOf(reflect.Indirect(reflect.ValueOf(srv)).Interface())
		log.Debugf("[Server] Shutting down %v: %v", srvType, srv.String())
		if err := srv.Shutdown(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v: %v", srvType, srv))
		}
	}

	return errs
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	if err := s.Setup(); err != nil {
		return err
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	if err := s.Startup(); err != nil {
		return err
	}

	sig := <-interrupted
	log.Debugf("Received %v", sig)
	return s.Shutdown()
}
