package server

import (
	"github.com/bokysan/b64ace/internal/args"
	"github.com/bokysan/b64ace/internal/logging"
	"github.com/go-chi/chi/middleware"
	"net"
	"net/http"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns the access log middleware matching the configured log format
func GetRequestLogger(address *net.TCPAddr) (logger NextHandlerFunc) {
	if args.General.LogFormat == "json" {
		logger = middleware.RequestLogger( // Write requests to log
			&logging.JSONLogFormatter{
				ServerAddress: address,
			},
		)
	} else {
		logger = middleware.RequestLogger( // Write requests to log
			&middleware.DefaultLogFormatter{
				Logger:  &logging.ChiLogWriter{},
				NoColor: logging.ColorDisabled(),
			},
		)
	}

	return
}
