package util

import (
	"github.com/bokysan/b64ace/pkg/base64"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrData is returned when the input could not be decoded (EX_DATAERR from sysexits.h)
	ErrData = 65

	// ErrGeneric is returned for all other errors
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Invalid base64 input exits with ErrData.
// If it's a different kind of error, a generic error code - 99 - is returned
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	if flagsError, ok := err.(*flags.Error); ok && flagsError.Type == flags.ErrHelp {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(ExitCode(err))
}

// ExitCode returns the process exit code for the given error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if flagsError, ok := errors.Cause(err).(*flags.Error); ok {
		if flagsError.Type == flags.ErrUnknown {
			return ErrGeneric
		}
		return int(flagsError.Type)
	}

	if merr, ok := err.(*multierror.Error); ok {
		code := 0
		for _, e := range merr.Errors {
			if c := ExitCode(e); c > code {
				code = c
			}
		}
		if code != 0 {
			return code
		}
	}

	if errors.Is(err, base64.ErrInvalidCharacter) || errors.Is(err, base64.ErrMalformedLength) {
		return ErrData
	}

	return ErrGeneric
}
