package logging

import (
	log "github.com/sirupsen/logrus"
	"strings"
)

// SetVerbosity defines the verbosity level of the application. Without any `-v` only errors
// are logged; every `-v` adds one level, up to trace.
func SetVerbosity(v []bool) {
	verbosity := log.ErrorLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

// VerbosityName returns the current log level in upper case, e.g. `DEBUG`
func VerbosityName() string {
	if b, err := log.GetLevel().MarshalText(); err == nil {
		return strings.ToUpper(string(b))
	}
	return "TRACE"
}
