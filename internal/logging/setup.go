package logging

import (
	"github.com/bokysan/b64ace/internal/args"
	"github.com/bokysan/b64ace/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from the general options. Logs
// always go to stderr or the log file: stdout is reserved for the command output.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	log.SetFormatter(newFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := openLogFile(*args.General.LogFile)
		util.MustErrorNilOrExit(err)
		log.SetOutput(f)
	} else {
		log.SetOutput(os.Stderr)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}

func newFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color = strings.TrimSpace(strings.ToLower(color))
	return &log.TextFormatter{
		ForceColors:   isYes(color),
		DisableColors: isNo(color),
		FullTimestamp: fullTimestamp,
	}
}

func openLogFile(name string) (io.Writer, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open log file %v", name)
	}
	return f, nil
}

func isYes(s string) bool {
	return s == "yes" || s == "true" || s == "1"
}

func isNo(s string) bool {
	return s == "no" || s == "false" || s == "0"
}

// ColorDisabled returns true if the user explicitly asked for uncolored output
func ColorDisabled() bool {
	return isNo(strings.TrimSpace(strings.ToLower(args.General.LogColor)))
}
