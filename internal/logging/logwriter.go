package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
)

// ChiLogWriter sends chi's default request log lines to logrus at debug level
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprint(a...))
	if len(msg) > 1 && msg[0] == '[' && msg[len(msg)-1] == ']' {
		msg = msg[1 : len(msg)-1]
	}
	logrus.Debug(msg)
}
