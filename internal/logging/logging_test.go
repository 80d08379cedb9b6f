package logging

import (
	"bytes"
	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	SetVerbosity(nil)
	require.Equal(t, log.ErrorLevel, log.GetLevel())
	require.Equal(t, "ERROR", VerbosityName())

	SetVerbosity([]bool{true, true, true})
	require.Equal(t, log.DebugLevel, log.GetLevel())
	require.Equal(t, "DEBUG", VerbosityName())

	SetVerbosity(make([]bool, 10))
	require.Equal(t, log.TraceLevel, log.GetLevel())
}

func Test_NewFormatter(t *testing.T) {
	_, ok := newFormatter("json", "auto", false).(*log.JSONFormatter)
	require.True(t, ok)

	text, ok := newFormatter("text", " NO ", true).(*log.TextFormatter)
	require.True(t, ok)
	require.True(t, text.DisableColors)
	require.False(t, text.ForceColors)
	require.True(t, text.FullTimestamp)

	text = newFormatter("text", "yes", false).(*log.TextFormatter)
	require.True(t, text.ForceColors)
}

func Test_ChiLogWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetLevel(log.DebugLevel)
	defer func() {
		log.SetLevel(log.InfoLevel)
		log.SetOutput(os.Stderr)
	}()

	w := &ChiLogWriter{}
	w.Print("[GET /encode 200]")
	require.Contains(t, buf.String(), "GET /encode 200")
	require.NotContains(t, buf.String(), "[GET")
}

func Test_JSONLogFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&log.JSONFormatter{})
	defer func() {
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
		log.SetOutput(os.Stderr)
	}()

	formatter := &JSONLogFormatter{
		ServerAddress: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080},
	}
	r := httptest.NewRequest(http.MethodPost, "/encode?url=true", nil)
	entry := formatter.NewLogEntry(r)
	entry.Write(200, 12, http.Header{"Content-Type": []string{"text/plain"}}, time.Millisecond, nil)

	out := buf.String()
	require.Contains(t, out, `"status":200`)
	require.Contains(t, out, `"server_port":8080`)
	require.Contains(t, out, `"query_string":"url=true"`)
	require.Contains(t, out, `"app":"b64ace"`)

	var _ middleware.LogFormatter = formatter
}
