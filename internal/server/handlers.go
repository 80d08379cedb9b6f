package server

import (
	"encoding/json"
	"github.com/bokysan/b64ace/internal/util/enc"
	"github.com/bokysan/b64ace/pkg/base64"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
)

const (
	contentTypeText   = "text/plain; charset=us-ascii"
	contentTypeBinary = "application/octet-stream"
	contentTypeJson   = "application/json"
)

// ErrBodyTooLarge is returned when the request body exceeds HttpServer.MaxBodySize
var ErrBodyTooLarge = errors.New("request body too large")

// errBadRequest marks client errors which are not produced by the codec
var errBadRequest = errors.New("bad request")

type encoderInfo struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Wrapped bool   `json:"wrapped"`
}

func (ws *HttpServer) listEncoders(w http.ResponseWriter, r *http.Request) {
	res := make([]encoderInfo, 0, len(ws.Encoders))
	for _, e := range ws.Encoders {
		res = append(res, encoderInfo{Name: e.Name(), Code: string(e.Code()), Wrapped: e.Wrapped()})
	}

	w.Header().Set("Content-Type", contentTypeJson)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.WithError(err).Warnf("Could not write encoder list: %v", err)
	}
}

func (ws *HttpServer) encode(w http.ResponseWriter, r *http.Request) {
	url, err := queryBool(r, "url")
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := ws.readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, base64.Encode(data, url))
}

func (ws *HttpServer) encodeWith(w http.ResponseWriter, r *http.Request) {
	e, err := ws.findEncoder(chi.URLParam(r, "encoder"))
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := ws.readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, e.Encode(data))
}

func (ws *HttpServer) decode(w http.ResponseWriter, r *http.Request) {
	strip, err := queryBool(r, "strip")
	if err != nil {
		writeError(w, err)
		return
	}
	text, err := ws.readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := base64.Decode(string(text), strip)
	if err != nil {
		writeError(w, err)
		return
	}
	writeBinary(w, data)
}

func (ws *HttpServer) decodeWith(w http.ResponseWriter, r *http.Request) {
	e, err := ws.findEncoder(chi.URLParam(r, "encoder"))
	if err != nil {
		writeError(w, err)
		return
	}
	text, err := ws.readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := e.Decode(string(text))
	if err != nil {
		writeError(w, err)
		return
	}
	writeBinary(w, data)
}

// findEncoder returns the encoder, given by name or one-letter code, if it is enabled on this server
func (ws *HttpServer) findEncoder(name string) (enc.Encoder, error) {
	e, err := enc.Lookup(name)
	if err != nil {
		return nil, err
	}
	for _, enabled := range ws.Encoders {
		if enabled.Code() == e.Code() {
			return e, nil
		}
	}
	return nil, errors.Wrapf(enc.ErrUnknownEncoder, "encoder %q is not enabled", name)
}

// readBody reads the whole request body, failing with ErrBodyTooLarge if it exceeds the limit
func (ws *HttpServer) readBody(r *http.Request) ([]byte, error) {
	limit := ws.MaxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}

	data, err := ioutil.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read request body")
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrBodyTooLarge, "limit is %d bytes", limit)
	}
	return data, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(errBadRequest, "invalid value for %s: %q", name, v)
	}
	return b, nil
}

// statusFor maps the errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, base64.ErrInvalidCharacter), errors.Is(err, base64.ErrMalformedLength), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, enc.ErrUnknownEncoder):
		return http.StatusNotFound
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Errorf("Request failed: %+v", err)
	} else {
		log.WithError(err).Debugf("Request rejected: %v", err)
	}
	http.Error(w, err.Error(), status)
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))
	if _, err := io.WriteString(w, text); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}

func writeBinary(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", contentTypeBinary)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}
