package server

import (
	"context"
	"github.com/bokysan/b64ace/internal/util/addr"
	"github.com/bokysan/b64ace/internal/util/cert"
	"github.com/bokysan/b64ace/internal/util/enc"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"sync"
	"time"
)

// DefaultMaxBodySize limits the size of request bodies and websocket messages
const DefaultMaxBodySize = 16 * 1024 * 1024

// shutdownTimeout is how long Shutdown waits for the running requests to finish
const shutdownTimeout = 5 * time.Second

// HttpServer exposes the codec over HTTP and websockets
type HttpServer struct {
	cert.ServerConfig

	Address           addr.ProtoAddress `json:"address"`
	Encoders          []enc.Encoder     `json:"-"`
	EnableCompression bool              `json:"enableCompression"`
	MaxBodySize       int64             `json:"maxBodySize"`

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewHttpServer creates a server for the given address with all encoders enabled
func NewHttpServer(address addr.ProtoAddress) *HttpServer {
	return &HttpServer{
		Address:     address,
		Encoders:    enc.All(),
		MaxBodySize: DefaultMaxBodySize,
	}
}

func (ws *HttpServer) String() string {
	return ws.Address.String()
}

// Addr returns the address the server is listening on, or nil if it has not been started
func (ws *HttpServer) Addr() net.Addr {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.listener == nil {
		return nil
	}
	return ws.listener.Addr()
}

// Router builds the request router. The address is used for access logging only and may be nil.
func (ws *HttpServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)
	if ws.RequireClientCert {
		router.Use(logPeerCertificates)
	}

	router.Get("/encoders", ws.listEncoders)
	router.Post("/encode", ws.encode)
	router.Post("/encode/{encoder}", ws.encodeWith)
	router.Post("/decode", ws.decode)
	router.Post("/decode/{encoder}", ws.decodeWith)
	router.Get("/ws/{encoder}", ws.websocketHandler())

	return router
}

// Startup starts listening and serves the requests in the background
func (ws *HttpServer) Startup() error {
	address, err := addr.ResolveHostAddress(ws.Address.Host)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    ws.Address.Host,
		Handler: ws.Router(address),
	}

	if ws.Address.Secure() {
		tlsConfig, err := ws.ServerConfig.GetTlsConfig()
		if err != nil {
			return errors.Wrapf(err, "Could not configure TLS")
		}
		server.TLSConfig = tlsConfig
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", server.Addr)
	}

	ws.mu.Lock()
	ws.server = server
	ws.listener = ln
	ws.mu.Unlock()

	log.Debugf("Endpoints of %v: %v", ws, Endpoints)

	go func() {
		var err error
		if server.TLSConfig != nil {
			log.Infof("Starting HTTPS server at %v", ln.Addr())
			err = server.ServeTLS(ln, "", "")
		} else {
			log.Infof("Starting HTTP server at %v", ln.Addr())
			err = server.Serve(ln)
		}
		if err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Server %v stopped: %v", ws, err)
		}
	}()

	return nil
}

// Shutdown stops the server, waiting for the running requests to complete
func (ws *HttpServer) Shutdown() error {
	ws.mu.Lock()
	server := ws.server
	ws.mu.Unlock()

	if server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.WithStack(server.Shutdown(ctx))
}

func logPeerCertificates(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cert.LogPeerCertificates(r.TLS)
		next.ServeHTTP(w, r)
	})
}

var _ Server = &HttpServer{}
