package server

import (
	"context"
	"fmt"
	"github.com/bokysan/radixace/internal/logging"
	"github.com/bokysan/radixace/internal/radix"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// ShutdownTimeout is how long Shutdown waits for in-flight requests
const ShutdownTimeout = 5 * time.Second

// HttpServer exposes the codecs over a small JSON API
type HttpServer struct {
	Address string

	alphabet *radix.Alphabet
	text     *radix.TextCodec
	server   *http.Server
	listener net.Listener
	done     chan error
}

// NewHttpServer creates a server for the given alphabet. Text endpoints are only available if the
// alphabet has a pad symbol.
func NewHttpServer(address string, a *radix.Alphabet) *HttpServer {
	ws := &HttpServer{
		Address:  address,
		alphabet: a,
	}
	if text, err := radix.NewTextCodec(a); err == nil {
		ws.text = text
	} else {
		log.WithError(err).Warnf("Text endpoints disabled: %v", err)
	}
	return ws
}

func (ws *HttpServer) String() string {
	if ws.listener != nil {
		return fmt.Sprintf("http://%s", ws.listener.Addr())
	}
	return fmt.Sprintf("http://%s", ws.Address)
}

// Addr returns the address the server is listening on, or nil if it was not started yet
func (ws *HttpServer) Addr() net.Addr {
	if ws.listener == nil {
		return nil
	}
	return ws.listener.Addr()
}

// Router builds the chi router with all the endpoints
func (ws *HttpServer) Router(address net.Addr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		logging.RequestLogger(address),
		middleware.Recoverer, // Recover from panics without crashing the server
	)

	router.Route("/v1", func(r chi.Router) {
		r.Get("/alphabet", ws.handleAlphabet)
		r.Get("/version", ws.handleVersion)
		r.Get("/number/encode/{value}", ws.handleNumberEncode)
		r.Get("/number/decode/{symbols}", ws.handleNumberDecode)
		r.Get("/text/encode", ws.handleTextEncode)
		r.Get("/text/decode/{stream}", ws.handleTextDecode)
		r.Post("/armor/{codec}/encode", ws.handleArmorEncode)
		r.Post("/armor/{codec}/decode", ws.handleArmorDecode)
	})

	return router
}

// Startup starts listening and serving in the background
func (ws *HttpServer) Startup() error {
	ln, err := net.Listen("tcp", ws.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.Address)
	}
	ws.listener = ln
	ws.done = make(chan error, 1)

	ws.server = &http.Server{
		Addr:    ln.Addr().String(),
		Handler: ws.Router(ln.Addr()),
	}

	go func() {
		log.Infof("Starting HTTP server at %v with %v", ws, ws.alphabet)
		err := ws.server.Serve(ln)
		if err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
			ws.done <- err
		}
		close(ws.done)
	}()

	return nil
}

// Done is closed when the server stops. If it stopped because of an error, the error is delivered first.
func (ws *HttpServer) Done() <-chan error {
	return ws.done
}

// Shutdown stops the server gracefully
func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	log.Infof("Graceful server shutdown of %v...", ws)
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return errors.WithStack(ws.server.Shutdown(ctx))
}
