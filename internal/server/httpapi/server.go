// Package httpapi exposes the router over HTTP. It adds transport concerns
// only: CORS, simulated latency, request logging and the notification
// stream. Status codes and bodies come from the router unchanged.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/dmitrijs2005/blogadmin/internal/logging"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/router"
	"github.com/dmitrijs2005/blogadmin/internal/server/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address string
	router  *router.Router
	feed    *store.Store[models.Notification]
	logger  logging.Logger
	latency time.Duration
	origins []string
}

type Option func(*HTTPServer)

// WithLatency delays every API call by d before it is dispatched.
func WithLatency(d time.Duration) Option {
	return func(s *HTTPServer) { s.latency = d }
}

func WithAllowedOrigins(origins []string) Option {
	return func(s *HTTPServer) { s.origins = origins }
}

func NewHTTPServer(a string, l logging.Logger, r *router.Router, feed *store.Store[models.Notification], opts ...Option) *HTTPServer {
	s := &HTTPServer{
		address: a,
		router:  r,
		feed:    feed,
		logger:  l.With("module", "http_server"),
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the chi mux serving /healthz, the notification stream and
// every logical API route under /api.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", common.AuthorizationHeaderName, "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route(common.APIPrefix, func(r chi.Router) {
		r.Get("/notifications/stream", s.handleStream)
		r.With(Latency(s.latency)).HandleFunc("/*", s.handleAPI)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
