// Package http exposes the article lookup pipeline as a JSON-over-HTTP
// service with permissive CORS so browser clients can call it directly.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/reeljournal/wikifilm"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server serves the wikipedia lookup endpoint.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address, e.g. ":8787". Set before calling Open.
	Addr string

	// Articles handles lookups. Required.
	Articles wikifilm.ArticleService

	// Logger receives request-level logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewServer creates a Server with routes and middleware registered.
func NewServer() *Server {
	s := &Server{router: chi.NewRouter(), Logger: slog.Default()}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	// Browser clients call cross-origin; allow any origin and the auth
	// and client-info headers they send alongside the request body.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}))

	s.router.Post("/wikipedia", s.handleLookup)

	s.server = &http.Server{Handler: s.router}
	return s
}

// Open begins listening on Addr. It returns once the listener is bound;
// serving continues on a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()

	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server. Useful in tests.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP makes the server usable as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
