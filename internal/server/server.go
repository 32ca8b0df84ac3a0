package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gigbook/gigbook-be/internal/auth"
	"github.com/gigbook/gigbook-be/internal/booking"
	"github.com/gigbook/gigbook-be/internal/config"
	"github.com/gigbook/gigbook-be/internal/http/handlers"
	"github.com/gigbook/gigbook-be/internal/middleware"
	"github.com/gigbook/gigbook-be/internal/notify"
	"github.com/gigbook/gigbook-be/internal/relationship"
	"github.com/gigbook/gigbook-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, notifier notify.Notifier) *Server {
	mux := http.NewServeMux()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	workflow := booking.NewService(store, notifier)
	oracle := relationship.NewOracle(store)

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(store, tokens).Register(mux)
	handlers.NewApplicationsHandler(workflow, tokens).Register(mux)
	handlers.NewAdminHandler(workflow, tokens).Register(mux)
	handlers.NewTalentsHandler(oracle, store, tokens).Register(mux)

	guarded := middleware.RouteGuard(tokens, store, mux)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(guarded))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
