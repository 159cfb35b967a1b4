// Package server wires stores, handlers, and middleware into an http.Handler.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/handler"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/middleware"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store"
)

type Server struct {
	eventH      *handler.EventHandler
	authH       *handler.AuthHandler
	users       store.UserStore
	sessions    store.SessionStore
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

// New builds a server over the given stores. When users and sessions are nil
// the server runs in open mode: every route is exposed without a guard, which
// is how the embedded-database binary operates.
func New(events store.EventStore, users store.UserStore, sessions store.SessionStore, secureCookie bool, logger *slog.Logger) *Server {
	s := &Server{
		eventH:      handler.NewEventHandler(events, logger.With("component", "events")),
		users:       users,
		sessions:    sessions,
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
	if users != nil && sessions != nil {
		s.authH = handler.NewAuthHandler(users, sessions, secureCookie, logger.With("component", "auth"))
	}
	return s
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.healthHandler)

	if s.authH == nil {
		s.registerEventRoutes(mux, nil)
	} else {
		mux.Handle("POST /api/login", s.loginRateLimit(http.HandlerFunc(s.authH.Login)))
		mux.HandleFunc("POST /api/logout", s.authH.Logout)

		protected := http.NewServeMux()
		s.registerEventRoutes(protected, middleware.RequireAdmin)

		requireAuth := middleware.RequireAuth(s.sessions, s.users)
		mux.Handle("/api/events", requireAuth(protected))
		mux.Handle("/api/events/", requireAuth(protected))
	}

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

// registerEventRoutes adds the event CRUD routes. deleteGuard wraps DELETE
// when role gating applies; nil leaves it open.
func (s *Server) registerEventRoutes(mux *http.ServeMux, deleteGuard func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/events", s.eventH.List)
	mux.HandleFunc("POST /api/events", s.eventH.Create)
	mux.HandleFunc("GET /api/events/{id}", s.eventH.Get)
	mux.HandleFunc("PUT /api/events/{id}", s.eventH.Update)

	del := http.Handler(http.HandlerFunc(s.eventH.Delete))
	if deleteGuard != nil {
		del = deleteGuard(del)
	}
	mux.Handle("DELETE /api/events/{id}", del)
}

func (s *Server) loginRateLimit(h http.Handler) http.Handler {
	return middleware.RateLimit(s.rateLimiter, middleware.RealIP, 10, time.Minute)(h)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
