// ABOUTME: HTTP server wiring for the portfolio API
// ABOUTME: Routes public and token-gated endpoints and applies CORS

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mkkmani/my-portfolio-backend/internal/auth"
	"github.com/mkkmani/my-portfolio-backend/internal/store"
)

// Server holds the dependencies of the HTTP API handlers.
type Server struct {
	store  store.Store
	issuer *auth.Issuer
	logger *slog.Logger
}

// New creates an API server over the given store and token issuer.
func New(st store.Store, issuer *auth.Issuer) *Server {
	return &Server{
		store:  st,
		issuer: issuer,
		logger: slog.Default().With("component", "api"),
	}
}

// Routes returns the HTTP handler for the complete API surface.
// Project mutation routes are gated on a bearer token; signup, login, and the
// public listing are open. CORS is applied to every route.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Health endpoint - no auth required
	mux.HandleFunc("/health", s.handleHealth)

	// Public endpoints
	mux.HandleFunc("/admin/signup", s.handleSignup)
	mux.HandleFunc("/admin/login", s.handleLogin)
	mux.HandleFunc("/projects", s.handleListProjects)

	// Protected endpoints
	gate := auth.RequireToken(s.issuer)
	mux.Handle("/project", gate(http.HandlerFunc(s.handleProject)))

	return corsMiddleware(mux)
}

// handleHealth returns 200 OK while the database connection is alive.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// corsMiddleware allows cross-origin requests from any origin, matching the
// open CORS policy of the public portfolio frontend.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendJSON writes a JSON response with the given status.
func (s *Server) sendJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// sendJSONError writes a JSON error response.
func (s *Server) sendJSONError(w http.ResponseWriter, status int, message string) {
	s.sendJSON(w, status, map[string]string{"error": message})
}
