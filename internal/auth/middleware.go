// ABOUTME: HTTP middleware gating protected routes on a bearer token
// ABOUTME: Distinguishes a missing token (401) from a failed verification (403)

package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// extractBearerToken pulls the token out of an Authorization header of the
// form "<scheme> <token>". The scheme text is not inspected; only the second
// space-separated segment is used.
func extractBearerToken(authHeader string) string {
	parts := strings.Fields(authHeader)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// RequireToken creates an HTTP middleware that admits a request only when it
// carries a verifiable bearer token. A request with no Authorization header is
// rejected with 401; a request whose header cannot be parsed or whose token
// fails verification is rejected with 403. On success the verified claims are
// attached to the request context and the handler runs exactly once.
func RequireToken(issuer *Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized: Access token missing")
				return
			}

			token := extractBearerToken(authHeader)
			claims, err := issuer.Verify(token)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Error in token authentication")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
