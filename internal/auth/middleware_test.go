// ABOUTME: Tests for the bearer-token HTTP middleware
// ABOUTME: Covers missing header (401), bad token (403), and claims propagation

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequireToken_ValidToken(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	token, err := issuer.Issue("admin-123", "A", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	calls := 0
	var gotClaims *Claims
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotClaims = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/project", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	RequireToken(issuer)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want exactly once", calls)
	}
	if gotClaims == nil {
		t.Fatal("expected claims in request context")
	}
	if gotClaims.AdminID() != "admin-123" {
		t.Errorf("AdminID() = %q, want %q", gotClaims.AdminID(), "admin-123")
	}
}

func TestRequireToken_SchemeTextIgnored(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	token, _ := issuer.Issue("admin-123", "A", "a@x.com")

	// Only the second space-separated segment is used as the token.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/project", nil)
	req.Header.Set("Authorization", "Token "+token)
	rec := httptest.NewRecorder()

	RequireToken(issuer)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 regardless of scheme text", rec.Code)
	}
}

func TestRequireToken_MissingHeader(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/project", nil)
	rec := httptest.NewRecorder()

	RequireToken(issuer)(handler).ServeHTTP(rec, req)

	// Missing header is always the 401 signal, never the 403 one
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	assertErrorBody(t, rec, "Unauthorized: Access token missing")
}

func TestRequireToken_BadToken(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	wrongSigned, _ := NewIssuer([]byte("different-secret"), time.Hour).Issue("admin-123", "A", "a@x.com")
	expired, _ := NewIssuer(testSecret, -time.Minute).Issue("admin-123", "A", "a@x.com")

	tests := []struct {
		name   string
		header string
	}{
		{name: "header with no token segment", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "wrongly signed token", header: "Bearer " + wrongSigned},
		{name: "expired token", header: "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not be called")
			})

			req := httptest.NewRequest(http.MethodPost, "/project", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			RequireToken(issuer)(handler).ServeHTTP(rec, req)

			if rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403", rec.Code)
			}
			assertErrorBody(t, rec, "Error in token authentication")
		})
	}
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body["error"] != want {
		t.Errorf("error = %q, want %q", body["error"], want)
	}
	if len(body) != 1 {
		t.Errorf("error body has extra fields: %v", body)
	}
}
