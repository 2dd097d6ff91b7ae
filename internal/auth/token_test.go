// ABOUTME: Unit tests for JWT token issuance and verification
// ABOUTME: Tests valid tokens, invalid tokens, expiry boundaries, and claim round trips

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret-key-for-jwt-signing")

func TestIssuer_ValidToken(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	token, err := issuer.Issue("admin-123", "A", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.AdminID() != "admin-123" {
		t.Errorf("AdminID() = %q, want %q", claims.AdminID(), "admin-123")
	}
	if claims.Name != "A" {
		t.Errorf("Name = %q, want %q", claims.Name, "A")
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "a@x.com")
	}
}

func TestIssuer_EmbedsConfiguredExpiry(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	before := time.Now()
	token, err := issuer.Issue("admin-123", "A", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	after := time.Now()

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	exp := claims.ExpiresAt.Time
	// exp is truncated to whole seconds by the JWT numeric date encoding
	if exp.Before(before.Add(time.Hour - 2*time.Second)) || exp.After(after.Add(time.Hour + 2*time.Second)) {
		t.Errorf("expiry %v is not roughly one hour out from issuance", exp)
	}
}

func TestIssuer_InvalidToken(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "garbage token",
			token: "not-a-jwt-token",
		},
		{
			name:  "malformed JWT",
			token: "header.payload.signature",
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewIssuer([]byte("different-secret"), time.Hour)
				token, _ := other.Issue("admin-123", "A", "a@x.com")
				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token)
			if err == nil {
				t.Fatal("Verify() should have returned an error")
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want wrapped ErrInvalidToken", err)
			}
		})
	}
}

func TestIssuer_ExpiredToken(t *testing.T) {
	// A token whose window ended an hour and a second ago
	issuer := NewIssuer(testSecret, -(time.Hour + time.Second))

	token, err := issuer.Issue("admin-123", "A", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = issuer.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestIssuer_RejectsAtExactExpiry(t *testing.T) {
	// Zero TTL puts the expiry at issuance time; the validity window is
	// half-open, so a token presented at exactly T+TTL must be rejected.
	issuer := NewIssuer(testSecret, 0)

	token, err := issuer.Issue("admin-123", "A", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = issuer.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestIssuer_RejectsMissingSubject(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	token, err := issuer.Issue("", "A", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = issuer.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestIssuer_RejectsUnsignedToken(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "admin-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing unsigned token: %v", err)
	}

	_, err = issuer.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}
