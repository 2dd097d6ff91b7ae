// Package auth provides authentication for the portfolio backend.
//
// # Password Hashing
//
// Admin passwords are hashed with bcrypt (cost 10) before storage:
//
//	hash, err := auth.HashPassword(password)
//	ok := auth.VerifyPassword(password, hash)
//
// VerifyPassword never returns an error: a malformed stored hash behaves
// exactly like a wrong password.
//
// # Tokens
//
// Successful logins are answered with an HS256-signed JWT carrying the admin's
// ID, name, and email. Tokens expire one hour after issuance by default
// (configurable via auth.token_ttl).
//
//	issuer := auth.NewIssuer(secret, time.Hour)
//	token, err := issuer.Issue(adminID, name, email)
//	claims, err := issuer.Verify(token)
//
// Verification is stateless: the gate authorizes a request from the signature
// and expiry alone, with no store round trip. The accepted trade-off is that
// there is no server-side revocation; an issued token stays valid until it
// expires. If revocation is ever needed, add a denylist keyed by token ID and
// consult it in RequireToken.
//
// # Request Gate
//
// RequireToken wraps protected handlers. Each request is authenticated
// independently; no session state persists between requests.
//
//	mux.Handle("POST /project", auth.RequireToken(issuer)(handler))
//
// A request with no Authorization header gets 401; a present but unverifiable
// token gets 403. On success the decoded claims are attached to the request
// context and are retrievable downstream with FromContext.
package auth
