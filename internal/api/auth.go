// ABOUTME: Signup and login handlers for admin accounts
// ABOUTME: Hashes passwords on signup and answers successful logins with a JWT

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mkkmani/my-portfolio-backend/internal/auth"
	"github.com/mkkmani/my-portfolio-backend/internal/store"
)

// SignupRequest is the JSON request body for POST /admin/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON request body for POST /admin/login.
// Username may be either the account's mobile number or its email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the JSON response for a successful login.
type LoginResponse struct {
	JWTToken string `json:"jwtToken"`
}

// handleSignup handles POST /admin/signup requests.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Name == "" || req.Mobile == "" || req.Email == "" || req.Password == "" {
		s.sendJSONError(w, http.StatusBadRequest, "name, mobile, email and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	admin := &store.AdminAccount{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Mobile:       req.Mobile,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateAdmin(r.Context(), admin); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			s.sendJSONError(w, http.StatusConflict, "Account already exists")
			return
		}
		s.logger.Error("failed to create admin", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.sendJSON(w, http.StatusCreated, map[string]string{"message": "Admin created successfully"})
}

// handleLogin handles POST /admin/login requests.
// Exactly one of {user not found, invalid password, token} is returned per call.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" {
		s.sendJSONError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	admin, err := s.store.GetAdminByContact(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			// Burn a hash comparison so unknown and known usernames take
			// the same time to answer
			auth.VerifyDummy(req.Password)
			s.sendJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error("failed to look up admin", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !auth.VerifyPassword(req.Password, admin.PasswordHash) {
		s.sendJSONError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := s.issuer.Issue(admin.ID, admin.Name, admin.Email)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.logger.Info("admin login successful", "id", admin.ID)
	s.sendJSON(w, http.StatusOK, LoginResponse{JWTToken: token})
}
