package server

import (
	"net/http"

	"edutrack/internal/auth"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !validateEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if err := validatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	role, ok := auth.ParseRole(req.Role)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	result, err := s.Credentials.Register(r.Context(), req.Email, req.Password, role)
	if err != nil {
		writeAuthError(w, err, "Registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateEmail(req.Email) || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	result, err := s.Credentials.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	pair, err := s.Sessions.Refresh(req.RefreshToken)
	if err != nil {
		writeAuthError(w, err, "Refresh failed")
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusForbidden, "session expired! Please sign In")
		return
	}

	details, err := s.Credentials.GetUserDetails(r.Context(), identity.ID)
	if err != nil {
		writeAuthError(w, err, "Failed to load user")
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "Token is required")
		return
	}

	message, err := s.Verification.VerifyEmail(r.Context(), token)
	if err != nil {
		writeAuthError(w, err, "Failed to verify email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

type resendVerificationRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleResendVerification(w http.ResponseWriter, r *http.Request) {
	var req resendVerificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	message, err := s.Verification.ResendVerification(r.Context(), req.Email)
	if err != nil {
		writeAuthError(w, err, "Failed to send verification email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

type requestPasswordResetRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleRequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req requestPasswordResetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	message, err := s.PasswordReset.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		writeAuthError(w, err, "Failed to send password reset email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "Token is required")
		return
	}
	if err := validatePassword(req.NewPassword); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := s.PasswordReset.ResetPassword(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		writeAuthError(w, err, "Failed to reset password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
