package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"edutrack/internal/auth"
	"edutrack/internal/config"
)

type Server struct {
	Credentials   *auth.CredentialManager
	Verification  *auth.VerificationFlow
	PasswordReset *auth.PasswordResetFlow
	Sessions      *auth.SessionIssuer
	Config        config.Config
}

func NewServer(cfg config.Config, credentials *auth.CredentialManager, verification *auth.VerificationFlow, passwordReset *auth.PasswordResetFlow, sessions *auth.SessionIssuer) *Server {
	return &Server{
		Credentials:   credentials,
		Verification:  verification,
		PasswordReset: passwordReset,
		Sessions:      sessions,
		Config:        cfg,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	formatter := &middleware.DefaultLogFormatter{
		Logger:  log.New(log.Writer(), "", log.Flags()),
		NoColor: true,
	}
	r.Use(middleware.RequestLogger(formatter))
	r.Use(middleware.Recoverer)
	r.Use(secureHeaders)
	r.Use(requestLocale)

	r.Route("/api/v1/auth", func(ar chi.Router) {
		ar.Post("/register", s.handleRegister)
		ar.Post("/login", s.handleLogin)
		ar.Post("/refresh", s.handleRefresh)
		ar.Get("/verify-email", s.handleVerifyEmail)
		ar.Post("/resend-verification", s.handleResendVerification)
		ar.Post("/request-password-reset", s.handleRequestPasswordReset)
		ar.Post("/reset-password", s.handleResetPassword)

		ar.Group(func(pr chi.Router) {
			pr.Use(s.requireAuth)
			pr.Get("/details", s.handleDetails)
		})
	})

	return r
}
