package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"edutrack/internal/auth"
	"edutrack/internal/config"
	"edutrack/internal/database"
	"edutrack/internal/email"
	"edutrack/internal/logging"
	"edutrack/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logOutput := io.Writer(os.Stdout)
	if cfg.LogFile != "" {
		fileWriter, err := logging.NewRotatingFileWriter(cfg.LogFile, 20<<20, 3)
		if err != nil {
			log.Fatalf("log setup error: %v", err)
		}
		defer fileWriter.Close()
		logOutput = io.MultiWriter(os.Stdout, fileWriter)
	}
	log.SetOutput(logOutput)
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lshortfile)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Close()

	users := auth.NewUserRepository(db)
	hasher := auth.NewBcryptHasher()
	codec := auth.NewCodec(cfg.JWTSecret, cfg.JWTEmailSecret, cfg.JWTPasswordResetSecret)
	sessions := auth.NewSessionIssuer(codec)
	mailer := email.NewMailer(email.NewSender(cfg.Email))
	links := auth.Links{APIBaseURL: cfg.BaseURL, FrontendURL: cfg.FrontendURL}

	credentials := auth.NewCredentialManager(users, hasher, codec, sessions, mailer, links)
	verification := auth.NewVerificationFlow(users, codec, mailer, links)
	passwordReset := auth.NewPasswordResetFlow(users, hasher, codec, mailer, links)

	api := server.NewServer(cfg, credentials, verification, passwordReset, sessions)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
