package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	BaseURL     string
	FrontendURL string
	DatabaseURL string
	LogFile     string

	JWTSecret              string
	JWTEmailSecret         string
	JWTPasswordResetSecret string

	Email EmailConfig
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Secure   bool
}

func (e EmailConfig) Enabled() bool {
	return e.Host != "" && e.Port != 0 && e.From != ""
}

func Load() (Config, error) {
	clean := func(val string) string {
		return strings.Trim(val, "\"' \t\r\n")
	}

	rawPort := strings.Trim(getenvDefault("EMAIL_SERVER_PORT", "587"), "\"' ")
	emailPort, err := strconv.Atoi(rawPort)
	if err != nil {
		emailPort = 587
	}

	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		BaseURL:                getenvDefault("API_BASE_URL", "http://localhost:8080"),
		FrontendURL:            getenvDefault("FRONTEND_URL", "http://localhost:3000"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		LogFile:                getenvDefault("LOG_FILE", "logs/server.log"),
		JWTSecret:              clean(os.Getenv("JWT_SECRET")),
		JWTEmailSecret:         clean(os.Getenv("JWT_EMAIL_SECRET")),
		JWTPasswordResetSecret: clean(os.Getenv("JWT_PASSWORD_RESET_SECRET")),
	}

	cfg.Email = EmailConfig{
		Host:     clean(os.Getenv("EMAIL_SERVER_HOST")),
		Port:     emailPort,
		Username: clean(os.Getenv("EMAIL_SERVER_USER")),
		Password: clean(os.Getenv("EMAIL_SERVER_PASSWORD")),
		From:     clean(os.Getenv("EMAIL_FROM")),
		Secure:   parseBool(os.Getenv("EMAIL_SERVER_SECURE")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.JWTEmailSecret == "" {
		return Config{}, fmt.Errorf("JWT_EMAIL_SECRET is required")
	}
	if cfg.JWTPasswordResetSecret == "" {
		return Config{}, fmt.Errorf("JWT_PASSWORD_RESET_SECRET is required")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func parseBool(val string) bool {
	if val == "" {
		return false
	}
	val = strings.ToLower(strings.Trim(val, "\"' "))
	return val == "1" || val == "true" || val == "yes"
}
