package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"

	"edutrack/internal/auth"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func validateEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

// writeAuthError maps the auth error taxonomy onto HTTP statuses. Errors
// outside the taxonomy are collaborator failures and surface as 500.
func writeAuthError(w http.ResponseWriter, err error, fallback string) {
	var ae *auth.Error
	if errors.As(err, &ae) {
		writeError(w, statusForKind(ae.Kind), ae.Message)
		return
	}
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, fallback)
}

func statusForKind(kind auth.Kind) int {
	switch kind {
	case auth.KindConflict:
		return http.StatusConflict
	case auth.KindNotFound:
		return http.StatusNotFound
	case auth.KindForbidden:
		return http.StatusForbidden
	case auth.KindBadRequest:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
