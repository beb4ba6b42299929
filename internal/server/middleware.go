package server

import (
	"context"
	"log"
	"net/http"
	"strings"

	"edutrack/internal/auth"
	"edutrack/internal/i18n"
)

type ctxKey string

const identityContextKey ctxKey = "identity"

// Identity is the decoded caller attached to the request context after
// the bearer token checks out.
type Identity struct {
	ID    string
	Email string
	Role  auth.Role
}

// requireAuth gates identity-bearing endpoints. A missing, blank or
// invalid bearer token gets the same denial; the underlying token error
// kind is only logged.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusForbidden, "session expired! Please sign In")
			return
		}

		claims, err := s.Sessions.VerifyAccess(token)
		if err != nil {
			log.Printf("auth: access token rejected: %v", err)
			writeError(w, http.StatusForbidden, "session expired! Please sign In")
			return
		}

		identity := &Identity{ID: claims.Subject, Email: claims.Email, Role: claims.Role}
		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFromContext(ctx context.Context) *Identity {
	if val, ok := ctx.Value(identityContextKey).(*Identity); ok {
		return val
	}
	return nil
}

func bearerToken(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// requestLocale stores the negotiated locale so the mailer can render
// outbound emails without access to the request.
func requestLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := i18n.WithLocale(r.Context(), i18n.LocaleFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
