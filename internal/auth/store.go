package auth

import (
	"context"
	"net/url"
)

// UserStore is the persistence collaborator. Lookups return (nil, nil)
// when no row matches. Updates to the verification pair and to the
// password hash must be single-row atomic.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string, role Role) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	MarkEmailVerified(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	FindProfile(ctx context.Context, userID string) (*Profile, error)
}

// MailDispatch is the outbound mail collaborator. Rendering and delivery
// are out of scope here; the flows only hand over an address and a link.
type MailDispatch interface {
	SendVerificationLink(ctx context.Context, to, link string) error
	SendPasswordResetLink(ctx context.Context, to, link string) error
}

// Links builds the URLs embedded in outbound emails. Verification links
// point back at the API, reset links at the front-end reset page.
type Links struct {
	APIBaseURL  string
	FrontendURL string
}

func (l Links) VerifyEmail(token string) string {
	return l.APIBaseURL + "/api/v1/auth/verify-email?token=" + url.QueryEscape(token)
}

func (l Links) PasswordReset(token string) string {
	return l.FrontendURL + "/reset-password?token=" + url.QueryEscape(token)
}
