package auth

import (
	"context"
	"log"
)

// CredentialManager handles registration, login and the details lookup.
type CredentialManager struct {
	store    UserStore
	hasher   PasswordHasher
	codec    *Codec
	sessions *SessionIssuer
	mail     MailDispatch
	links    Links
}

func NewCredentialManager(store UserStore, hasher PasswordHasher, codec *Codec, sessions *SessionIssuer, mail MailDispatch, links Links) *CredentialManager {
	return &CredentialManager{
		store:    store,
		hasher:   hasher,
		codec:    codec,
		sessions: sessions,
		mail:     mail,
		links:    links,
	}
}

// AuthResult is the success shape of register and login.
type AuthResult struct {
	User         Summary `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
}

// UserDetails is the success shape of the details lookup.
type UserDetails struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Role    Role     `json:"role"`
	Profile *Profile `json:"profile"`
}

// Register creates an unverified user, mails a verification link and
// immediately issues a session pair. Verification is advisory, not a
// login gate.
func (m *CredentialManager) Register(ctx context.Context, email, password string, role Role) (*AuthResult, error) {
	existing, err := m.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflict("User with this email already exists")
	}

	hashed, err := m.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := m.store.Create(ctx, email, hashed, role)
	if err != nil {
		return nil, err
	}

	emailToken, err := m.codec.Sign(user.ID, user.Email, "", PurposeEmailVerify, EmailTokenTTL)
	if err != nil {
		return nil, err
	}
	if err := m.mail.SendVerificationLink(ctx, user.Email, m.links.VerifyEmail(emailToken)); err != nil {
		return nil, err
	}

	pair, err := m.sessions.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	log.Printf("auth: registered user %s", user.ID)
	return &AuthResult{User: user.Summary(), AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// Login checks the credential pair and issues a session pair. A wrong
// password and an unknown email both map to NotFound.
func (m *CredentialManager) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := m.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("No User with email exists")
	}

	if !m.hasher.Compare(user.PasswordHash, password) {
		return nil, notFound("Invalid credentials, Review and try again")
	}

	pair, err := m.sessions.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user.Summary(), AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (m *CredentialManager) GetUserDetails(ctx context.Context, userID string) (*UserDetails, error) {
	user, err := m.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	profile, err := m.store.FindProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &UserDetails{ID: user.ID, Email: user.Email, Role: user.Role, Profile: profile}, nil
}
