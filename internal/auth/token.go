package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Purpose declares which operation a token was issued for. Every verifier
// is parameterized by the purpose it expects; a token minted for one
// purpose is cryptographically inert for any other because each purpose
// resolves to its own signing secret, and the embedded token_use claim is
// checked on top of that.
type Purpose string

const (
	PurposeAccess        Purpose = "access"
	PurposeRefresh       Purpose = "refresh"
	PurposeEmailVerify   Purpose = "email_verify"
	PurposePasswordReset Purpose = "password_reset"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
	EmailTokenTTL   = 15 * time.Minute
	ResetTokenTTL   = 15 * time.Minute
)

type Claims struct {
	Email    string  `json:"email"`
	Role     Role    `json:"role,omitempty"`
	TokenUse Purpose `json:"token_use"`
	jwt.RegisteredClaims
}

// TokenErrorKind distinguishes why verification failed. Callers collapse
// all kinds to a uniform denial before the failure leaves this package,
// but the distinction is kept for logging and tests.
type TokenErrorKind int

const (
	TokenExpired TokenErrorKind = iota + 1
	TokenMalformed
	TokenSignatureInvalid
	TokenWrongPurpose
)

func (k TokenErrorKind) String() string {
	switch k {
	case TokenExpired:
		return "expired"
	case TokenMalformed:
		return "malformed"
	case TokenSignatureInvalid:
		return "signature invalid"
	case TokenWrongPurpose:
		return "wrong purpose"
	}
	return "unknown"
}

type TokenError struct {
	Kind  TokenErrorKind
	cause error
}

func (e *TokenError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("token %s: %v", e.Kind, e.cause)
	}
	return "token " + e.Kind.String()
}

func (e *TokenError) Unwrap() error { return e.cause }

// Codec signs and verifies compact HS256 tokens keyed by purpose. The
// access and refresh purposes share the session secret; email
// verification and password reset each get their own.
type Codec struct {
	secrets map[Purpose][]byte
}

func NewCodec(sessionSecret, emailSecret, resetSecret string) *Codec {
	return &Codec{secrets: map[Purpose][]byte{
		PurposeAccess:        []byte(sessionSecret),
		PurposeRefresh:       []byte(sessionSecret),
		PurposeEmailVerify:   []byte(emailSecret),
		PurposePasswordReset: []byte(resetSecret),
	}}
}

func (c *Codec) Sign(userID, email string, role Role, purpose Purpose, ttl time.Duration) (string, error) {
	secret, ok := c.secrets[purpose]
	if !ok {
		return "", fmt.Errorf("no secret configured for purpose %q", purpose)
	}

	now := time.Now()
	claims := Claims{
		Email:    email,
		Role:     role,
		TokenUse: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify checks signature and expiry under the secret for the expected
// purpose and then requires the embedded token_use claim to match it.
func (c *Codec) Verify(token string, expected Purpose) (*Claims, error) {
	secret, ok := c.secrets[expected]
	if !ok {
		return nil, fmt.Errorf("no secret configured for purpose %q", expected)
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, &TokenError{Kind: tokenErrorKind(err), cause: err}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, &TokenError{Kind: TokenMalformed}
	}
	if claims.TokenUse != expected {
		return nil, &TokenError{Kind: TokenWrongPurpose}
	}

	return claims, nil
}

func tokenErrorKind(err error) TokenErrorKind {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return TokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return TokenSignatureInvalid
	default:
		return TokenMalformed
	}
}
