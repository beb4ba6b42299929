package auth

// SessionIssuer mints and refreshes the access/refresh pair. Both tokens
// carry the same {sub, email, role} payload and differ only in purpose
// and ttl.
type SessionIssuer struct {
	codec *Codec
}

func NewSessionIssuer(codec *Codec) *SessionIssuer {
	return &SessionIssuer{codec: codec}
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (s *SessionIssuer) Issue(userID, email string, role Role) (TokenPair, error) {
	access, err := s.codec.Sign(userID, email, role, PurposeAccess, AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.codec.Sign(userID, email, role, PurposeRefresh, RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh re-issues a fresh pair from a valid refresh token. An access
// token presented here is rejected: the token_use claim must say refresh.
func (s *SessionIssuer) Refresh(token string) (TokenPair, error) {
	claims, err := s.codec.Verify(token, PurposeRefresh)
	if err != nil {
		return TokenPair{}, forbidden("Invalid or expired refresh token")
	}
	return s.Issue(claims.Subject, claims.Email, claims.Role)
}

// VerifyAccess is the verification path the authorization gate uses.
// The raw TokenError is returned so the gate can log the kind before
// collapsing the failure to a uniform denial.
func (s *SessionIssuer) VerifyAccess(token string) (*Claims, error) {
	return s.codec.Verify(token, PurposeAccess)
}
