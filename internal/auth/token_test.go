package auth

import (
	"errors"
	"testing"
	"time"
)

func assertTokenErrorKind(t *testing.T, err error, want TokenErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatalf("expected TokenError, got %T: %v", err, err)
	}
	if te.Kind != want {
		t.Fatalf("expected kind %v, got %v", want, te.Kind)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("session-secret", "email-secret", "reset-secret")

	token, err := codec.Sign("user-1", "a@x.com", RoleStudent, PurposeAccess, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := codec.Verify(token, PurposeAccess)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != RoleStudent {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.TokenUse != PurposeAccess {
		t.Fatalf("unexpected token_use: %s", claims.TokenUse)
	}
}

func TestVerifyPurposeIsolationPairwise(t *testing.T) {
	codec := NewCodec("session-secret", "email-secret", "reset-secret")
	purposes := []Purpose{PurposeAccess, PurposeRefresh, PurposeEmailVerify, PurposePasswordReset}

	for _, issued := range purposes {
		token, err := codec.Sign("user-1", "a@x.com", "", issued, time.Minute)
		if err != nil {
			t.Fatalf("sign %s: %v", issued, err)
		}
		for _, expected := range purposes {
			claims, err := codec.Verify(token, expected)
			if issued == expected {
				if err != nil {
					t.Fatalf("verify %s as %s: %v", issued, expected, err)
				}
				continue
			}
			if err == nil {
				t.Fatalf("token for %s accepted as %s (claims: %+v)", issued, expected, claims)
			}
			var te *TokenError
			if !errors.As(err, &te) {
				t.Fatalf("expected TokenError, got %T", err)
			}
			// Access and refresh share a secret, so there the purpose
			// claim check is what rejects; everywhere else the
			// signature already fails.
			sameSecret := (issued == PurposeAccess || issued == PurposeRefresh) &&
				(expected == PurposeAccess || expected == PurposeRefresh)
			if sameSecret && te.Kind != TokenWrongPurpose {
				t.Fatalf("expected wrong-purpose for %s as %s, got %v", issued, expected, te.Kind)
			}
			if !sameSecret && te.Kind != TokenSignatureInvalid {
				t.Fatalf("expected signature-invalid for %s as %s, got %v", issued, expected, te.Kind)
			}
		}
	}
}

func TestVerifyExpired(t *testing.T) {
	codec := NewCodec("session-secret", "email-secret", "reset-secret")

	token, err := codec.Sign("user-1", "a@x.com", "", PurposeEmailVerify, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = codec.Verify(token, PurposeEmailVerify)
	assertTokenErrorKind(t, err, TokenExpired)
}

func TestVerifyMalformed(t *testing.T) {
	codec := NewCodec("session-secret", "email-secret", "reset-secret")

	_, err := codec.Verify("definitely-not-a-jwt", PurposeAccess)
	assertTokenErrorKind(t, err, TokenMalformed)
}

func TestVerifyForeignSignature(t *testing.T) {
	codec := NewCodec("session-secret", "email-secret", "reset-secret")
	other := NewCodec("other-secret", "email-secret", "reset-secret")

	token, err := other.Sign("user-1", "a@x.com", "", PurposeAccess, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = codec.Verify(token, PurposeAccess)
	assertTokenErrorKind(t, err, TokenSignatureInvalid)
}
