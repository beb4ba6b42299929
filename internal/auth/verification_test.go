package auth

import (
	"context"
	"testing"
	"time"
)

func TestVerifyEmailFlipsStateOnce(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	registered, err := env.credentials.Register(ctx, "a@x.com", "password1", RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token := tokenFromLink(t, env.mail.lastVerificationLink(t))

	message, err := env.verify.VerifyEmail(ctx, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if message != "Email verified successfully" {
		t.Fatalf("unexpected message: %q", message)
	}

	user, _ := env.store.FindByID(ctx, registered.User.ID)
	if !user.IsEmailVerified || user.EmailVerifiedAt == nil {
		t.Fatal("user not marked verified")
	}
	verifiedAt := *user.EmailVerifiedAt

	// Redeeming the same token again is a success without mutation.
	message, err = env.verify.VerifyEmail(ctx, token)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if message != "Email already verified" {
		t.Fatalf("unexpected message: %q", message)
	}

	user, _ = env.store.FindByID(ctx, registered.User.ID)
	if !user.EmailVerifiedAt.Equal(verifiedAt) {
		t.Fatal("emailVerifiedAt changed on idempotent redemption")
	}
}

func TestVerifyEmailIdempotentWithSecondToken(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	registered, err := env.credentials.Register(ctx, "a@x.com", "password1", RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	first := tokenFromLink(t, env.mail.lastVerificationLink(t))

	if _, err := env.verify.ResendVerification(ctx, "a@x.com"); err != nil {
		t.Fatalf("resend: %v", err)
	}
	second := tokenFromLink(t, env.mail.lastVerificationLink(t))

	if _, err := env.verify.VerifyEmail(ctx, first); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	user, _ := env.store.FindByID(ctx, registered.User.ID)
	verifiedAt := *user.EmailVerifiedAt

	message, err := env.verify.VerifyEmail(ctx, second)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if message != "Email already verified" {
		t.Fatalf("unexpected message: %q", message)
	}
	user, _ = env.store.FindByID(ctx, registered.User.ID)
	if !user.EmailVerifiedAt.Equal(verifiedAt) {
		t.Fatal("emailVerifiedAt changed after the first mutation")
	}
}

func TestVerifyEmailRejectsResetToken(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	registered, err := env.credentials.Register(ctx, "a@x.com", "password1", RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resetToken, err := env.codec.Sign(registered.User.ID, "a@x.com", "", PurposePasswordReset, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = env.verify.VerifyEmail(ctx, resetToken)
	assertErrorKind(t, err, KindForbidden)
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	registered, err := env.credentials.Register(ctx, "a@x.com", "password1", RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	expired, err := env.codec.Sign(registered.User.ID, "a@x.com", "", PurposeEmailVerify, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = env.verify.VerifyEmail(ctx, expired)
	assertErrorKind(t, err, KindForbidden)
}

func TestVerifyEmailUnknownUser(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// A well-signed token whose subject no longer resolves gets the
	// same uniform denial as a bad token.
	token, err := env.codec.Sign("ghost-id", "ghost@x.com", "", PurposeEmailVerify, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = env.verify.VerifyEmail(ctx, token)
	assertErrorKind(t, err, KindForbidden)
	if msg := err.Error(); msg != "Invalid or expired verification link" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestResendVerification(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.verify.ResendVerification(ctx, "nobody@x.com")
	assertErrorKind(t, err, KindNotFound)

	registered, err := env.credentials.Register(ctx, "a@x.com", "password1", RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	sentAfterRegister := len(env.mail.verificationLinks)

	message, err := env.verify.ResendVerification(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("resend: %v", err)
	}
	if message != "Verification email resent successfully" {
		t.Fatalf("unexpected message: %q", message)
	}
	if len(env.mail.verificationLinks) != sentAfterRegister+1 {
		t.Fatal("expected a fresh verification mail")
	}

	if err := env.store.MarkEmailVerified(ctx, registered.User.ID); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	message, err = env.verify.ResendVerification(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("resend after verify: %v", err)
	}
	if message != "Email already verified" {
		t.Fatalf("unexpected message: %q", message)
	}
	if len(env.mail.verificationLinks) != sentAfterRegister+1 {
		t.Fatal("verified user must not get another verification mail")
	}
}
