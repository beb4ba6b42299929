package auth

import (
	"context"
	"log"
)

// PasswordResetFlow issues and redeems password-reset tokens. Tokens are
// not tracked server-side, so an issued token stays redeemable until its
// expiry; two still-valid tokens for the same user both work, last
// writer wins.
type PasswordResetFlow struct {
	store  UserStore
	hasher PasswordHasher
	codec  *Codec
	mail   MailDispatch
	links  Links
}

func NewPasswordResetFlow(store UserStore, hasher PasswordHasher, codec *Codec, mail MailDispatch, links Links) *PasswordResetFlow {
	return &PasswordResetFlow{store: store, hasher: hasher, codec: codec, mail: mail, links: links}
}

func (f *PasswordResetFlow) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := f.store.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", notFound("User not found")
	}

	token, err := f.codec.Sign(user.ID, user.Email, "", PurposePasswordReset, ResetTokenTTL)
	if err != nil {
		return "", err
	}
	if err := f.mail.SendPasswordResetLink(ctx, user.Email, f.links.PasswordReset(token)); err != nil {
		return "", err
	}

	return "Password reset email sent", nil
}

func (f *PasswordResetFlow) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	claims, err := f.codec.Verify(token, PurposePasswordReset)
	if err != nil {
		log.Printf("auth: reset token rejected: %v", err)
		return "", forbidden("Invalid or expired password reset link")
	}

	user, err := f.store.FindByID(ctx, claims.Subject)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", badRequest("User not found")
	}

	hashed, err := f.hasher.Hash(newPassword)
	if err != nil {
		return "", err
	}
	if err := f.store.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return "", err
	}

	return "Password reset successfully", nil
}
