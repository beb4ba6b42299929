package email

import (
	"context"

	"edutrack/internal/auth"
	"edutrack/internal/i18n"
)

// Mailer renders the identity emails in the caller's locale and hands
// them to the SMTP sender. It is the MailDispatch collaborator the auth
// flows depend on.
type Mailer struct {
	sender *Sender
}

var _ auth.MailDispatch = (*Mailer)(nil)

func NewMailer(sender *Sender) *Mailer {
	return &Mailer{sender: sender}
}

func (m *Mailer) SendVerificationLink(ctx context.Context, to, link string) error {
	content := i18n.VerificationEmail(i18n.LocaleFromContext(ctx), link, int(auth.EmailTokenTTL.Minutes()))
	return m.sender.Send(ctx, to, content.Subject, content.Text, content.HTML)
}

func (m *Mailer) SendPasswordResetLink(ctx context.Context, to, link string) error {
	content := i18n.PasswordResetEmail(i18n.LocaleFromContext(ctx), link, int(auth.ResetTokenTTL.Minutes()))
	return m.sender.Send(ctx, to, content.Subject, content.Text, content.HTML)
}
