package i18n

import (
	"strconv"
	"strings"
)

type EmailContent struct {
	Subject string
	Text    string
	HTML    string
}

type emailStrings struct {
	VerificationSubject string
	VerificationText    string
	VerificationHTML    string

	PasswordResetSubject string
	PasswordResetText    string
	PasswordResetHTML    string
}

var emailTranslations = map[string]emailStrings{
	"en": {
		VerificationSubject: "Confirm your email address",
		VerificationText:    "Confirm your email address: {link}\nThe link expires in {minutes} minutes.\nIf you did not create an account, ignore this email.",
		VerificationHTML: "<p>Confirm your email address</p>" +
			"<p>Click the button below to verify your email address.</p>" +
			"<p><a href=\"{link}\">Verify email</a></p>" +
			"<p>The link expires in {minutes} minutes.</p>" +
			"<p>If you did not create an account, ignore this email.</p>",

		PasswordResetSubject: "Reset your password",
		PasswordResetText:    "Reset your password: {link}\nThe link expires in {minutes} minutes.\nIf you did not request this, ignore this email.",
		PasswordResetHTML: "<p>Password reset</p>" +
			"<p>Click the button to reset your password.</p>" +
			"<p><a href=\"{link}\">Reset password</a></p>" +
			"<p>The link expires in {minutes} minutes.</p>" +
			"<p>If you did not request this, ignore this email.</p>",
	},
	"de": {
		VerificationSubject: "E-Mail-Adresse bestätigen",
		VerificationText:    "Bestätigen Sie Ihre E-Mail-Adresse: {link}\nDer Link ist {minutes} Minuten gültig.\nWenn Sie kein Konto erstellt haben, ignorieren Sie diese E-Mail.",
		VerificationHTML: "<p>E-Mail-Adresse bestätigen</p>" +
			"<p>Klicken Sie auf den Button, um Ihre E-Mail-Adresse zu verifizieren.</p>" +
			"<p><a href=\"{link}\">E-Mail verifizieren</a></p>" +
			"<p>Der Link ist {minutes} Minuten gültig.</p>" +
			"<p>Wenn Sie kein Konto erstellt haben, ignorieren Sie diese E-Mail.</p>",

		PasswordResetSubject: "Passwort zurücksetzen",
		PasswordResetText:    "Setzen Sie Ihr Passwort zurück: {link}\nDer Link ist {minutes} Minuten gültig.\nWenn Sie dies nicht angefordert haben, ignorieren Sie diese E-Mail.",
		PasswordResetHTML: "<p>Passwort zurücksetzen</p>" +
			"<p>Klicken Sie auf den Button, um Ihr Passwort zurückzusetzen.</p>" +
			"<p><a href=\"{link}\">Passwort zurücksetzen</a></p>" +
			"<p>Der Link ist {minutes} Minuten gültig.</p>" +
			"<p>Wenn Sie dies nicht angefordert haben, ignorieren Sie diese E-Mail.</p>",
	},
}

func emailStringsForLocale(locale string) emailStrings {
	key := NormalizeLocale(locale)
	if val, ok := emailTranslations[key]; ok {
		return val
	}
	return emailTranslations[DefaultLocale]
}

func renderTemplate(tmpl string, values map[string]string) string {
	if tmpl == "" || len(values) == 0 {
		return tmpl
	}

	replacements := make([]string, 0, len(values)*2)
	for key, value := range values {
		replacements = append(replacements, "{"+key+"}", value)
	}
	return strings.NewReplacer(replacements...).Replace(tmpl)
}

func VerificationEmail(locale, link string, minutes int) EmailContent {
	templates := emailStringsForLocale(locale)
	values := map[string]string{
		"link":    link,
		"minutes": strconv.Itoa(minutes),
	}
	return EmailContent{
		Subject: templates.VerificationSubject,
		Text:    renderTemplate(templates.VerificationText, values),
		HTML:    renderTemplate(templates.VerificationHTML, values),
	}
}

func PasswordResetEmail(locale, link string, minutes int) EmailContent {
	templates := emailStringsForLocale(locale)
	values := map[string]string{
		"link":    link,
		"minutes": strconv.Itoa(minutes),
	}
	return EmailContent{
		Subject: templates.PasswordResetSubject,
		Text:    renderTemplate(templates.PasswordResetText, values),
		HTML:    renderTemplate(templates.PasswordResetHTML, values),
	}
}
