package i18n

import (
	"strconv"
	"strings"
	"testing"

	"edutrack/internal/auth"
)

func TestVerificationEmailAdvertisesTokenTTL(t *testing.T) {
	minutes := int(auth.EmailTokenTTL.Minutes())
	content := VerificationEmail("en", "http://localhost:8080/api/v1/auth/verify-email?token=abc", minutes)

	want := strconv.Itoa(minutes) + " minutes"
	if !strings.Contains(content.Text, want) {
		t.Fatalf("text does not advertise the token lifetime %q: %q", want, content.Text)
	}
	if !strings.Contains(content.HTML, want) {
		t.Fatalf("html does not advertise the token lifetime %q: %q", want, content.HTML)
	}
	if strings.Contains(content.Text, "{link}") || strings.Contains(content.Text, "{minutes}") {
		t.Fatalf("unreplaced placeholder in text: %q", content.Text)
	}
}

func TestPasswordResetEmailAdvertisesTokenTTL(t *testing.T) {
	minutes := int(auth.ResetTokenTTL.Minutes())
	content := PasswordResetEmail("de", "http://localhost:3000/reset-password?token=abc", minutes)

	want := strconv.Itoa(minutes) + " Minuten"
	if !strings.Contains(content.Text, want) {
		t.Fatalf("text does not advertise the token lifetime %q: %q", want, content.Text)
	}
	if !strings.Contains(content.HTML, "http://localhost:3000/reset-password?token=abc") {
		t.Fatalf("html does not carry the reset link: %q", content.HTML)
	}
}
