package auth

import "testing"

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := &BcryptHasher{Cost: 4}

	hash, err := hasher.Hash("password1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password1" {
		t.Fatal("hash equals plaintext")
	}

	if !hasher.Compare(hash, "password1") {
		t.Fatal("expected matching password to compare true")
	}
	if hasher.Compare(hash, "password2") {
		t.Fatal("expected wrong password to compare false")
	}
	if hasher.Compare("", "password1") {
		t.Fatal("expected empty hash to compare false")
	}
}
