package utils

import "testing"

func TestHashPassword_CheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plain password")
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("expected matching password to be accepted")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to be rejected")
	}
	if CheckPassword("not-a-bcrypt-hash", "s3cret-pass") {
		t.Error("expected malformed hash to be rejected")
	}
}
