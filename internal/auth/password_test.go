package auth

import "testing"

func TestPassword(t *testing.T) {
	t.Run("Hash And Verify", func(t *testing.T) {
		hash, err := HashPassword("hunter2")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if hash == "hunter2" {
			t.Error("hash must not equal the plaintext")
		}
		if !CheckPassword(hash, "hunter2") {
			t.Error("expected correct password to verify")
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		hash, err := HashPassword("hunter2")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if CheckPassword(hash, "hunter3") {
			t.Error("expected wrong password to fail")
		}
	})

	t.Run("Empty Password", func(t *testing.T) {
		if _, err := HashPassword(""); err == nil {
			t.Error("expected error for empty password")
		}
	})
}
