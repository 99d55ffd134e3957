package password_test

import (
	"errors"
	"resort/shared/password"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectError   bool
		expectedError error
	}{
		{
			name:        "valid password",
			password:    "validPassword123",
			expectError: false,
		},
		{
			name:          "empty password",
			password:      "",
			expectError:   true,
			expectedError: password.ErrEmptyPassword,
		},
		{
			name:          "password longer than 72 bytes",
			password:      strings.Repeat("a", 100),
			expectError:   true,
			expectedError: password.ErrHashingPassword,
		},
		{
			name:        "password with special characters",
			password:    "P@ssw0rd!#$%^&*()",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") && !strings.HasPrefix(hash, "$2y$") {
				t.Errorf("expected bcrypt hash format, got %s", hash)
			}

			if err := password.Verify(tt.password, hash); err != nil {
				t.Errorf("expected verification to succeed, got error: %v", err)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	testPassword := "testPassword123"
	validHash, err := password.Hash(testPassword)
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{
			name:     "valid password and hash",
			password: testPassword,
			hash:     validHash,
		},
		{
			name:          "wrong password",
			password:      "wrongPassword",
			hash:          validHash,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty password",
			password:      "",
			hash:          validHash,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty hash",
			password:      testPassword,
			hash:          "",
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "invalid hash format",
			password:      testPassword,
			hash:          "invalid_hash",
			expectedError: password.ErrVerifyingPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestHashConsistency(t *testing.T) {
	pwd := "testPassword"

	// Salted, so repeated hashing must never collide.
	first, err := password.Hash(pwd)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	second, err := password.Hash(pwd)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if first == second {
		t.Errorf("expected different hashes, got identical: %s", first)
	}

	for _, hash := range []string{first, second} {
		if err := password.Verify(pwd, hash); err != nil {
			t.Errorf("failed to verify password with hash %s: %v", hash, err)
		}
	}
}
